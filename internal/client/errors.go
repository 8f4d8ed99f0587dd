// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUserQuit is returned by a UI when the user leaves the application.
	ErrUserQuit = errors.New("user quit")

	ErrNotLoggedIn = errors.New("not logged in")
	ErrWrongMode   = errors.New("action not available in the current mode")
	ErrNoImage     = errors.New("record has no image")
)
