// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	// ErrAborted is returned when the operator declines a confirmation.
	ErrAborted = errors.New("aborted")
	// ErrNoTerminal is returned when a password prompt needs a terminal and
	// stdin is not one. Use --password-stdin instead.
	ErrNoTerminal = errors.New("stdin is not a terminal")
	// ErrProblemsFound is returned by doctor when any check failed.
	ErrProblemsFound = errors.New("problems found")
)
