// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-acervo/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user is authenticated and returns the
	// session user, or [ErrUserQuit].
	LoginFlow(ctx context.Context) (models.User, error)

	// MainLoop blocks while the session is active. logout reports whether
	// the user asked to log out rather than quit.
	MainLoop(ctx context.Context) (logout bool, err error)

	// NotifyInvites delivers the pending invites of the session user. It may
	// be called from any goroutine.
	NotifyInvites(invites []models.Invite)
}
