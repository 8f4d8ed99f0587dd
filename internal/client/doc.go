// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// [Workspace] combines the server adapter with the session view state and
// exposes the user workflows (browse, switch context, add, edit, photo,
// delete, groups and invites). [App] drives the login and main loop of a UI
// over a workspace and runs the background workers of a session.
package client
