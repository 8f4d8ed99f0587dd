// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-acervo/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult is produced by the login and register pages.
type AuthResult struct {
	User models.User
	Err  error
}

type collectionLoadedMsg struct {
	err error
}

type contextsLoadedMsg struct {
	contexts []models.ViewContext
	err      error
}

type recordSavedMsg struct {
	record models.Artwork
	err    error
}

type recordDeletedMsg struct {
	err error
}

type imageSavedMsg struct {
	path string
	err  error
}

type groupsLoadedMsg struct {
	groups []string
	err    error
}

type membersLoadedMsg struct {
	group   string
	members []models.Member
	err     error
}

// groupActionMsg reports the outcome of a create, invite, leave, accept or
// decline action.
type groupActionMsg struct {
	status string
	err    error
}

type invitesLoadedMsg struct {
	invites []models.Invite
	err     error
}

// pendingInvitesMsg is sent by the background invite poller.
type pendingInvitesMsg struct {
	invites []models.Invite
}

type serverInfoMsg struct {
	info models.AppInfo
	err  error
}

type copiedMsg struct {
	err error
}
