// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Group is a named set of users who share a combined collection view.
// Members are kept in join order; the creator is always the first member.
type Group struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// Member describes a group member for listings.
type Member struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Invite is a pending invitation of Username into Group.
type Invite struct {
	Group    string `json:"group"`
	Username string `json:"username"`
}

// CreateGroupRequest is the body of a group creation request. Name is the
// raw user supplied name; the stored identifier is its normalized form.
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// InviteRequest is the body of an invitation request.
type InviteRequest struct {
	Username string `json:"username"`
}
