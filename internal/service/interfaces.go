// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-acervo/models"
)

// AuthService defines account registration, credential checks and the
// session token lifecycle.
type AuthService interface {
	// RegisterUser normalizes and validates a registration, hashes the
	// password and stores the account. Every failed validation rule is
	// reported in one joined error.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login checks the username and password and returns the public view
	// of the account. Unknown users and wrong passwords both yield
	// ErrWrongCredentials.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed session token for user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw session token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUser returns the public view of an existing account.
	GetUser(ctx context.Context, username string) (models.User, error)

	// CookieSettings returns the session cookie settings of the document.
	CookieSettings(ctx context.Context) (models.CookieSettings, error)

	// EnsureAdmin creates the administrator account with password when it
	// does not exist yet. An existing account is left untouched.
	EnsureAdmin(ctx context.Context, password string) (created bool, err error)

	// SetAdminPassword replaces the administrator password, creating the
	// account when needed.
	SetAdminPassword(ctx context.Context, password string) (created bool, err error)
}

// AdminService defines the account management operations reserved to the
// administrator.
type AdminService interface {
	// ListUsers returns every account without credentials.
	ListUsers(ctx context.Context) ([]models.User, error)

	// DeleteUser removes an account, its memberships and invites, its record
	// store and every image its records reference. The administrator
	// account cannot be deleted.
	DeleteUser(ctx context.Context, username string) error
}

// GroupService defines group and invite management on behalf of a session
// user.
type GroupService interface {
	CreateGroup(ctx context.Context, username string, req models.CreateGroupRequest) (models.Group, error)
	Invite(ctx context.Context, group, inviter string, req models.InviteRequest) error
	AcceptInvite(ctx context.Context, group, username string) error
	DeclineInvite(ctx context.Context, group, username string) error
	Leave(ctx context.Context, group, username string) error

	// Members lists the members of group; username must be one of them.
	Members(ctx context.Context, group, username string) ([]models.Member, error)
	GroupsFor(ctx context.Context, username string) ([]string, error)
	PendingInvites(ctx context.Context, username string) ([]models.Invite, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
}

// RecordService defines operations on the records of the session user's own
// store. Records are addressed by ID.
type RecordService interface {
	ListRecords(ctx context.Context, owner string) ([]models.Artwork, error)
	GetRecord(ctx context.Context, owner, id string) (models.Artwork, error)

	// AddRecord validates record, assigns a fresh ID and appends it.
	AddRecord(ctx context.Context, owner string, record models.Artwork) (models.Artwork, error)

	// UpdateRecord replaces the editable fields of the record with the given
	// ID. The ID and the image are preserved.
	UpdateRecord(ctx context.Context, owner, id string, record models.Artwork) (models.Artwork, error)

	// DeleteRecord removes the record and its image.
	DeleteRecord(ctx context.Context, owner, id string) error

	// SetImage stores a new photo for the record and deletes the one it
	// replaces.
	SetImage(ctx context.Context, owner, id string, upload models.ImageUpload, content io.Reader) (models.Artwork, error)

	// PurgeOwner deletes every image referenced by the store of owner and
	// then the store itself.
	PurgeOwner(ctx context.Context, owner string) error
}

// CollectionService builds the record list of a viewing context.
type CollectionService interface {
	// View returns the personal collection or, for a group context, the
	// records of every member in membership order tagged with their owner.
	View(ctx context.Context, username string, view models.ViewContext) (models.CollectionView, error)

	// OpenImage opens an image referenced by a record visible to username.
	OpenImage(ctx context.Context, username, name string) (io.ReadCloser, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
