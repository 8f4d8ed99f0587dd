// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the acervo HTTP API.
//
// [ServerAdapter] decouples the TUI from the protocol. Error values defined
// in errors.go are mapped from HTTP status codes by mapHTTPError so callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for
// 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-acervo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the acervo server on behalf of a
// single session. Implementations handle serialisation, the bearer token and
// the mapping of transport errors to the sentinels of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before sign-in.
	Token() string

	// Register creates an account and starts a session for it.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login checks the credentials and starts a session.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Logout ends the session. The stored token is dropped even when the
	// server cannot be reached.
	Logout(ctx context.Context) error

	// Me returns the session user.
	Me(ctx context.Context) (models.User, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppInfo, error)

	// Groups and invites.
	ListGroups(ctx context.Context) ([]string, error)
	CreateGroup(ctx context.Context, name string) (models.Group, error)
	Members(ctx context.Context, group string) ([]models.Member, error)
	Invite(ctx context.Context, group, username string) error
	LeaveGroup(ctx context.Context, group string) error
	PendingInvites(ctx context.Context) ([]models.Invite, error)
	AcceptInvite(ctx context.Context, group string) error
	DeclineInvite(ctx context.Context, group string) error

	// Collection returns the records of view.
	Collection(ctx context.Context, view models.ViewContext) (models.CollectionView, error)

	// Records of the session user, addressed by ID.
	GetRecord(ctx context.Context, id string) (models.Artwork, error)
	AddRecord(ctx context.Context, record models.Artwork) (models.Artwork, error)
	UpdateRecord(ctx context.Context, id string, record models.Artwork) (models.Artwork, error)
	DeleteRecord(ctx context.Context, id string) error

	// SetImage uploads content as the photo of the record with the given ID.
	SetImage(ctx context.Context, id, filename string, content io.Reader) (models.Artwork, error)

	// Image downloads an image referenced by a visible record.
	Image(ctx context.Context, filename string) ([]byte, error)

	// Administrator operations.
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, username string) error
}
