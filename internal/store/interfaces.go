// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-acervo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentBackend persists the raw bytes of the shared configuration
// document.
type DocumentBackend interface {
	// Read returns the stored document. A missing document is reported with
	// an error matching [fs.ErrNotExist].
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored document atomically.
	Write(ctx context.Context, data []byte) error
	// Lock acquires the cross-process lock guarding read-modify-write
	// cycles and returns its release function.
	Lock(ctx context.Context) (func() error, error)
}

// UserRepository manages account credentials held in the shared document.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetPasswordHash(ctx context.Context, username, passwordHash string) (created bool, err error)
	// DeleteUser removes the credentials of username together with every
	// membership and pending invite it holds. Groups left empty are deleted.
	DeleteUser(ctx context.Context, username string) error
	CookieSettings(ctx context.Context) (models.CookieSettings, error)
}

// MembershipRepository manages groups and invites held in the shared
// document.
type MembershipRepository interface {
	CreateGroup(ctx context.Context, group, creator string) (models.Group, error)
	Invite(ctx context.Context, group, inviter, invitee string) error
	AcceptInvite(ctx context.Context, group, username string) error
	DeclineInvite(ctx context.Context, group, username string) error
	Leave(ctx context.Context, group, username string) error
	Members(ctx context.Context, group string) ([]models.Member, error)
	GroupsFor(ctx context.Context, username string) ([]string, error)
	PendingInvitesFor(ctx context.Context, username string) ([]models.Invite, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
}

// RecordRepository stores the artwork records of each user as one ordered
// collection.
type RecordRepository interface {
	// Load returns the records of owner in store order. A missing store
	// yields an empty slice.
	Load(ctx context.Context, owner string) ([]models.Artwork, error)
	// Save replaces the whole store of owner.
	Save(ctx context.Context, owner string, records []models.Artwork) error
	// Update runs a load-mutate-save cycle under the owner's lock. When fn
	// returns an error nothing is written.
	Update(ctx context.Context, owner string, fn func([]models.Artwork) ([]models.Artwork, error)) error
	// Drop removes the store of owner under the owner's lock. When fn is not
	// nil it first receives the records being removed; an error from fn
	// keeps the store. A missing store is not an error.
	Drop(ctx context.Context, owner string, fn func([]models.Artwork) error) error
}

// ImageStorage holds record thumbnails addressed by generated file names.
type ImageStorage interface {
	// Store writes r under a fresh name ending in ext and returns that name.
	Store(ctx context.Context, r io.Reader, ext string) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Delete removes the image. A missing image is not an error.
	Delete(ctx context.Context, name string) error
}
