// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a registration uses a username
	// that already has credentials in the document.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when a registration uses an email
	// already bound to another account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrGroupAlreadyExists is returned when a group or a pending invite list
	// already uses the normalized group name.
	ErrGroupAlreadyExists = errors.New("group already exists")

	// ErrAlreadyMember is returned when the invitee already belongs to the
	// group.
	ErrAlreadyMember = errors.New("user is already a member of the group")

	// ErrAlreadyInvited is returned when the invitee already holds a pending
	// invite for the group.
	ErrAlreadyInvited = errors.New("user is already invited to the group")

	// ErrRecordAlreadyExists is returned when a record ID is already present
	// in the owner's record store.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrNoUserWasFound is returned when no credentials exist for a username.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrGroupNotFound is returned when the group does not exist.
	ErrGroupNotFound = errors.New("group was not found")

	// ErrNoSuchInvite is returned by accept and decline when the user holds no
	// pending invite for the group.
	ErrNoSuchInvite = errors.New("no such invite")

	// ErrNotAMember is returned when a group operation requires membership the
	// user does not have.
	ErrNotAMember = errors.New("user is not a member of the group")

	// ErrRecordNotFound is returned when no record with the given ID exists in
	// the owner's record store.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrImageNotFound is returned when an image file does not exist.
	ErrImageNotFound = errors.New("image was not found")

	// ErrInvalidImageName is returned for image names that are not plain
	// file names produced by an image storage.
	ErrInvalidImageName = errors.New("invalid image name")
)

// Storage errors. A corrupt store is never treated as empty.
var (
	// ErrCorruptDocument is returned when the shared configuration document
	// exists but cannot be decoded.
	ErrCorruptDocument = errors.New("configuration document is corrupt")

	// ErrCorruptRecordStore is returned when a user's record store exists but
	// cannot be decoded.
	ErrCorruptRecordStore = errors.New("record store is corrupt")

	// ErrLockingStore is returned when the advisory file lock of a store
	// cannot be acquired.
	ErrLockingStore = errors.New("error locking store")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan artwork rows")
)
