// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrNotPersonalView is returned when a record is added outside the
	// personal viewing context.
	ErrNotPersonalView = errors.New("records can only be added to the personal collection")

	// ErrNotOwner is returned when the selected record belongs to another
	// member.
	ErrNotOwner = errors.New("only the owner can change this record")

	// ErrNoSelection is returned by operations that need a selected record.
	ErrNoSelection = errors.New("no record selected")

	// ErrUnknownRecord is returned when selecting a record that is not in
	// the displayed list.
	ErrUnknownRecord = errors.New("record is not in the current list")

	// ErrStaleView is returned when a record list built for another viewing
	// context is handed to the controller.
	ErrStaleView = errors.New("record list belongs to another viewing context")

	// ErrBusy is returned when a mode is entered while another one is active.
	ErrBusy = errors.New("finish or cancel the current action first")
)
