// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName       = errors.New("name is required")
	ErrInvalidUsername   = errors.New("username must have 3-20 characters: lowercase letters, digits or _")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrPasswordTooShort  = errors.New("password must have at least 4 characters")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrInvalidGroupName  = errors.New("invalid group name")
	ErrMissingRecordName = errors.New("artwork name is required")

	ErrMissingRecordAuthor  = errors.New("artwork author is required")
	ErrInvalidEntryDate     = errors.New("entry date must be DD/MM/YYYY")
	ErrUnsupportedImageType = errors.New("unsupported image type: use png, jpg or jpeg")
)
