// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInsecureSignKey         = errors.New("token signing key is missing or public")

	ErrAdminCannotBeDeleted = errors.New("the administrator account cannot be deleted")
	ErrEmptyAdminPassword   = errors.New("admin password is empty")
	ErrImageNotVisible      = errors.New("image does not belong to a visible record")
)
