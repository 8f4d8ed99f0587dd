// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AdminUsername is the reserved account that manages other users.
// It is bootstrapped on startup and can never be deleted.
const AdminUsername = "admin"

// User represents a registered account of the catalog.
//
// Password and PasswordConfirm carry plain-text input from registration and
// login requests only; they are never persisted. PasswordHash is the stored
// credential and is never exposed via JSON.
type User struct {
	// Username is the unique, normalized account identifier
	// (lowercase letters, digits and underscores, 3-20 characters).
	Username string `json:"username"`

	// Name is the display name, title-cased at registration.
	Name string `json:"name"`

	// Email is the unique, lowercased contact address.
	Email string `json:"email"`

	// Password is the plain-text password supplied by the client.
	Password string `json:"password,omitempty"`

	// PasswordConfirm must repeat Password on registration.
	PasswordConfirm string `json:"password_confirm,omitempty"`

	// PasswordHash is the encoded argon2id hash of the password.
	PasswordHash string `json:"-"`
}

// IsAdmin reports whether u is the administrator account.
func (u User) IsAdmin() bool {
	return u.Username == AdminUsername
}

// Public returns a copy of u stripped of every credential field.
func (u User) Public() User {
	return User{
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
	}
}
