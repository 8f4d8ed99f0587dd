// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the server, the
// client and the admin CLI: typed context keys, session token handling,
// JSON response writing, the HTTP client wrapper and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so values stored by this
// package never collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key under which the auth middleware stores the
// authenticated username.
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "alice")
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext returns the authenticated username stored by the
// auth middleware. ok is false when the value is missing, has the wrong
// type or is empty.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}

// WithUsername returns a copy of ctx carrying username under [UsernameCtxKey].
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameCtxKey, username)
}
