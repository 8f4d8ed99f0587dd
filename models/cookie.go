// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Default session cookie settings written to a fresh configuration document.
const (
	DefaultCookieName       = "some_cookie_name"
	DefaultCookieExpiryDays = 30
)

// DefaultCookieKey is the placeholder key found in documents written by
// earlier deployments. It is public and never signs a session token.
const DefaultCookieKey = "some_signature_key"

// CookieSettings describes the session cookie shared by every client. Key
// signs session tokens unless the server overrides it.
type CookieSettings struct {
	Name       string `json:"name" yaml:"name"`
	Key        string `json:"-" yaml:"key"`
	ExpiryDays int    `json:"expiry_days" yaml:"expiry_days"`
}

// DefaultCookieSettings returns the settings of a fresh document. The key is
// left empty: the document store generates one on the first write.
func DefaultCookieSettings() CookieSettings {
	return CookieSettings{
		Name:       DefaultCookieName,
		ExpiryDays: DefaultCookieExpiryDays,
	}
}

// Expiry returns the cookie lifetime.
func (c CookieSettings) Expiry() time.Duration {
	return time.Duration(c.ExpiryDays) * 24 * time.Hour
}

// IsUsableSignKey reports whether key may sign session tokens.
func IsUsableSignKey(key string) bool {
	return key != "" && key != DefaultCookieKey
}

// HasUsableKey reports whether Key may sign session tokens.
func (c CookieSettings) HasUsableKey() bool {
	return IsUsableSignKey(c.Key)
}
