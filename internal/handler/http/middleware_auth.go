// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/utils"
	"github.com/MKhiriev/go-acervo/models"
)

// auth is an HTTP middleware that enforces JWT-based sessions.
//
// The token is taken from the "Authorization: Bearer" header or, when the
// header is absent, from the session cookie named in the cookie settings of
// the document. It is validated via [service.AuthService.ParseToken] and,
// on success, the session username is stored in the request context under
// [utils.UsernameCtxKey] and attached to the request logger.
//
// The middleware rejects requests with HTTP 401 Unauthorized when no token is
// found, when the header is malformed, when the token is invalid or
// expired and when its account has been deleted.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		tokenString, err := h.sessionToken(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx = utils.WithUsername(ctx, token.Username)
		ctx = log.WithUser(token.Username).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly lets through only the administrator session. It must run after
// auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := utils.GetUsernameFromContext(r.Context())
		if !ok || username != models.AdminUsername {
			logger.FromRequest(r).Err(ErrAdminOnly).Str("username", username).Send()
			http.Error(w, ErrAdminOnly.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sessionToken finds the raw session token of r.
func (h *Handler) sessionToken(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return getTokenFromAuthHeader(authHeader)
	}

	cookieSettings, err := h.services.AuthService.CookieSettings(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error reading cookie settings")
		return "", ErrEmptyAuthorizationHeader
	}

	cookie, err := r.Cookie(cookieSettings.Name)
	if err != nil || cookie.Value == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	return cookie.Value, nil
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// sessionUser returns the authenticated username of r or answers 401.
func sessionUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoSessionUser).Send()
		http.Error(w, ErrNoSessionUser.Error(), http.StatusUnauthorized)
		return "", false
	}

	return username, true
}
