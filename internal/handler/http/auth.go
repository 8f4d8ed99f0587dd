// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/utils"
	"github.com/MKhiriev/go-acervo/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	if err = h.startSession(ctx, w, registeredUser); err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	log.Debug().Str("username", foundUser.Username).Msg("user successfully logged in")

	if err = h.startSession(ctx, w, foundUser); err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// logout expires the session cookie. Bearer tokens held by clients stay
// valid until they expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	cookieSettings, err := h.services.AuthService.CookieSettings(r.Context())
	if err != nil {
		writeError(w, r, err, "error reading cookie settings")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieSettings.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.NoContent(w, http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), username)
	if err != nil {
		writeError(w, r, err, "error loading session user")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// startSession issues a token for user and hands it out both in the
// "Authorization" header and in the session cookie.
func (h *Handler) startSession(ctx context.Context, w http.ResponseWriter, user models.User) error {
	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return err
	}

	cookieSettings, err := h.services.AuthService.CookieSettings(ctx)
	if err != nil {
		return err
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	http.SetCookie(w, &http.Cookie{
		Name:     cookieSettings.Name,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.Expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
