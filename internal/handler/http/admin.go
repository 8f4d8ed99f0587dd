// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-acervo/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AdminService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing users")
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.services.AdminService.DeleteUser(r.Context(), username); err != nil {
		writeError(w, r, err, "error deleting user")
		return
	}

	utils.NoContent(w, http.StatusNoContent)
}
