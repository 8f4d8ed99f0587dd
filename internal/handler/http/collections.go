// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-acervo/internal/utils"
	"github.com/MKhiriev/go-acervo/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) personalCollection(w http.ResponseWriter, r *http.Request) {
	h.collection(w, r, models.Personal())
}

func (h *Handler) groupCollection(w http.ResponseWriter, r *http.Request) {
	h.collection(w, r, models.InGroup(chi.URLParam(r, "group")))
}

func (h *Handler) collection(w http.ResponseWriter, r *http.Request, view models.ViewContext) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	collection, err := h.services.CollectionService.View(r.Context(), username, view)
	if err != nil {
		writeError(w, r, err, "error building collection")
		return
	}

	utils.WriteJSON(w, collection, http.StatusOK)
}
