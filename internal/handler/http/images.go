// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "filename")
	image, err := h.services.CollectionService.OpenImage(r.Context(), username, name)
	if err != nil {
		writeError(w, r, err, "error opening image")
		return
	}
	defer image.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, image); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getImage").Str("image", name).Msg("error streaming image")
	}
}
