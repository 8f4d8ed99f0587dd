// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/utils"
	"github.com/MKhiriev/go-acervo/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultMaxImageSize = 10 << 20

	imageFormField = "image"
	sniffLen       = 512
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	records, err := h.services.RecordService.ListRecords(r.Context(), username)
	if err != nil {
		writeError(w, r, err, "error listing records")
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	record, err := h.services.RecordService.GetRecord(r.Context(), username, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error loading record")
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) addRecord(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var record models.Artwork
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.addRecord").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	added, err := h.services.RecordService.AddRecord(r.Context(), username, record)
	if err != nil {
		writeError(w, r, err, "error adding record")
		return
	}

	utils.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var record models.Artwork
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateRecord").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.RecordService.UpdateRecord(r.Context(), username, chi.URLParam(r, "id"), record)
	if err != nil {
		writeError(w, r, err, "error updating record")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	if err := h.services.RecordService.DeleteRecord(r.Context(), username, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "error deleting record")
		return
	}

	utils.NoContent(w, http.StatusNoContent)
}

// setRecordImage reads the multipart field "image" and attaches it to the
// record. The first bytes are handed to the service for type sniffing.
func (h *Handler) setRecordImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageSize+sniffLen)
	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		log.Err(err).Str("func", "*Handler.setRecordImage").Msg("no image in request")

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "image is too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "multipart field `image` is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		writeError(w, r, err, "error reading image")
		return
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		writeError(w, r, err, "error rewinding image")
		return
	}

	upload := models.ImageUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Head:     head[:n],
	}

	record, err := h.services.RecordService.SetImage(r.Context(), username, chi.URLParam(r, "id"), upload, file)
	if err != nil {
		writeError(w, r, err, "error setting record image")
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}
