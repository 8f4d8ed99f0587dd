// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-acervo/internal/service"
	"github.com/MKhiriev/go-acervo/internal/store"
	"github.com/MKhiriev/go-acervo/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "wrapped not found", err: fmt.Errorf("loading: %w", store.ErrRecordNotFound), want: http.StatusNotFound},
		{name: "joined validation", err: errors.Join(validators.ErrInvalidEmail, validators.ErrPasswordTooShort), want: http.StatusBadRequest},
		{name: "duplicate", err: store.ErrGroupAlreadyExists, want: http.StatusConflict},
		{name: "credentials", err: service.ErrWrongCredentials, want: http.StatusUnauthorized},
		{name: "membership", err: store.ErrNotAMember, want: http.StatusForbidden},
		{name: "lock contention", err: store.ErrLockingStore, want: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("surprise"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesServerErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, fmt.Errorf("open /srv/acervo/alice.yaml: %w", store.ErrCorruptRecordStore), "x")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "/srv/acervo")
}

func TestWriteError_ClientErrorCarriesText(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, errors.Join(validators.ErrMissingRecordName, validators.ErrMissingRecordAuthor), "x")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), validators.ErrMissingRecordName.Error())
	assert.Contains(t, rec.Body.String(), validators.ErrMissingRecordAuthor.Error())
}
