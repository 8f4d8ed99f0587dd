// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/service"
	"github.com/MKhiriev/go-acervo/internal/store"
	"github.com/MKhiriev/go-acervo/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAdminCannotBeDeleted:    http.StatusForbidden,
	service.ErrEmptyAdminPassword:      http.StatusBadRequest,
	service.ErrImageNotVisible:         http.StatusNotFound,

	validators.ErrInvalidName:          http.StatusBadRequest,
	validators.ErrInvalidUsername:      http.StatusBadRequest,
	validators.ErrInvalidEmail:         http.StatusBadRequest,
	validators.ErrPasswordTooShort:     http.StatusBadRequest,
	validators.ErrPasswordMismatch:     http.StatusBadRequest,
	validators.ErrInvalidGroupName:     http.StatusBadRequest,
	validators.ErrMissingRecordName:    http.StatusBadRequest,
	validators.ErrMissingRecordAuthor:  http.StatusBadRequest,
	validators.ErrInvalidEntryDate:     http.StatusBadRequest,
	validators.ErrUnsupportedImageType: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrGroupAlreadyExists:    http.StatusConflict,
	store.ErrAlreadyMember:         http.StatusConflict,
	store.ErrAlreadyInvited:        http.StatusConflict,
	store.ErrRecordAlreadyExists:   http.StatusConflict,

	store.ErrNoUserWasFound:   http.StatusNotFound,
	store.ErrGroupNotFound:    http.StatusNotFound,
	store.ErrNoSuchInvite:     http.StatusNotFound,
	store.ErrRecordNotFound:   http.StatusNotFound,
	store.ErrImageNotFound:    http.StatusNotFound,
	store.ErrInvalidImageName: http.StatusBadRequest,
	store.ErrNotAMember:       http.StatusForbidden,

	store.ErrCorruptDocument:      http.StatusInternalServerError,
	store.ErrCorruptRecordStore:   http.StatusInternalServerError,
	store.ErrLockingStore:         http.StatusServiceUnavailable,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the status it maps to. Client errors
// carry the error text, so every failed validation rule reaches the user;
// server errors only carry the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg(msg)

	text := http.StatusText(status)
	if status < http.StatusInternalServerError {
		text = err.Error()
	}
	http.Error(w, text, status)
}
