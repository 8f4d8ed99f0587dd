// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/service"
	"github.com/MKhiriev/go-acervo/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Shared helpers
// ─────────────────────────────────────────────

// jsonBody serialises v to a JSON request body.
func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

// withSession returns r carrying username as the authenticated user.
func withSession(r *http.Request, username string) *http.Request {
	ctx := logger.Nop().WithContext(r.Context())
	return r.WithContext(utils.WithUsername(ctx, username))
}

// withURLParams attaches chi route parameters given as key, value pairs.
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	log := logger.Nop()

	h := NewHandler(services, log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Same(t, log, h.logger)
}

func TestNewHandler_Options(t *testing.T) {
	assert.Equal(t, int64(defaultMaxImageSize), NewHandler(nil, logger.Nop()).maxImageSize)
	assert.Equal(t, int64(1024), NewHandler(nil, logger.Nop(), WithMaxImageSize(1024)).maxImageSize)
	assert.Equal(t, int64(defaultMaxImageSize), NewHandler(nil, logger.Nop(), WithMaxImageSize(0)).maxImageSize)
}
