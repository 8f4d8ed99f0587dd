// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/service"
	"github.com/MKhiriev/go-acervo/internal/store"
	"github.com/MKhiriev/go-acervo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock CollectionService
// ─────────────────────────────────────────────

type mockCollectionService struct {
	viewFn      func(ctx context.Context, username string, view models.ViewContext) (models.CollectionView, error)
	openImageFn func(ctx context.Context, username, name string) (io.ReadCloser, error)
}

func (m *mockCollectionService) View(ctx context.Context, username string, view models.ViewContext) (models.CollectionView, error) {
	return m.viewFn(ctx, username, view)
}

func (m *mockCollectionService) OpenImage(ctx context.Context, username, name string) (io.ReadCloser, error) {
	return m.openImageFn(ctx, username, name)
}

func newHandlerWithCollections(collections service.CollectionService) *Handler {
	return NewHandler(&service.Services{CollectionService: collections}, logger.Nop())
}

// ─────────────────────────────────────────────
// Collections
// ─────────────────────────────────────────────

func TestPersonalCollection(t *testing.T) {
	h := newHandlerWithCollections(&mockCollectionService{
		viewFn: func(_ context.Context, username string, view models.ViewContext) (models.CollectionView, error) {
			assert.Equal(t, "alice", username)
			assert.True(t, view.IsPersonal())
			return models.CollectionView{Context: view, Records: []models.Artwork{monaLisa}}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.personalCollection(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/collections/personal", nil), "alice"))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.CollectionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.Personal(), got.Context)
	assert.Len(t, got.Records, 1)
}

func TestGroupCollection(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "member", wantStatus: http.StatusOK},
		{name: "not a member", err: store.ErrNotAMember, wantStatus: http.StatusForbidden},
		{name: "unknown group", err: store.ErrGroupNotFound, wantStatus: http.StatusNotFound},
		{name: "corrupt member store", err: store.ErrCorruptRecordStore, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithCollections(&mockCollectionService{
				viewFn: func(_ context.Context, _ string, view models.ViewContext) (models.CollectionView, error) {
					assert.Equal(t, models.InGroup("club"), view)
					if tt.err != nil {
						return models.CollectionView{}, tt.err
					}
					tagged := monaLisa
					tagged.Owner = "bob"
					return models.CollectionView{Context: view, Records: []models.Artwork{tagged}}, nil
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/api/collections/groups/club", nil)
			req = withSession(withURLParams(req, "group", "club"), "alice")
			rec := httptest.NewRecorder()

			h.groupCollection(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Contains(t, rec.Body.String(), `"owner":"bob"`)
			}
		})
	}
}

// ─────────────────────────────────────────────
// Images
// ─────────────────────────────────────────────

func TestGetImage(t *testing.T) {
	h := newHandlerWithCollections(&mockCollectionService{
		openImageFn: func(_ context.Context, username, name string) (io.ReadCloser, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "a.png", name)
			return io.NopCloser(strings.NewReader("png-bytes")), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/images/a.png", nil)
	req = withSession(withURLParams(req, "filename", "a.png"), "alice")
	rec := httptest.NewRecorder()

	h.getImage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "private")
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestGetImage_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not visible", err: service.ErrImageNotVisible, wantStatus: http.StatusNotFound},
		{name: "missing file", err: store.ErrImageNotFound, wantStatus: http.StatusNotFound},
		{name: "traversal", err: store.ErrInvalidImageName, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithCollections(&mockCollectionService{
				openImageFn: func(context.Context, string, string) (io.ReadCloser, error) {
					return nil, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/api/images/x.png", nil)
			req = withSession(withURLParams(req, "filename", "x.png"), "alice")
			rec := httptest.NewRecorder()

			h.getImage(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
