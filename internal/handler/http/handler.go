// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/service"
)

type Handler struct {
	services *service.Services

	// maxImageSize caps photo uploads, in bytes.
	maxImageSize int64

	logger *logger.Logger
}

// Option customises a Handler.
type Option func(*Handler)

// WithMaxImageSize overrides the photo upload limit. Non-positive values
// keep the default.
func WithMaxImageSize(size int64) Option {
	return func(h *Handler) {
		if size > 0 {
			h.maxImageSize = size
		}
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:     services,
		maxImageSize: defaultMaxImageSize,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Int64("max_image_size", h.maxImageSize).Msg("http handler created")
	return h
}
