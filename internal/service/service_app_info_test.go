// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_ReturnsAppInfoServiceInterface(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	require.NotNil(t, svc)
	// compile-time check: returned value must satisfy the interface
	var _ AppInfoService = svc
}

// ─────────────────────────────────────────────
// GetAppInfo
// ─────────────────────────────────────────────

func TestGetAppInfo_ReturnsBuildInfo(t *testing.T) {
	build := models.NewAppBuildInfo("v1.2.3", "2026-01-02", "abc123")
	svc := NewAppInfoService(config.App{}, build, logger.Nop())

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, models.AppInfo{Version: "v1.2.3", Date: "2026-01-02", Commit: "abc123"}, got)
}

func TestGetAppInfo_ConfiguredVersionWins(t *testing.T) {
	build := models.NewAppBuildInfo("v1.2.3", "2026-01-02", "abc123")
	svc := NewAppInfoService(config.App{Version: "3.1.4"}, build, logger.Nop())

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, "3.1.4", got.Version)
	assert.Equal(t, "abc123", got.Commit)
}

func TestGetAppInfo_MissingBuildValues(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, models.AppInfo{Version: "N/A", Date: "N/A", Commit: "N/A"}, got)
}

func TestGetAppInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppInfo(ctx).Version)
}
