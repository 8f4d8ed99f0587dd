// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService returns the build information of the binary. A version
// set in the configuration replaces the linked-in one.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	info := build.Info()
	if cfg.Version != "" {
		info.Version = cfg.Version
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
