// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/crypto"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/store"
	"github.com/MKhiriev/go-acervo/models"
)

type Services struct {
	AuthService       AuthService
	AdminService      AdminService
	GroupService      GroupService
	RecordService     RecordService
	CollectionService CollectionService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) *Services {
	recordService := NewRecordService(storages.RecordRepository, storages.ImageStorage, logger)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg.App, logger),
		AdminService:      NewAdminService(storages.UserRepository, recordService, logger),
		GroupService:      NewGroupService(storages.MembershipRepository, logger),
		RecordService:     recordService,
		CollectionService: NewCollectionService(storages.MembershipRepository, storages.RecordRepository, storages.ImageStorage, logger),
		AppInfoService:    NewAppInfoService(cfg.App, build, logger),
	}
}
