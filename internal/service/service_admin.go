// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/store"
	"github.com/MKhiriev/go-acervo/models"
)

type adminService struct {
	users   store.UserRepository
	records RecordService

	logger *logger.Logger
}

func NewAdminService(users store.UserRepository, records RecordService, logger *logger.Logger) AdminService {
	return &adminService{
		users:   users,
		records: records,
		logger:  logger,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListUsers(ctx)
}

// DeleteUser removes the account first, so an unknown username fails before
// anything is purged. The record store and its images go afterwards.
func (s *adminService) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	if username == models.AdminUsername {
		return ErrAdminCannotBeDeleted
	}

	if err := s.users.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if err := s.records.PurgeOwner(ctx, username); err != nil {
		log.Err(err).Str("func", "*adminService.DeleteUser").Str("username", username).Msg("account deleted but records were not purged")
		return fmt.Errorf("error purging records of %s: %w", username, err)
	}

	log.Info().Str("username", username).Msg("user deleted")
	return nil
}
