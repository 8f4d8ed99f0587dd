// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/store"
	"github.com/MKhiriev/go-acervo/internal/validators"
	"github.com/MKhiriev/go-acervo/models"
)

// groupService is the concrete implementation of GroupService.
// Group names are normalized on every call, so both the display name typed
// by a user and the stored identifier address the same group.
type groupService struct {
	memberships store.MembershipRepository
	validator   validators.Validator

	logger *logger.Logger
}

func NewGroupService(memberships store.MembershipRepository, logger *logger.Logger) GroupService {
	return &groupService{
		memberships: memberships,
		validator:   validators.NewGroupNameValidator(),
		logger:      logger,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, username string, req models.CreateGroupRequest) (models.Group, error) {
	log := logger.FromContext(ctx)

	name := validators.NormalizeGroupName(req.Name)
	if err := s.validator.Validate(ctx, name); err != nil {
		log.Err(err).Str("func", "*groupService.CreateGroup").Str("group", req.Name).Msg("invalid group name")
		return models.Group{}, err
	}

	group, err := s.memberships.CreateGroup(ctx, name, username)
	if err != nil {
		return models.Group{}, fmt.Errorf("error creating group: %w", err)
	}

	log.Info().Str("group", name).Str("creator", username).Msg("group created")
	return group, nil
}

func (s *groupService) Invite(ctx context.Context, group, inviter string, req models.InviteRequest) error {
	invitee := validators.NormalizeUsername(req.Username)
	if invitee == "" {
		return ErrInvalidDataProvided
	}

	if err := s.memberships.Invite(ctx, validators.NormalizeGroupName(group), inviter, invitee); err != nil {
		return fmt.Errorf("error inviting user: %w", err)
	}

	return nil
}

func (s *groupService) AcceptInvite(ctx context.Context, group, username string) error {
	if err := s.memberships.AcceptInvite(ctx, validators.NormalizeGroupName(group), username); err != nil {
		return fmt.Errorf("error accepting invite: %w", err)
	}

	return nil
}

func (s *groupService) DeclineInvite(ctx context.Context, group, username string) error {
	if err := s.memberships.DeclineInvite(ctx, validators.NormalizeGroupName(group), username); err != nil {
		return fmt.Errorf("error declining invite: %w", err)
	}

	return nil
}

func (s *groupService) Leave(ctx context.Context, group, username string) error {
	if err := s.memberships.Leave(ctx, validators.NormalizeGroupName(group), username); err != nil {
		return fmt.Errorf("error leaving group: %w", err)
	}

	return nil
}

func (s *groupService) Members(ctx context.Context, group, username string) ([]models.Member, error) {
	members, err := s.memberships.Members(ctx, validators.NormalizeGroupName(group))
	if err != nil {
		return nil, err
	}

	if !slices.ContainsFunc(members, func(m models.Member) bool { return m.Username == username }) {
		return nil, store.ErrNotAMember
	}

	return members, nil
}

func (s *groupService) GroupsFor(ctx context.Context, username string) ([]string, error) {
	return s.memberships.GroupsFor(ctx, username)
}

func (s *groupService) PendingInvites(ctx context.Context, username string) ([]models.Invite, error) {
	return s.memberships.PendingInvitesFor(ctx, username)
}

func (s *groupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.memberships.ListGroups(ctx)
}
