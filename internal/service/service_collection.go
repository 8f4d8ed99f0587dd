// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/store"
	"github.com/MKhiriev/go-acervo/internal/validators"
	"github.com/MKhiriev/go-acervo/models"
)

// collectionService aggregates record stores into viewing contexts.
type collectionService struct {
	memberships store.MembershipRepository
	records     store.RecordRepository
	images      store.ImageStorage

	logger *logger.Logger
}

func NewCollectionService(memberships store.MembershipRepository, records store.RecordRepository, images store.ImageStorage, logger *logger.Logger) CollectionService {
	return &collectionService{
		memberships: memberships,
		records:     records,
		images:      images,
		logger:      logger,
	}
}

// View builds the record list of view for username.
//
// The personal context returns the user's store as is. A group context
// concatenates the stores of every member in join order, each record tagged
// with its owner. A store that cannot be read fails the whole view.
func (s *collectionService) View(ctx context.Context, username string, view models.ViewContext) (models.CollectionView, error) {
	log := logger.FromContext(ctx)

	if view.IsPersonal() {
		records, err := s.records.Load(ctx, username)
		if err != nil {
			log.Err(err).Str("func", "*collectionService.View").Str("owner", username).Msg("error loading records")
			return models.CollectionView{}, fmt.Errorf("error loading records of %s: %w", username, err)
		}
		return models.CollectionView{Context: models.Personal(), Records: records}, nil
	}

	group := validators.NormalizeGroupName(view.Group)
	members, err := s.memberships.Members(ctx, group)
	if err != nil {
		return models.CollectionView{}, err
	}
	if !slices.ContainsFunc(members, func(m models.Member) bool { return m.Username == username }) {
		return models.CollectionView{}, store.ErrNotAMember
	}

	records := []models.Artwork{}
	for _, member := range members {
		owned, err := s.records.Load(ctx, member.Username)
		if err != nil {
			log.Err(err).Str("func", "*collectionService.View").Str("group", group).
				Str("owner", member.Username).Msg("error loading member records")
			return models.CollectionView{}, fmt.Errorf("error loading records of %s: %w", member.Username, err)
		}
		for _, record := range owned {
			record.Owner = member.Username
			records = append(records, record)
		}
	}

	return models.CollectionView{Context: models.InGroup(group), Records: records}, nil
}

// OpenImage opens name when it is the image of a record in the personal
// collection of username or in the collection of one of their groups.
func (s *collectionService) OpenImage(ctx context.Context, username, name string) (io.ReadCloser, error) {
	visible, err := s.imageVisible(ctx, username, name)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrImageNotVisible
	}

	return s.images.Open(ctx, name)
}

func (s *collectionService) imageVisible(ctx context.Context, username, name string) (bool, error) {
	owners := []string{username}

	groups, err := s.memberships.GroupsFor(ctx, username)
	if err != nil {
		return false, err
	}
	for _, group := range groups {
		members, err := s.memberships.Members(ctx, group)
		if err != nil {
			return false, err
		}
		for _, member := range members {
			if !slices.Contains(owners, member.Username) {
				owners = append(owners, member.Username)
			}
		}
	}

	for _, owner := range owners {
		records, err := s.records.Load(ctx, owner)
		if err != nil {
			return false, err
		}
		if slices.ContainsFunc(records, func(a models.Artwork) bool { return a.ImagePath == name }) {
			return true, nil
		}
	}

	return false, nil
}
