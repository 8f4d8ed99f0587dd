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
	"github.com/MKhiriev/go-acervo/internal/utils"
	"github.com/MKhiriev/go-acervo/internal/validators"
	"github.com/MKhiriev/go-acervo/models"
)

// idGenerator issues record IDs.
type idGenerator interface {
	Generate() string
}

// recordService is the concrete implementation of RecordService.
//
// Every mutation is a single RecordRepository.Update call so the
// load-mutate-save cycle of one owner's store runs under that store's lock.
// Image files are written before and deleted after the record update; an
// image written for an update that failed is removed again.
type recordService struct {
	records store.RecordRepository
	images  store.ImageStorage

	artworkValidator validators.Validator
	imageValidator   validators.Validator
	ids              idGenerator

	logger *logger.Logger
}

func NewRecordService(records store.RecordRepository, images store.ImageStorage, logger *logger.Logger) RecordService {
	return &recordService{
		records:          records,
		images:           images,
		artworkValidator: validators.NewArtworkValidator(),
		imageValidator:   validators.NewImageValidator(),
		ids:              utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

func (s *recordService) ListRecords(ctx context.Context, owner string) ([]models.Artwork, error) {
	log := logger.FromContext(ctx)

	records, err := s.records.Load(ctx, owner)
	if err != nil {
		log.Err(err).Str("func", "*recordService.ListRecords").Str("owner", owner).Msg("error loading records")
		return nil, fmt.Errorf("error loading records: %w", err)
	}

	return records, nil
}

func (s *recordService) GetRecord(ctx context.Context, owner, id string) (models.Artwork, error) {
	records, err := s.ListRecords(ctx, owner)
	if err != nil {
		return models.Artwork{}, err
	}

	i := indexOfRecord(records, id)
	if i < 0 {
		return models.Artwork{}, store.ErrRecordNotFound
	}

	return records[i], nil
}

func (s *recordService) AddRecord(ctx context.Context, owner string, record models.Artwork) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	record = validators.NormalizeArtwork(record)
	if err := s.artworkValidator.Validate(ctx, record); err != nil {
		log.Err(err).Str("func", "*recordService.AddRecord").Msg("invalid record")
		return models.Artwork{}, err
	}

	record.ID = s.ids.Generate()
	record.ImagePath = ""
	record.Owner = ""

	err := s.records.Update(ctx, owner, func(records []models.Artwork) ([]models.Artwork, error) {
		if indexOfRecord(records, record.ID) >= 0 {
			return nil, store.ErrRecordAlreadyExists
		}
		return append(records, record), nil
	})
	if err != nil {
		log.Err(err).Str("func", "*recordService.AddRecord").Str("owner", owner).Msg("error adding record")
		return models.Artwork{}, fmt.Errorf("error adding record: %w", err)
	}

	return record, nil
}

func (s *recordService) UpdateRecord(ctx context.Context, owner, id string, record models.Artwork) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	record = validators.NormalizeArtwork(record)
	if err := s.artworkValidator.Validate(ctx, record); err != nil {
		log.Err(err).Str("func", "*recordService.UpdateRecord").Msg("invalid record")
		return models.Artwork{}, err
	}

	var updated models.Artwork
	err := s.records.Update(ctx, owner, func(records []models.Artwork) ([]models.Artwork, error) {
		i := indexOfRecord(records, id)
		if i < 0 {
			return nil, store.ErrRecordNotFound
		}

		updated = records[i]
		updated.Name = record.Name
		updated.Author = record.Author
		updated.EntryDate = record.EntryDate
		updated.Location = record.Location
		updated.Description = record.Description
		records[i] = updated
		return records, nil
	})
	if err != nil {
		log.Err(err).Str("func", "*recordService.UpdateRecord").Str("owner", owner).Str("id", id).Msg("error updating record")
		return models.Artwork{}, fmt.Errorf("error updating record: %w", err)
	}

	return updated, nil
}

func (s *recordService) DeleteRecord(ctx context.Context, owner, id string) error {
	log := logger.FromContext(ctx)

	var removed models.Artwork
	err := s.records.Update(ctx, owner, func(records []models.Artwork) ([]models.Artwork, error) {
		i := indexOfRecord(records, id)
		if i < 0 {
			return nil, store.ErrRecordNotFound
		}

		removed = records[i]
		return slices.Delete(records, i, i+1), nil
	})
	if err != nil {
		log.Err(err).Str("func", "*recordService.DeleteRecord").Str("owner", owner).Str("id", id).Msg("error deleting record")
		return fmt.Errorf("error deleting record: %w", err)
	}

	if removed.HasImage() {
		s.deleteImage(ctx, removed.ImagePath)
	}

	return nil
}

func (s *recordService) SetImage(ctx context.Context, owner, id string, upload models.ImageUpload, content io.Reader) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	if err := s.imageValidator.Validate(ctx, upload); err != nil {
		log.Err(err).Str("func", "*recordService.SetImage").Str("filename", upload.Filename).Msg("invalid image")
		return models.Artwork{}, err
	}

	name, err := s.images.Store(ctx, content, upload.Extension())
	if err != nil {
		log.Err(err).Str("func", "*recordService.SetImage").Msg("error storing image")
		return models.Artwork{}, fmt.Errorf("error storing image: %w", err)
	}

	var previous string
	var updated models.Artwork
	err = s.records.Update(ctx, owner, func(records []models.Artwork) ([]models.Artwork, error) {
		i := indexOfRecord(records, id)
		if i < 0 {
			return nil, store.ErrRecordNotFound
		}

		previous = records[i].ImagePath
		records[i].ImagePath = name
		updated = records[i]
		return records, nil
	})
	if err != nil {
		log.Err(err).Str("func", "*recordService.SetImage").Str("owner", owner).Str("id", id).Msg("error attaching image")
		s.deleteImage(ctx, name)
		return models.Artwork{}, fmt.Errorf("error attaching image: %w", err)
	}

	if previous != "" && previous != name {
		s.deleteImage(ctx, previous)
	}

	return updated, nil
}

func (s *recordService) PurgeOwner(ctx context.Context, owner string) error {
	log := logger.FromContext(ctx)

	err := s.records.Drop(ctx, owner, func(records []models.Artwork) error {
		for _, record := range records {
			if record.HasImage() {
				s.deleteImage(ctx, record.ImagePath)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*recordService.PurgeOwner").Str("owner", owner).Msg("error dropping record store")
		return fmt.Errorf("error dropping record store: %w", err)
	}

	return nil
}

// deleteImage removes an image file. Failures leave an orphan file and are
// only logged.
func (s *recordService) deleteImage(ctx context.Context, name string) {
	if err := s.images.Delete(ctx, name); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recordService.deleteImage").Str("image", name).Msg("error deleting image")
	}
}

func indexOfRecord(records []models.Artwork, id string) int {
	return slices.IndexFunc(records, func(a models.Artwork) bool { return a.ID == id })
}
