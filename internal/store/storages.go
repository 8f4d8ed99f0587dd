// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/logger"
)

// Storages groups every repository used by the services.
type Storages struct {
	Document             *DocumentStore
	UserRepository       UserRepository
	MembershipRepository MembershipRepository
	RecordRepository     RecordRepository
	ImageStorage         ImageStorage

	db *DB
}

// NewStorages opens the configured backends. SQL record backends are
// migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	doc := NewDocumentStore(NewFileDocumentBackend(cfg.Document.Path), log)

	s := &Storages{
		Document:             doc,
		UserRepository:       NewUserRepository(doc, log),
		MembershipRepository: NewMembershipRepository(doc, log),
	}

	switch cfg.Records.Backend {
	case config.RecordsBackendSQLite, config.RecordsBackendPostgres:
		connect := NewConnectSQLite
		if cfg.Records.Backend == config.RecordsBackendPostgres {
			connect = NewConnectPostgres
		}

		db, err := connect(ctx, cfg.Records, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting records database: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			log.Err(err).Str("func", "NewStorages").Msg("error migrating records database")
			return nil, err
		}

		s.db = db
		s.RecordRepository = NewSQLRecordRepository(db, log)
	default:
		s.RecordRepository = NewFileRecordRepository(cfg.Records.Dir, log)
	}

	switch cfg.Images.Backend {
	case config.ImagesBackendS3:
		images, err := NewS3ImageStorage(ctx, cfg.Images.S3, log)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.ImageStorage = images
	default:
		s.ImageStorage = NewLocalImageStorage(cfg.Images.Dir, log)
	}

	return s, nil
}

// Close releases the records database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
