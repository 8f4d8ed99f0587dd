// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/models"
)

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// sqlRecordRepository is the [RecordRepository] over the "artworks" table.
// A store is the set of rows of one owner ordered by position; saving
// replaces all of them inside one transaction.
type sqlRecordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLRecordRepository constructs a [RecordRepository] backed by db.
func NewSQLRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql record repository")
	return &sqlRecordRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sqlRecordRepository) Load(ctx context.Context, owner string) ([]models.Artwork, error) {
	return r.load(ctx, r.db, owner)
}

func (r *sqlRecordRepository) load(ctx context.Context, q queryer, owner string) ([]models.Artwork, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectArtworksQuery(r.db.builder, owner)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordRepository.load").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordRepository.load").Bool("retryable", r.db.retryable(err)).Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := []models.Artwork{}
	for rows.Next() {
		var a models.Artwork
		if err = rows.Scan(&a.ID, &a.Name, &a.Author, &a.EntryDate, &a.Location, &a.Description, &a.ImagePath); err != nil {
			log.Err(err).Str("func", "sqlRecordRepository.load").Msg("error scanning artwork row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, a)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "sqlRecordRepository.load").Msg("error iterating artwork rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *sqlRecordRepository) Save(ctx context.Context, owner string, records []models.Artwork) error {
	return r.inTx(ctx, owner, func(tx *sql.Tx) error {
		return r.replace(ctx, tx, owner, records)
	})
}

func (r *sqlRecordRepository) Update(ctx context.Context, owner string, fn func([]models.Artwork) ([]models.Artwork, error)) error {
	return r.inTx(ctx, owner, func(tx *sql.Tx) error {
		records, err := r.load(ctx, tx, owner)
		if err != nil {
			return err
		}

		records, err = fn(records)
		if err != nil {
			return err
		}

		return r.replace(ctx, tx, owner, records)
	})
}

func (r *sqlRecordRepository) Drop(ctx context.Context, owner string, fn func([]models.Artwork) error) error {
	log := logger.FromContext(ctx)

	return r.inTx(ctx, owner, func(tx *sql.Tx) error {
		if fn != nil {
			records, err := r.load(ctx, tx, owner)
			if err != nil {
				return err
			}
			if err = fn(records); err != nil {
				return err
			}
		}

		query, args, err := buildDeleteArtworksQuery(r.db.builder, owner)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "sqlRecordRepository.Drop").Bool("retryable", r.db.retryable(err)).Msg("error deleting artworks")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
}

// inTx runs fn in a transaction holding the owner's lock and commits when
// fn succeeds.
func (r *sqlRecordRepository) inTx(ctx context.Context, owner string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordRepository.inTx").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if r.db.dialect == dialectPostgres {
		if _, err = tx.ExecContext(ctx, lockOwnerPostgres, owner); err != nil {
			log.Err(err).Str("func", "sqlRecordRepository.inTx").Msg("error locking owner")
			return fmt.Errorf("%w: %w", ErrLockingStore, err)
		}
	}

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqlRecordRepository.inTx").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *sqlRecordRepository) replace(ctx context.Context, tx *sql.Tx, owner string, records []models.Artwork) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteArtworksQuery(r.db.builder, owner)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqlRecordRepository.replace").Msg("error deleting artworks")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(records) == 0 {
		return nil
	}

	query, args, err = buildInsertArtworksQuery(r.db.builder, owner, records)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqlRecordRepository.replace").Msg("error inserting artworks")
		if isUniqueViolation(err) {
			return ErrRecordAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
