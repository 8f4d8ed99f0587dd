// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/models"
)

// fileRecord is the on-disk shape of a record inside "dados_{owner}.json".
type fileRecord struct {
	ID            string  `json:"ID"`
	Nome          string  `json:"Nome"`
	Autor         string  `json:"Autor"`
	DataEntrada   string  `json:"Data de Entrada"`
	Localizacao   string  `json:"Localização"`
	Descricao     string  `json:"Descrição"`
	CaminhoImagem *string `json:"CaminhoImagem"`
}

func toFileRecord(a models.Artwork) fileRecord {
	rec := fileRecord{
		ID:          a.ID,
		Nome:        a.Name,
		Autor:       a.Author,
		DataEntrada: a.EntryDate,
		Localizacao: a.Location,
		Descricao:   a.Description,
	}
	if a.ImagePath != "" {
		image := a.ImagePath
		rec.CaminhoImagem = &image
	}
	return rec
}

func (f fileRecord) artwork() models.Artwork {
	a := models.Artwork{
		ID:          f.ID,
		Name:        f.Nome,
		Author:      f.Autor,
		EntryDate:   f.DataEntrada,
		Location:    f.Localizacao,
		Description: f.Descricao,
	}
	if f.CaminhoImagem != nil {
		a.ImagePath = *f.CaminhoImagem
	}
	return a
}

// fileRecordRepository keeps one JSON file per owner in dir.
type fileRecordRepository struct {
	dir    string
	logger *logger.Logger
}

// NewFileRecordRepository constructs a [RecordRepository] storing each
// owner's records in dir/dados_{owner}.json.
func NewFileRecordRepository(dir string, logger *logger.Logger) RecordRepository {
	logger.Debug().Str("dir", dir).Msg("creating file record repository")
	return &fileRecordRepository{
		dir:    dir,
		logger: logger,
	}
}

func (r *fileRecordRepository) path(owner string) (string, error) {
	if owner == "" || strings.ContainsAny(owner, `/\`) || owner == "." || owner == ".." {
		return "", fmt.Errorf("invalid record store owner %q", owner)
	}
	return filepath.Join(r.dir, "dados_"+owner+".json"), nil
}

func (r *fileRecordRepository) Load(ctx context.Context, owner string) ([]models.Artwork, error) {
	path, err := r.path(owner)
	if err != nil {
		return nil, err
	}

	return r.load(ctx, path)
}

func (r *fileRecordRepository) load(ctx context.Context, path string) ([]models.Artwork, error) {
	log := logger.FromContext(ctx)

	payload, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Artwork{}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*fileRecordRepository.load").Str("path", path).Msg("error reading record store")
		return nil, fmt.Errorf("error reading record store: %w", err)
	}

	var stored []fileRecord
	if err = json.Unmarshal(payload, &stored); err != nil {
		log.Err(err).Str("func", "*fileRecordRepository.load").Str("path", path).Msg("record store is corrupt")
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptRecordStore, filepath.Base(path), err)
	}

	records := make([]models.Artwork, 0, len(stored))
	for _, rec := range stored {
		records = append(records, rec.artwork())
	}

	return records, nil
}

func (r *fileRecordRepository) Save(ctx context.Context, owner string, records []models.Artwork) error {
	path, err := r.path(owner)
	if err != nil {
		return err
	}

	unlock, err := lockFile(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	return r.save(ctx, path, records)
}

func (r *fileRecordRepository) save(ctx context.Context, path string, records []models.Artwork) error {
	log := logger.FromContext(ctx)

	stored := make([]fileRecord, 0, len(records))
	for _, a := range records {
		stored = append(stored, toFileRecord(a))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stored); err != nil {
		return fmt.Errorf("error encoding record store: %w", err)
	}

	if err := writeFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		log.Err(err).Str("func", "*fileRecordRepository.save").Str("path", path).Msg("error writing record store")
		return err
	}

	return nil
}

func (r *fileRecordRepository) Update(ctx context.Context, owner string, fn func([]models.Artwork) ([]models.Artwork, error)) error {
	path, err := r.path(owner)
	if err != nil {
		return err
	}

	unlock, err := lockFile(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	records, err := r.load(ctx, path)
	if err != nil {
		return err
	}

	records, err = fn(records)
	if err != nil {
		return err
	}

	return r.save(ctx, path, records)
}

// Drop removes dados_{owner}.json while holding its lock. The lock file is
// left in place: another writer may be waiting on it.
func (r *fileRecordRepository) Drop(ctx context.Context, owner string, fn func([]models.Artwork) error) error {
	log := logger.FromContext(ctx)

	path, err := r.path(owner)
	if err != nil {
		return err
	}

	unlock, err := lockFile(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if unlockErr := unlock(); unlockErr != nil {
			log.Err(unlockErr).Str("func", "*fileRecordRepository.Drop").Str("path", path).Msg("error unlocking record store")
		}
	}()

	if fn != nil {
		records, err := r.load(ctx, path)
		if err != nil {
			return err
		}
		if err = fn(records); err != nil {
			return err
		}
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Err(err).Str("func", "*fileRecordRepository.Drop").Str("path", path).Msg("error removing record store")
		return fmt.Errorf("error removing record store: %w", err)
	}

	return nil
}
