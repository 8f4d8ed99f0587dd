// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/utils"
)

// localImageStorage keeps images as files in a single directory.
type localImageStorage struct {
	dir    string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewLocalImageStorage constructs an [ImageStorage] writing into dir.
func NewLocalImageStorage(dir string, logger *logger.Logger) ImageStorage {
	logger.Debug().Str("dir", dir).Msg("creating local image storage")
	return &localImageStorage{
		dir:    dir,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// Store writes r to a freshly named file. The file is created exclusively
// so an existing image is never overwritten.
func (s *localImageStorage) Store(ctx context.Context, r io.Reader, ext string) (string, error) {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating image dir: %w", err)
	}

	name := s.ids.Generate() + strings.ToLower(ext)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*localImageStorage.Store").Str("name", name).Msg("error creating image file")
		return "", fmt.Errorf("error creating image file: %w", err)
	}

	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		log.Err(err).Str("func", "*localImageStorage.Store").Str("name", name).Msg("error writing image file")
		return "", fmt.Errorf("error writing image file: %w", err)
	}
	if err = f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("error closing image file: %w", err)
	}

	return name, nil
}

func (s *localImageStorage) Open(_ context.Context, name string) (io.ReadCloser, error) {
	if err := checkImageName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening image file: %w", err)
	}

	return f, nil
}

func (s *localImageStorage) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if err := checkImageName(name); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Err(err).Str("func", "*localImageStorage.Delete").Str("name", name).Msg("error removing image file")
		return fmt.Errorf("error removing image file: %w", err)
	}

	return nil
}

// checkImageName rejects names that could escape the image directory.
func checkImageName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidImageName, name)
	}
	return nil
}
