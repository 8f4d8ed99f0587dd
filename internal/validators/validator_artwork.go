// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-acervo/models"
)

// Field names accepted by [ArtworkValidator].
const (
	FieldArtworkName   = "artwork_name"
	FieldArtworkAuthor = "artwork_author"
	FieldEntryDate     = "entry_date"
)

// ArtworkValidator checks record fields on add and edit.
type ArtworkValidator struct {
}

func NewArtworkValidator() Validator {
	return &ArtworkValidator{}
}

// Validate implements [Validator] for models.Artwork and *models.Artwork.
func (v *ArtworkValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Artwork:
		return v.validateArtwork(value, fields...)
	case *models.Artwork:
		return v.validateArtwork(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ArtworkValidator) validateArtwork(artwork models.Artwork, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldArtworkName, FieldArtworkAuthor, FieldEntryDate}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldArtworkName:
			if artwork.Name == "" {
				errs = append(errs, ErrMissingRecordName)
			}
		case FieldArtworkAuthor:
			if artwork.Author == "" {
				errs = append(errs, ErrMissingRecordAuthor)
			}
		case FieldEntryDate:
			if artwork.EntryDate == "" {
				continue
			}
			if _, err := time.Parse(models.EntryDateLayout, artwork.EntryDate); err != nil {
				errs = append(errs, ErrInvalidEntryDate)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}
