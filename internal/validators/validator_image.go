// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-acervo/models"
)

var allowedImageContentTypes = []string{"image/png", "image/jpeg"}

// ImageValidator accepts png and jpeg uploads. Both the file extension and
// the sniffed content type must match.
type ImageValidator struct {
}

func NewImageValidator() Validator {
	return &ImageValidator{}
}

// Validate implements [Validator] for models.ImageUpload and
// *models.ImageUpload.
func (v *ImageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.ImageUpload:
		return validateImage(value)
	case *models.ImageUpload:
		return validateImage(*value)
	default:
		return ErrUnsupportedType
	}
}

func validateImage(upload models.ImageUpload) error {
	if !slices.Contains(models.AllowedImageExtensions, upload.Extension()) {
		return ErrUnsupportedImageType
	}
	if len(upload.Head) == 0 {
		return ErrUnsupportedImageType
	}
	if !slices.Contains(allowedImageContentTypes, http.DetectContentType(upload.Head)) {
		return ErrUnsupportedImageType
	}
	return nil
}
