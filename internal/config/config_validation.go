// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-acervo/models"
)

const (
	defaultDocumentPath   = "config.yaml"
	defaultRecordsDir     = "user_data"
	defaultImagesDir      = "user_images"
	defaultTokenIssuer    = "acervo"
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultClientTimeout  = 10 * time.Second
	defaultMaxUploadSize  = 10 << 20
	defaultS3Region       = "us-east-1"
	defaultInvitePoll     = time.Minute
)

// setDefaults fills every unset field that has a sensible default.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.Storage.Document.Path == "" {
		cfg.Storage.Document.Path = defaultDocumentPath
	}
	if cfg.Storage.Records.Backend == "" {
		cfg.Storage.Records.Backend = RecordsBackendFile
	}
	if cfg.Storage.Records.Dir == "" {
		cfg.Storage.Records.Dir = defaultRecordsDir
	}
	if cfg.Storage.Images.Backend == "" {
		cfg.Storage.Images.Backend = ImagesBackendLocal
	}
	if cfg.Storage.Images.Dir == "" {
		cfg.Storage.Images.Dir = defaultImagesDir
	}
	if cfg.Storage.Images.S3.Region == "" {
		cfg.Storage.Images.S3.Region = defaultS3Region
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.MaxUploadSize == 0 {
		cfg.Server.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientTimeout
	}
	if cfg.App.InvitePollInterval == 0 {
		cfg.App.InvitePollInterval = defaultInvitePoll
	}
}

// validate checks the merged and defaulted [StructuredConfig] before it is
// used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Records.Backend {
	case RecordsBackendFile:
	case RecordsBackendSQLite, RecordsBackendPostgres:
		if cfg.Storage.Records.DSN == "" {
			return fmt.Errorf("%w: records backend %q requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.Records.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown records backend %q", ErrInvalidStorageConfigs, cfg.Storage.Records.Backend)
	}

	switch cfg.Storage.Images.Backend {
	case ImagesBackendLocal:
	case ImagesBackendS3:
		if cfg.Storage.Images.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 images backend requires a bucket", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown images backend %q", ErrInvalidStorageConfigs, cfg.Storage.Images.Backend)
	}

	if cfg.App.TokenSignKey == models.DefaultCookieKey {
		return fmt.Errorf("%w: token sign key is the public placeholder", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 || cfg.App.InvitePollInterval < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidAppConfigs)
	}

	if cfg.Server.MaxUploadSize < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.InvitePollInterval < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
