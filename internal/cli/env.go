// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/service"
	"github.com/MKhiriev/go-acervo/internal/store"
)

// env is what a command runs against: the opened stores and the services
// built on top of them.
type env struct {
	cfg      *config.StructuredConfig
	storages *store.Storages
	services *service.Services
	out      *printer
	logger   *logger.Logger
}

// withEnv opens the stores described by opts, runs fn and closes them.
// The context handed to fn carries the command logger.
func withEnv(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, e *env) error) error {
	log := logger.NewCLILogger("acervoctl", cmd.ErrOrStderr())
	if !opts.Verbose {
		log = &logger.Logger{Logger: log.Level(zerolog.WarnLevel)}
	}
	ctx := log.WithContext(cmd.Context())

	cfg, err := config.GetCLIConfig(opts.overrides())
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error opening stores: %w", err)
	}
	defer func() {
		if cerr := storages.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("error closing stores")
		}
	}()

	e := &env{
		cfg:      cfg,
		storages: storages,
		services: service.NewServices(storages, *cfg, opts.build, log),
		out:      newPrinter(cmd, opts.Format),
		logger:   log,
	}

	return fn(ctx, e)
}
