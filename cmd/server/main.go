// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/handler"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/server"
	"github.com/MKhiriev/go-acervo/internal/service"
	"github.com/MKhiriev/go-acervo/internal/store"
	"github.com/MKhiriev/go-acervo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("acervo-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("document", cfg.Storage.Document.Path).
		Str("records_backend", cfg.Storage.Records.Backend).
		Str("images_backend", cfg.Storage.Images.Backend).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	// the first write of the document generates its session signing key
	if err = storages.Document.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("error initializing configuration document")
	}

	services := service.NewServices(storages, *cfg, build, log)

	if cfg.App.AdminPassword != "" {
		created, err := services.AuthService.EnsureAdmin(ctx, cfg.App.AdminPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("error bootstrapping admin account")
		}
		if created {
			log.Info().Msg("admin account created")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
