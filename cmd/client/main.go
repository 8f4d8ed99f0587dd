// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-acervo/internal/adapter"
	"github.com/MKhiriev/go-acervo/internal/client"
	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/tui"
	"github.com/MKhiriev/go-acervo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("acervo-client", cfg.App.LogFile)
	log.Info().
		Str("version", build.BuildVersion()).
		Str("server", cfg.Adapter.HTTPAddress).
		Msg("starting client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	workspace := client.NewWorkspace(serverAdapter, log)

	ui, err := tui.New(workspace, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(workspace, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
