// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-acervo/internal/cli"
	"github.com/MKhiriev/go-acervo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cmd := cli.NewRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "acervoctl: %v\n", err)
		os.Exit(1)
	}
}
