// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/models"
)

// RootOptions holds the global flags shared by every command.
type RootOptions struct {
	ConfigPath     string
	DocumentPath   string
	RecordsBackend string
	RecordsDir     string
	RecordsDSN     string
	ImagesDir      string

	Format  string // "text" | "json"
	Verbose bool

	build models.AppBuildInfo
}

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the acervoctl root command.
func NewRootCommand(build models.AppBuildInfo) *cobra.Command {
	opts := &RootOptions{build: build}

	cmd := &cobra.Command{
		Use:   "acervoctl",
		Short: "Maintenance commands for the acervo catalog",
		Long: `acervoctl manages accounts and groups of an acervo catalog and checks
its stores for damage. It reads the same configuration as the server:
environment variables, the JSON file given by --config, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "path to the JSON configuration file")
	flags.StringVar(&opts.DocumentPath, "document", "", "path to the shared YAML document")
	flags.StringVar(&opts.RecordsBackend, "records-backend", "", "records backend (file|sqlite|postgres)")
	flags.StringVar(&opts.RecordsDir, "records-dir", "", "directory of the file records backend")
	flags.StringVar(&opts.RecordsDSN, "records-dsn", "", "connection string of the SQL records backends")
	flags.StringVar(&opts.ImagesDir, "images-dir", "", "directory of the local images backend")
	flags.StringVar(&opts.Format, "format", "text", "output format (text|json)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log storage activity to stderr")

	cmd.AddCommand(NewUsersCommand(opts))
	cmd.AddCommand(NewGroupsCommand(opts))
	cmd.AddCommand(NewAdminCommand(opts))
	cmd.AddCommand(NewDoctorCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// overrides turns the storage flags into a partial configuration. Empty
// flags leave the environment and file values in place.
func (o *RootOptions) overrides() config.StructuredConfig {
	return config.StructuredConfig{
		JSONFilePath: o.ConfigPath,
		Storage: config.Storage{
			Document: config.Document{Path: o.DocumentPath},
			Records: config.Records{
				Backend: o.RecordsBackend,
				Dir:     o.RecordsDir,
				DSN:     o.RecordsDSN,
			},
			Images: config.Images{Dir: o.ImagesDir},
		},
	}
}
