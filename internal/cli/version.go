// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "github.com/spf13/cobra"

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := rootOpts.build.Info()
			out := newPrinter(cmd, rootOpts.Format)
			return out.result(info, func() {
				out.line("Build version: %s", info.Version)
				out.line("Build date: %s", info.Date)
				out.line("Build commit: %s", info.Commit)
			})
		},
	}
}
