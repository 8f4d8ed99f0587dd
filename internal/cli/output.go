// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// printer writes command results either as text or as indented JSON.
type printer struct {
	format string
	w      io.Writer
}

func newPrinter(cmd *cobra.Command, format string) *printer {
	return &printer{format: format, w: cmd.OutOrStdout()}
}

func (p *printer) json() bool {
	return p.format == "json"
}

// result prints v as JSON, or calls text for the text format.
func (p *printer) result(v any, text func()) error {
	if p.json() {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text()
	return nil
}

func (p *printer) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(p.w, t.String())
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
