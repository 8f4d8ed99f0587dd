// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-acervo/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, server *models.AppInfo) string {
	var b strings.Builder

	b.WriteString("Aplicativo: Acervo\n")
	b.WriteString("Versão: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Data: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	if server != nil {
		b.WriteString("\n\nServidor: ")
		b.WriteString(valueOrNA(server.Version))
		b.WriteString(" (")
		b.WriteString(valueOrNA(server.Commit))
		b.WriteString(")")
	}

	return renderPage("SOBRE O PROGRAMA", b.String(), "esc: voltar")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
