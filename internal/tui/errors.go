// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-acervo/internal/adapter"
	"github.com/MKhiriev/go-acervo/internal/client"
	"github.com/MKhiriev/go-acervo/internal/session"
	"github.com/MKhiriev/go-acervo/models"
)

// humanizeError turns client and transport errors into messages for the
// status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, session.ErrNotOwner):
		return "Apenas o dono pode alterar este quadro"
	case errors.Is(err, session.ErrNotPersonalView):
		return "Quadros só podem ser adicionados em " + models.PersonalViewLabel
	case errors.Is(err, session.ErrNoSelection):
		return "Nenhum quadro selecionado"
	case errors.Is(err, session.ErrBusy):
		return "Conclua ou cancele a ação atual"
	case errors.Is(err, client.ErrNoImage):
		return "Este quadro não tem imagem"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Sessão inválida ou credenciais incorretas"
	case errors.Is(err, adapter.ErrTooLarge):
		return "Imagem grande demais"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Sem rede ou servidor indisponível"
	}

	return err.Error()
}
