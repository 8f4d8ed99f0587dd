// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	record, ok := m.session().Selected()
	if !ok {
		m.screen = screenList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.clearFeedback()
		m.screen = screenList
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(record)
	case key.Matches(msg, keys.saveImg):
		return m, m.cmdSaveImage(record)
	case key.Matches(msg, keys.newItem):
		// adding is a list action
	default:
		return m.updateRecordActions(msg)
	}

	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	record, ok := m.session().Selected()
	if !ok {
		return renderPage("QUADRO", "", "esc: voltar")
	}

	rows := [][2]string{
		{"Nome", record.Label()},
		{"Autor", valueOrDash(record.Author)},
		{"Data de Entrada", valueOrDash(record.EntryDate)},
		{"Localização", valueOrDash(record.Location)},
		{"Descrição", valueOrDash(record.Description)},
		{"Imagem", valueOrDash(record.ImagePath)},
	}
	if record.Owner != "" {
		rows = append(rows, [2]string{"Dono", record.Owner})
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-16s │ %s\n", row[0], row[1]))
	}
	renderFeedback(&b, m.status, m.errMsg)

	hotKeys := "y: copiar │ esc: voltar"
	if record.HasImage() {
		hotKeys = "o: salvar imagem │ " + hotKeys
	}
	if m.session().CanModify(record) {
		hotKeys = "e: editar │ p: foto │ d: excluir │ " + hotKeys
	}

	return renderPage("QUADRO", strings.TrimRight(b.String(), "\n"), hotKeys)
}
