// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-acervo/internal/session"
	"github.com/MKhiriev/go-acervo/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldAuthor
	fieldEntryDate
	fieldLocation
	fieldDescription
)

func newRecordForm(record models.Artwork) inputForm {
	return newInputForm(
		formField{label: "Nome", placeholder: "obrigatório", value: record.Name},
		formField{label: "Autor", placeholder: "obrigatório", value: record.Author},
		formField{label: "Data de Entrada", placeholder: "dd/mm/aaaa", limit: 10, value: record.EntryDate},
		formField{label: "Localização", value: record.Location},
		formField{label: "Descrição", value: record.Description},
	)
}

func newPhotoForm() inputForm {
	return newInputForm(formField{label: "Arquivo", placeholder: "/caminho/para/imagem.png", limit: 1024})
}

func (m mainLoopModel) formRecord() models.Artwork {
	return models.Artwork{
		Name:        m.form.value(fieldName),
		Author:      m.form.value(fieldAuthor),
		EntryDate:   m.form.value(fieldEntryDate),
		Location:    m.form.value(fieldLocation),
		Description: m.form.value(fieldDescription),
	}
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m.cancelForm()
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.loading {
			return m, nil
		}
		if m.form.focus < len(m.form.inputs)-1 {
			m.form.focusNext()
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdSaveRecord(m.formRecord())
	}

	return m, m.form.update(msg)
}

func (m mainLoopModel) updatePhoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m.cancelForm()
	case key.Matches(msg, keys.enter):
		if m.loading {
			return m, nil
		}
		path := m.form.value(0)
		if path == "" {
			m.errMsg = "Informe o caminho da imagem (.png, .jpg, .jpeg)"
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdSetPhoto(path)
	}

	return m, m.form.update(msg)
}

func (m mainLoopModel) cancelForm() (tea.Model, tea.Cmd) {
	m.session().Cancel()
	m.clearFeedback()
	m.loading = false
	m.screen = screenList
	return m, nil
}

func (m mainLoopModel) onRecordSaved(msg recordSavedMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	if m.session().Mode() != session.ModeView {
		// the server rejected the change, keep the form open
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	m.errMsg = humanizeError(msg.err)
	m.status = "Quadro salvo: " + msg.record.Label()
	m.screen = screenDetail
	if _, ok := m.session().Selected(); !ok {
		m.screen = screenList
	}
	return m, nil
}

func (m mainLoopModel) viewForm() string {
	title := "NOVO QUADRO"
	if m.session().Mode() == session.ModeEdit {
		title = "EDITAR QUADRO"
	}

	var b strings.Builder
	b.WriteString(m.form.view())
	if m.loading {
		b.WriteString("\n\n[Salvando...]")
	} else {
		b.WriteString("\n\n[Salvar]")
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancelar │ tab: próximo campo │ enter: avançar/salvar")
}

func (m mainLoopModel) viewPhoto() string {
	var b strings.Builder
	if record, ok := m.session().Selected(); ok {
		b.WriteString("Quadro: ")
		b.WriteString(record.Label())
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.view())
	if m.loading {
		b.WriteString("\n\n[Enviando...]")
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage("FOTO DO QUADRO", strings.TrimRight(b.String(), "\n"), "esc: cancelar │ enter: enviar")
}

// ─────────────────────────────────────────────
// Delete confirmation
// ─────────────────────────────────────────────

func (m mainLoopModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.loading = true
		return m, m.cmdDelete()
	case key.Matches(msg, keys.no):
		m.screen = screenList
	}
	return m, nil
}

func (m mainLoopModel) viewConfirmDelete() string {
	record, _ := m.session().Selected()
	content := "Excluir \"" + record.Label() + "\"?\n\n"
	content += "y sim    n não"
	if m.loading {
		content += "\n\nExcluindo..."
	}
	return overlayBoxStyle.Render(content)
}

// ─────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────

func (m mainLoopModel) cmdSaveRecord(record models.Artwork) tea.Cmd {
	ctx, ws := m.ctx, m.ws
	editing := m.session().Mode() == session.ModeEdit

	return func() tea.Msg {
		var (
			saved models.Artwork
			err   error
		)
		if editing {
			saved, err = ws.SaveEdit(ctx, record)
		} else {
			saved, err = ws.SaveNew(ctx, record)
		}
		return recordSavedMsg{record: saved, err: err}
	}
}

func (m mainLoopModel) cmdSetPhoto(path string) tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		record, err := ws.SetPhoto(ctx, path)
		return recordSavedMsg{record: record, err: err}
	}
}
