// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-acervo/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const listLabelWidth = 48

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if i := s.SelectedIndex(); i > 0 {
			_ = s.SelectIndex(i - 1)
		}
	case key.Matches(msg, keys.down):
		if i := s.SelectedIndex(); i < len(s.Records())-1 {
			_ = s.SelectIndex(i + 1)
		}
	case key.Matches(msg, keys.enter):
		if _, ok := s.Selected(); ok {
			m.clearFeedback()
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.refresh):
		m.clearFeedback()
		m.loading = true
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.contexts):
		m.clearFeedback()
		m.loading = true
		m.screen = screenContexts
		return m, m.cmdContexts()
	case key.Matches(msg, keys.groups):
		m.clearFeedback()
		m.loading = true
		m.screen = screenGroups
		return m, m.cmdGroups()
	case key.Matches(msg, keys.invites):
		m.clearFeedback()
		m.loading = true
		m.screen = screenInvites
		return m, m.cmdInvites()
	case key.Matches(msg, keys.view):
		m.screen = screenAbout
		return m, m.cmdServerInfo()
	default:
		return m.updateRecordActions(msg)
	}

	return m, nil
}

// updateRecordActions handles the add, edit, photo and delete keys shared
// by the list and detail screens.
func (m mainLoopModel) updateRecordActions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session()

	switch {
	case key.Matches(msg, keys.newItem):
		if err := s.BeginAdd(); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.clearFeedback()
		m.form = newRecordForm(models.Artwork{})
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		record, err := s.BeginEdit()
		if err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.clearFeedback()
		m.form = newRecordForm(record)
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(msg, keys.photo):
		if _, err := s.BeginPhoto(); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.clearFeedback()
		m.form = newPhotoForm()
		m.screen = screenPhoto
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		if _, err := s.CheckDelete(); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.clearFeedback()
		m.screen = screenConfirmDelete
	}

	return m, nil
}

func (m mainLoopModel) viewList() string {
	s := m.session()
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Usuário: %s │ Acervo: %s", s.Username(), s.View()))
	if m.pendingInvites > 0 {
		b.WriteString(fmt.Sprintf(" │ Convites pendentes: %d", m.pendingInvites))
	}
	b.WriteString("\n\n")

	labels := s.Labels()
	switch {
	case m.loading:
		b.WriteString("Carregando...\n")
	case len(labels) == 0:
		b.WriteString("Nenhum quadro neste acervo\n")
	default:
		selected := s.SelectedIndex()
		for i, label := range labels {
			b.WriteString(cursorLine(i == selected, fitText(label, listLabelWidth)))
			b.WriteString("\n")
		}
	}
	renderFeedback(&b, m.status, m.errMsg)

	hotKeys := "enter: abrir │ c: trocar acervo │ r: atualizar │ g: grupos │ i: convites │ v: versão │ l: sair da conta │ q: sair"
	if s.CanAdd() {
		hotKeys = "n: novo │ e: editar │ p: foto │ d: excluir │ " + hotKeys
	} else {
		hotKeys = "e: editar │ p: foto │ d: excluir │ " + hotKeys
	}

	return renderPage("ACERVO", strings.TrimRight(b.String(), "\n"), hotKeys)
}
