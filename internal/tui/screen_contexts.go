// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateContexts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
	case key.Matches(msg, keys.up):
		if m.contextIdx > 0 {
			m.contextIdx--
		}
	case key.Matches(msg, keys.down):
		if m.contextIdx < len(m.contexts)-1 {
			m.contextIdx++
		}
	case key.Matches(msg, keys.enter):
		if m.contextIdx >= len(m.contexts) {
			return m, nil
		}
		view := m.contexts[m.contextIdx]
		m.clearFeedback()
		m.loading = true
		m.screen = screenList
		return m, m.cmdSwitchView(view)
	}
	return m, nil
}

func (m mainLoopModel) viewContexts() string {
	var b strings.Builder
	if m.loading {
		b.WriteString("Carregando...\n")
	}
	current := m.session().View()
	for i, c := range m.contexts {
		label := c.String()
		if c == current {
			label += " (atual)"
		}
		b.WriteString(cursorLine(i == m.contextIdx, label))
		b.WriteString("\n")
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage("TROCAR ACERVO", strings.TrimRight(b.String(), "\n"), "enter: abrir │ ↑/↓: navegar │ esc: voltar")
}
