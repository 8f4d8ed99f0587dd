// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuEntry struct {
	label string
	page  string
}

// MenuModel is the first page: sign in or create an account.
type MenuModel struct {
	entries []menuEntry
	cursor  int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{entries: []menuEntry{
		{label: "Entrar", page: pageLogin},
		{label: "Cadastrar", page: pageRegister},
	}}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(keyMsg, keys.down):
		m.cursor = min(m.cursor+1, len(m.entries)-1)
	case key.Matches(keyMsg, keys.enter):
		page := m.entries[m.cursor].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	lines := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		lines = append(lines, cursorLine(i == m.cursor, e.label))
	}

	return renderPage("ACERVO", strings.Join(lines, "\n"), "enter: escolher │ ↑/↓: navegar │ v: sobre │ q: sair")
}
