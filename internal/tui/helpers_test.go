// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-acervo/internal/client"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/mock"
	"github.com/MKhiriev/go-acervo/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	alice   = models.User{Username: "alice", Name: "Alice"}
	abaporu = models.Artwork{ID: "1", Name: "Abaporu", Author: "Tarsila"}
	bobs    = models.Artwork{ID: "2", Name: "Operários", Author: "Tarsila", Owner: "bob"}
)

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// exec runs cmd synchronously and returns its message.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// newWorkspace returns a workspace logged in as alice.
func newWorkspace(t *testing.T) (*client.Workspace, *mock.MockServerAdapter) {
	t.Helper()
	m := mock.NewMockServerAdapter(gomock.NewController(t))
	ws := client.NewWorkspace(m, logger.Nop())

	m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(alice, nil)
	_, err := ws.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	return ws, m
}

// update feeds msg to model and returns the typed result.
func update(t *testing.T, model mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := model.Update(msg)
	result, ok := next.(mainLoopModel)
	require.True(t, ok)
	return result, cmd
}

// typeText sends every rune of s as a key press.
func typeText(t *testing.T, model mainLoopModel, s string) mainLoopModel {
	t.Helper()
	for _, r := range s {
		model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model
}
