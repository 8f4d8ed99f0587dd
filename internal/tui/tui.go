// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the Bubble Tea front end of the acervo client.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-acervo/internal/client"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/session"
	"github.com/MKhiriev/go-acervo/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Workspace is the client session the screens operate on. It is
// implemented by [client.Workspace].
type Workspace interface {
	Authenticator

	Session() *session.Controller
	Version(ctx context.Context) (models.AppInfo, error)

	Refresh(ctx context.Context) error
	SwitchView(ctx context.Context, view models.ViewContext) error
	Contexts(ctx context.Context) ([]models.ViewContext, error)

	SaveNew(ctx context.Context, record models.Artwork) (models.Artwork, error)
	SaveEdit(ctx context.Context, record models.Artwork) (models.Artwork, error)
	SetPhoto(ctx context.Context, path string) (models.Artwork, error)
	DeleteSelected(ctx context.Context) error
	Image(ctx context.Context, record models.Artwork) ([]byte, error)

	Groups(ctx context.Context) ([]string, error)
	CreateGroup(ctx context.Context, name string) (models.Group, error)
	Members(ctx context.Context, group string) ([]models.Member, error)
	Invite(ctx context.Context, group, username string) error
	LeaveGroup(ctx context.Context, group string) error
	PendingInvites(ctx context.Context) ([]models.Invite, error)
	AcceptInvite(ctx context.Context, group string) error
	DeclineInvite(ctx context.Context, group string) error
}

var _ Workspace = (*client.Workspace)(nil)

var _ client.UI = (*TUI)(nil)

// TUI implements [client.UI].
type TUI struct {
	workspace Workspace
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(workspace Workspace, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if workspace == nil {
		return nil, errors.New("tui requires a workspace")
	}
	return &TUI{workspace: workspace, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow implements [client.UI].
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.workspace),
		pageRegister: NewRegisterModel(ctx, t.workspace),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := t.run(ctx, root)
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.user.Username == "" {
		return models.User{}, client.ErrUserQuit
	}

	return result.user, nil
}

// MainLoop implements [client.UI].
func (t *TUI) MainLoop(ctx context.Context) (bool, error) {
	if t.workspace.Session() == nil {
		return false, client.ErrNotLoggedIn
	}

	finalModel, err := t.run(ctx, newMainLoopModel(ctx, t.workspace, t.buildInfo))
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

// NotifyInvites implements [client.UI]. Notifications arriving while no
// program runs are dropped; the next poll repeats them.
func (t *TUI) NotifyInvites(invites []models.Invite) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(pendingInvitesMsg{invites: invites})
	}
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	finalModel, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil, client.ErrUserQuit
	}
	if err != nil {
		t.logger.Error().Err(err).Msg("tui program failed")
		return nil, fmt.Errorf("run tui: %w", err)
	}

	return finalModel, nil
}
