// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/workers"
	"github.com/MKhiriev/go-acervo/models"
)

type App struct {
	workspace *Workspace
	ui        UI
	cfg       config.ClientWorkers
	logger    *logger.Logger
}

func NewApp(workspace *Workspace, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if workspace == nil || ui == nil {
		return nil, fmt.Errorf("client app requires a workspace and a ui")
	}

	return &App{
		workspace: workspace,
		ui:        ui,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// Run implements [Client]. It alternates between the login flow and the
// main loop until the user quits.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	for {
		user, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.runSession(ctx, user)
		if errors.Is(err, ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.workspace.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout request failed")
		}
	}
}

func (a *App) runSession(ctx context.Context, user models.User) (bool, error) {
	sessionCtx, cancel := context.WithCancel(ctx)

	invitePoller := workers.NewPeriodicWorker("invites", a.cfg.InvitePollInterval, a.pollInvites, a.logger.WithUser(user.Username))
	sessionWorkers := workers.NewWorkers(invitePoller)

	done := make(chan struct{})
	go func() {
		defer close(done)
		sessionWorkers.Run(sessionCtx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	return a.ui.MainLoop(sessionCtx)
}

func (a *App) pollInvites(ctx context.Context) error {
	invites, err := a.workspace.PendingInvites(ctx)
	if err != nil {
		return fmt.Errorf("poll invites: %w", err)
	}

	a.ui.NotifyInvites(invites)
	return nil
}
