// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-acervo/internal/adapter"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/session"
	"github.com/MKhiriev/go-acervo/models"
)

// Workspace is the client side of one user session.
type Workspace struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu      sync.RWMutex
	user    models.User
	session *session.Controller
}

func NewWorkspace(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *Workspace {
	return &Workspace{
		adapter: serverAdapter,
		logger:  logger,
	}
}

// ─────────────────────────────────────────────
// Account
// ─────────────────────────────────────────────

// Login authenticates and starts a session showing the personal collection.
func (w *Workspace) Login(ctx context.Context, username, password string) (models.User, error) {
	user, err := w.adapter.Login(ctx, models.User{Username: username, Password: password})
	if err != nil {
		return models.User{}, err
	}

	w.start(user)
	return user, nil
}

// Register creates the account and starts a session for it.
func (w *Workspace) Register(ctx context.Context, user models.User) (models.User, error) {
	registered, err := w.adapter.Register(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	w.start(registered)
	return registered, nil
}

func (w *Workspace) start(user models.User) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.user = user
	w.session = session.NewController(user.Username)
	w.logger.Info().Str("username", user.Username).Msg("session started")
}

// Logout ends the session. Local state is dropped even when the server
// cannot be reached.
func (w *Workspace) Logout(ctx context.Context) error {
	err := w.adapter.Logout(ctx)

	w.mu.Lock()
	w.user = models.User{}
	w.session = nil
	w.mu.Unlock()

	return err
}

// User returns the session user.
func (w *Workspace) User() models.User {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.user
}

// Session returns the view state of the active session, or nil.
func (w *Workspace) Session() *session.Controller {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.session
}

func (w *Workspace) activeSession() (*session.Controller, error) {
	s := w.Session()
	if s == nil {
		return nil, ErrNotLoggedIn
	}
	return s, nil
}

// Version returns the server build information.
func (w *Workspace) Version(ctx context.Context) (models.AppInfo, error) {
	return w.adapter.Version(ctx)
}

// ─────────────────────────────────────────────
// Viewing context
// ─────────────────────────────────────────────

// Refresh reloads the records of the active viewing context. When a group
// view is no longer accessible the session falls back to the personal view.
func (w *Workspace) Refresh(ctx context.Context) error {
	s, err := w.activeSession()
	if err != nil {
		return err
	}

	view := s.View()
	collection, err := w.adapter.Collection(ctx, view)
	if err != nil {
		if !view.IsPersonal() && (errors.Is(err, adapter.ErrForbidden) || errors.Is(err, adapter.ErrNotFound)) {
			w.logger.Warn().Err(err).Str("group", view.Group).Msg("group view unavailable, switching to personal")
			s.SwitchView(models.Personal())
			return w.Refresh(ctx)
		}
		return fmt.Errorf("load %s: %w", view, err)
	}

	if err = s.SetRecords(collection); err != nil {
		if errors.Is(err, session.ErrStaleView) {
			return nil
		}
		return err
	}

	return nil
}

// SwitchView activates view and loads its records.
func (w *Workspace) SwitchView(ctx context.Context, view models.ViewContext) error {
	s, err := w.activeSession()
	if err != nil {
		return err
	}

	s.SwitchView(view)
	return w.Refresh(ctx)
}

// Contexts returns the viewing contexts available to the session user.
func (w *Workspace) Contexts(ctx context.Context) ([]models.ViewContext, error) {
	s, err := w.activeSession()
	if err != nil {
		return nil, err
	}

	groups, err := w.adapter.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	return s.Contexts(groups), nil
}

// ─────────────────────────────────────────────
// Records
// ─────────────────────────────────────────────

// SaveNew stores record in the personal collection. The session must be in
// add mode; on failure it stays there so the form can be corrected.
func (w *Workspace) SaveNew(ctx context.Context, record models.Artwork) (models.Artwork, error) {
	s, err := w.activeSession()
	if err != nil {
		return models.Artwork{}, err
	}
	if s.Mode() != session.ModeAdd {
		return models.Artwork{}, ErrWrongMode
	}

	record.ID = ""
	record.Owner = ""
	record.ImagePath = ""

	added, err := w.adapter.AddRecord(ctx, record)
	if err != nil {
		return models.Artwork{}, err
	}

	s.Done(&added)
	return added, w.Refresh(ctx)
}

// SaveEdit replaces the fields of the record being edited.
func (w *Workspace) SaveEdit(ctx context.Context, record models.Artwork) (models.Artwork, error) {
	s, err := w.activeSession()
	if err != nil {
		return models.Artwork{}, err
	}
	selected, ok := s.Selected()
	if s.Mode() != session.ModeEdit || !ok {
		return models.Artwork{}, ErrWrongMode
	}

	record.ID = selected.ID
	record.Owner = ""

	updated, err := w.adapter.UpdateRecord(ctx, selected.ID, record)
	if err != nil {
		return models.Artwork{}, err
	}

	s.Done(&updated)
	return updated, w.Refresh(ctx)
}

// SetPhoto uploads the file at path as the image of the record in photo
// mode.
func (w *Workspace) SetPhoto(ctx context.Context, path string) (models.Artwork, error) {
	s, err := w.activeSession()
	if err != nil {
		return models.Artwork{}, err
	}
	selected, ok := s.Selected()
	if s.Mode() != session.ModePhoto || !ok {
		return models.Artwork{}, ErrWrongMode
	}

	path = strings.TrimSpace(path)
	f, err := os.Open(path)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	updated, err := w.adapter.SetImage(ctx, selected.ID, filepath.Base(path), f)
	if err != nil {
		return models.Artwork{}, err
	}

	s.Done(&updated)
	return updated, w.Refresh(ctx)
}

// DeleteSelected removes the selected record after the ownership check.
func (w *Workspace) DeleteSelected(ctx context.Context) error {
	s, err := w.activeSession()
	if err != nil {
		return err
	}
	record, err := s.CheckDelete()
	if err != nil {
		return err
	}

	if err = w.adapter.DeleteRecord(ctx, record.ID); err != nil {
		return err
	}

	s.ClearSelection()
	return w.Refresh(ctx)
}

// Image downloads the image of record.
func (w *Workspace) Image(ctx context.Context, record models.Artwork) ([]byte, error) {
	if !record.HasImage() {
		return nil, ErrNoImage
	}
	return w.adapter.Image(ctx, record.ImagePath)
}

// Details renders record as plain text for the clipboard.
func Details(record models.Artwork) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nome: %s\n", record.Label())
	fmt.Fprintf(&b, "Autor: %s\n", record.Author)
	fmt.Fprintf(&b, "Data de Entrada: %s\n", record.EntryDate)
	fmt.Fprintf(&b, "Localização: %s\n", record.Location)
	fmt.Fprintf(&b, "Descrição: %s", record.Description)
	return b.String()
}

// ─────────────────────────────────────────────
// Groups and invites
// ─────────────────────────────────────────────

// Groups lists the groups of the session user.
func (w *Workspace) Groups(ctx context.Context) ([]string, error) {
	return w.adapter.ListGroups(ctx)
}

func (w *Workspace) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	return w.adapter.CreateGroup(ctx, name)
}

func (w *Workspace) Members(ctx context.Context, group string) ([]models.Member, error) {
	return w.adapter.Members(ctx, group)
}

func (w *Workspace) Invite(ctx context.Context, group, username string) error {
	return w.adapter.Invite(ctx, group, username)
}

// LeaveGroup leaves group. A session showing that group returns to the
// personal view.
func (w *Workspace) LeaveGroup(ctx context.Context, group string) error {
	if err := w.adapter.LeaveGroup(ctx, group); err != nil {
		return err
	}

	if s := w.Session(); s != nil && s.View() == models.InGroup(group) {
		return w.SwitchView(ctx, models.Personal())
	}
	return nil
}

func (w *Workspace) PendingInvites(ctx context.Context) ([]models.Invite, error) {
	return w.adapter.PendingInvites(ctx)
}

func (w *Workspace) AcceptInvite(ctx context.Context, group string) error {
	return w.adapter.AcceptInvite(ctx, group)
}

func (w *Workspace) DeclineInvite(ctx context.Context, group string) error {
	return w.adapter.DeclineInvite(ctx, group)
}
