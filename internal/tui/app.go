// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-acervo/models"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// RootModel drives the sign-in program. It owns the page switch and the
// about window, and quits once a login or registration succeeds.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo models.AppBuildInfo
	aboutOpen bool

	user       models.User
	quitByUser bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case AuthResult:
		if msg.Err == nil {
			r.user = msg.User
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleKey processes the keys that work above the pages. On the menu "v"
// toggles the about window and "q" quits; elsewhere those letters are text.
func (r *RootModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		r.quitByUser = true
		return true, tea.Quit
	}

	if r.aboutOpen {
		if key.Matches(msg, keys.esc, keys.view) {
			r.aboutOpen = false
		}
		return true, nil
	}

	if !r.onMenu() {
		return false, nil
	}

	switch {
	case key.Matches(msg, keys.view):
		r.aboutOpen = true
		return true, nil
	case msg.String() == "q":
		r.quitByUser = true
		return true, tea.Quit
	}

	return false, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.aboutOpen = false
	r.current = next

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	switch {
	case r.aboutOpen:
		return renderBuildInfoWindow(r.buildInfo, nil)
	case r.current == nil:
		return renderPage("ACERVO", "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) onMenu() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
