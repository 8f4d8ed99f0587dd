// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-acervo/internal/client"
	"github.com/MKhiriev/go-acervo/internal/session"
	"github.com/MKhiriev/go-acervo/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenPhoto
	screenConfirmDelete
	screenContexts
	screenGroups
	screenMembers
	screenGroupPrompt
	screenInvites
	screenAbout
)

type mainLoopModel struct {
	ctx       context.Context
	ws        Workspace
	buildInfo models.AppBuildInfo

	screen  screen
	loading bool
	status  string
	errMsg  string

	pendingInvites int
	serverInfo     *models.AppInfo

	contexts   []models.ViewContext
	contextIdx int

	form inputForm

	groups    []string
	groupIdx  int
	members   []models.Member
	membersOf string
	prompt    groupPrompt

	invites   []models.Invite
	inviteIdx int

	logout bool
}

func newMainLoopModel(ctx context.Context, ws Workspace, buildInfo models.AppBuildInfo) mainLoopModel {
	return mainLoopModel{
		ctx:       ctx,
		ws:        ws,
		buildInfo: buildInfo,
		loading:   true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m mainLoopModel) session() *session.Controller {
	return m.ws.Session()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case collectionLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.selectFirstIfNone()
		if m.screen == screenDetail {
			if _, ok := m.session().Selected(); !ok {
				m.screen = screenList
			}
		}
		return m, nil
	case contextsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.screen = screenList
			return m, nil
		}
		m.contexts = msg.contexts
		m.contextIdx = 0
		current := m.session().View()
		for i, c := range m.contexts {
			if c == current {
				m.contextIdx = i
			}
		}
		return m, nil
	case recordSavedMsg:
		return m.onRecordSaved(msg)
	case recordDeletedMsg:
		m.loading = false
		m.screen = screenList
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Quadro excluído"
		m.selectFirstIfNone()
		return m, nil
	case imageSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Imagem salva em " + msg.path
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Não foi possível copiar: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Detalhes copiados"
		return m, nil
	case pendingInvitesMsg:
		m.pendingInvites = len(msg.invites)
		if m.screen == screenInvites {
			m.setInvites(msg.invites)
		}
		return m, nil
	case serverInfoMsg:
		if msg.err == nil {
			info := msg.info
			m.serverInfo = &info
		}
		return m, nil
	case groupsLoadedMsg, membersLoadedMsg, groupActionMsg, invitesLoadedMsg:
		return m.updateGroupMessages(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardToInputs(msg)
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenForm:
		return m.updateForm(keyMsg)
	case screenPhoto:
		return m.updatePhoto(keyMsg)
	case screenConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	case screenContexts:
		return m.updateContexts(keyMsg)
	case screenGroups, screenMembers, screenGroupPrompt, screenInvites:
		return m.updateGroups(keyMsg)
	case screenAbout:
		if key.Matches(keyMsg, keys.esc) {
			m.screen = screenList
		}
		return m, nil
	default:
		return m.updateList(keyMsg)
	}
}

// forwardToInputs delivers non-key messages such as cursor blinks to the
// inputs of the active screen.
func (m mainLoopModel) forwardToInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenForm, screenPhoto:
		return m, m.form.update(msg)
	case screenGroupPrompt:
		return m, m.prompt.form.update(msg)
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenForm:
		return m.viewForm()
	case screenPhoto:
		return m.viewPhoto()
	case screenConfirmDelete:
		return m.viewConfirmDelete()
	case screenContexts:
		return m.viewContexts()
	case screenGroups:
		return m.viewGroups()
	case screenMembers:
		return m.viewMembers()
	case screenGroupPrompt:
		return m.viewGroupPrompt()
	case screenInvites:
		return m.viewInvites()
	case screenAbout:
		return renderBuildInfoWindow(m.buildInfo, m.serverInfo)
	default:
		return m.viewList()
	}
}

func (m *mainLoopModel) selectFirstIfNone() {
	s := m.session()
	if s.SelectedIndex() < 0 && len(s.Records()) > 0 {
		_ = s.SelectIndex(0)
	}
}

func (m *mainLoopModel) clearFeedback() {
	m.status = ""
	m.errMsg = ""
}

// ─────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		return collectionLoadedMsg{err: ws.Refresh(ctx)}
	}
}

func (m mainLoopModel) cmdSwitchView(view models.ViewContext) tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		return collectionLoadedMsg{err: ws.SwitchView(ctx, view)}
	}
}

func (m mainLoopModel) cmdContexts() tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		contexts, err := ws.Contexts(ctx)
		return contextsLoadedMsg{contexts: contexts, err: err}
	}
}

func (m mainLoopModel) cmdDelete() tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		return recordDeletedMsg{err: ws.DeleteSelected(ctx)}
	}
}

func (m mainLoopModel) cmdCopy(record models.Artwork) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(client.Details(record))}
	}
}

func (m mainLoopModel) cmdSaveImage(record models.Artwork) tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		data, err := ws.Image(ctx, record)
		if err != nil {
			return imageSavedMsg{err: err}
		}

		path := filepath.Join(os.TempDir(), filepath.Base(record.ImagePath))
		if err = os.WriteFile(path, data, 0o600); err != nil {
			return imageSavedMsg{err: err}
		}
		return imageSavedMsg{path: path}
	}
}

func (m mainLoopModel) cmdServerInfo() tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		info, err := ws.Version(ctx)
		return serverInfoMsg{info: info, err: err}
	}
}
