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

type promptKind int

const (
	promptCreateGroup promptKind = iota
	promptInvite
)

// groupPrompt is the single-input form used to create a group or invite a
// user into one.
type groupPrompt struct {
	kind  promptKind
	group string
	form  inputForm
}

func (m mainLoopModel) selectedGroup() (string, bool) {
	if m.groupIdx < 0 || m.groupIdx >= len(m.groups) {
		return "", false
	}
	return m.groups[m.groupIdx], true
}

func (m *mainLoopModel) setInvites(invites []models.Invite) {
	m.invites = invites
	m.pendingInvites = len(invites)
	if m.inviteIdx >= len(m.invites) {
		m.inviteIdx = len(m.invites) - 1
	}
	if m.inviteIdx < 0 {
		m.inviteIdx = 0
	}
}

func (m mainLoopModel) updateGroupMessages(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case groupsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.groups = msg.groups
		if m.groupIdx >= len(m.groups) {
			m.groupIdx = len(m.groups) - 1
		}
		if m.groupIdx < 0 {
			m.groupIdx = 0
		}
	case membersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.screen = screenGroups
			return m, nil
		}
		m.membersOf = msg.group
		m.members = msg.members
	case invitesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.setInvites(msg.invites)
	case groupActionMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			m.errMsg = ""
			m.status = msg.status
		}
		if m.screen == screenInvites {
			return m, m.cmdInvites()
		}
		if msg.err != nil && m.screen == screenGroupPrompt {
			return m, nil
		}
		m.screen = screenGroups
		return m, m.cmdGroups()
	}

	return m, nil
}

func (m mainLoopModel) updateGroups(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMembers:
		if key.Matches(msg, keys.esc) {
			m.screen = screenGroups
		}
		return m, nil
	case screenGroupPrompt:
		return m.updateGroupPrompt(msg)
	case screenInvites:
		return m.updateInvites(msg)
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.clearFeedback()
		m.screen = screenList
	case key.Matches(msg, keys.up):
		if m.groupIdx > 0 {
			m.groupIdx--
		}
	case key.Matches(msg, keys.down):
		if m.groupIdx < len(m.groups)-1 {
			m.groupIdx++
		}
	case key.Matches(msg, keys.newItem):
		m.clearFeedback()
		m.prompt = groupPrompt{
			kind: promptCreateGroup,
			form: newInputForm(formField{label: "Nome do grupo", placeholder: "ex.: Família Silva", limit: 64}),
		}
		m.screen = screenGroupPrompt
		return m, textinput.Blink
	}

	group, ok := m.selectedGroup()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		m.clearFeedback()
		m.loading = true
		m.members = nil
		m.screen = screenMembers
		return m, m.cmdMembers(group)
	case key.Matches(msg, keys.invite):
		m.clearFeedback()
		m.prompt = groupPrompt{
			kind:  promptInvite,
			group: group,
			form:  newInputForm(formField{label: "Usuário", placeholder: "usuario", limit: 20}),
		}
		m.screen = screenGroupPrompt
		return m, textinput.Blink
	case key.Matches(msg, keys.leave):
		m.clearFeedback()
		m.loading = true
		return m, m.cmdLeave(group)
	case key.Matches(msg, keys.view):
		m.clearFeedback()
		m.loading = true
		m.screen = screenList
		return m, m.cmdSwitchView(models.InGroup(group))
	}

	return m, nil
}

func (m mainLoopModel) updateGroupPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.screen = screenGroups
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.loading {
			return m, nil
		}
		value := m.prompt.form.value(0)
		if value == "" {
			m.errMsg = "Campo obrigatório"
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		if m.prompt.kind == promptInvite {
			return m, m.cmdInvite(m.prompt.group, strings.ToLower(value))
		}
		return m, m.cmdCreateGroup(value)
	}

	return m, m.prompt.form.update(msg)
}

func (m mainLoopModel) updateInvites(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.clearFeedback()
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.up):
		if m.inviteIdx > 0 {
			m.inviteIdx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.inviteIdx < len(m.invites)-1 {
			m.inviteIdx++
		}
		return m, nil
	}

	if m.inviteIdx >= len(m.invites) {
		return m, nil
	}
	group := m.invites[m.inviteIdx].Group

	switch {
	case key.Matches(msg, keys.accept):
		m.loading = true
		return m, m.cmdAccept(group)
	case key.Matches(msg, keys.decline):
		m.loading = true
		return m, m.cmdDecline(group)
	}
	return m, nil
}

// ─────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────

func (m mainLoopModel) viewGroups() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Carregando...\n")
	case len(m.groups) == 0:
		b.WriteString("Você não participa de nenhum grupo\n")
	default:
		for i, group := range m.groups {
			b.WriteString(cursorLine(i == m.groupIdx, group))
			b.WriteString("\n")
		}
	}
	renderFeedback(&b, m.status, m.errMsg)

	return renderPage("GRUPOS", strings.TrimRight(b.String(), "\n"),
		"n: criar │ enter: membros │ i: convidar │ v: ver acervo │ x: sair do grupo │ esc: voltar")
}

func (m mainLoopModel) viewMembers() string {
	var b strings.Builder
	if m.loading {
		b.WriteString("Carregando...\n")
	}
	for _, member := range m.members {
		b.WriteString(fmt.Sprintf("%-20s │ %s\n", member.Username, valueOrDash(member.Name)))
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage("MEMBROS DE "+strings.ToUpper(m.membersOf), strings.TrimRight(b.String(), "\n"), "esc: voltar")
}

func (m mainLoopModel) viewGroupPrompt() string {
	title := "CRIAR GRUPO"
	if m.prompt.kind == promptInvite {
		title = "CONVIDAR PARA " + strings.ToUpper(m.prompt.group)
	}

	var b strings.Builder
	b.WriteString(m.prompt.form.view())
	if m.loading {
		b.WriteString("\n\n[Enviando...]")
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancelar │ enter: confirmar")
}

func (m mainLoopModel) viewInvites() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Carregando...\n")
	case len(m.invites) == 0:
		b.WriteString("Nenhum convite pendente\n")
	default:
		for i, invite := range m.invites {
			b.WriteString(cursorLine(i == m.inviteIdx, "Grupo "+invite.Group))
			b.WriteString("\n")
		}
	}
	renderFeedback(&b, m.status, m.errMsg)

	return renderPage("CONVITES", strings.TrimRight(b.String(), "\n"), "a: aceitar │ r: recusar │ esc: voltar")
}

// ─────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────

func (m mainLoopModel) cmdGroups() tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		groups, err := ws.Groups(ctx)
		return groupsLoadedMsg{groups: groups, err: err}
	}
}

func (m mainLoopModel) cmdMembers(group string) tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		members, err := ws.Members(ctx, group)
		return membersLoadedMsg{group: group, members: members, err: err}
	}
}

func (m mainLoopModel) cmdCreateGroup(name string) tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		group, err := ws.CreateGroup(ctx, name)
		return groupActionMsg{status: "Grupo criado: " + group.Name, err: err}
	}
}

func (m mainLoopModel) cmdInvite(group, username string) tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		err := ws.Invite(ctx, group, username)
		return groupActionMsg{status: "Convite enviado para " + username, err: err}
	}
}

func (m mainLoopModel) cmdLeave(group string) tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		err := ws.LeaveGroup(ctx, group)
		return groupActionMsg{status: "Você saiu do grupo " + group, err: err}
	}
}

func (m mainLoopModel) cmdInvites() tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		invites, err := ws.PendingInvites(ctx)
		return invitesLoadedMsg{invites: invites, err: err}
	}
}

func (m mainLoopModel) cmdAccept(group string) tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		err := ws.AcceptInvite(ctx, group)
		return groupActionMsg{status: "Você entrou no grupo " + group, err: err}
	}
}

func (m mainLoopModel) cmdDecline(group string) tea.Cmd {
	ctx, ws := m.ctx, m.ws
	return func() tea.Msg {
		err := ws.DeclineInvite(ctx, group)
		return groupActionMsg{status: "Convite recusado", err: err}
	}
}
