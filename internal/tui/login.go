// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-acervo/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Authenticator starts a client session.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	Register(ctx context.Context, user models.User) (models.User, error)
}

// LoginModel is the Bubble Tea model for the login screen. It renders the
// username and password inputs and dispatches an async login command on
// enter. The resulting [AuthResult] finishes the flow in [RootModel].
type LoginModel struct {
	ctx  context.Context
	auth Authenticator

	form       inputForm
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth Authenticator) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(
			formField{label: "Usuário", placeholder: "usuario", limit: 20},
			formField{label: "Senha", placeholder: "senha", limit: 256, secret: true},
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [AuthResult] clears the submitting state and shows a failure.
//   - esc navigates back to the menu.
//   - tab and shift+tab move the focus.
//   - enter dispatches the async login command.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			m.form.focusNext()
			return m, nil
		case "shift+tab":
			m.form.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := strings.ToLower(m.form.value(0))
			password := m.form.raw(1)
			if username == "" || password == "" {
				m.errMsg = "Usuário e senha são obrigatórios"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n\n[Entrando...]")
	} else {
		b.WriteString("\n\n[Entrar]")
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage("ENTRAR", strings.TrimRight(b.String(), "\n"), "esc: voltar │ tab: próximo campo │ enter: confirmar")
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Login(ctx, username, password)
		return AuthResult{User: user, Err: err}
	}
}
