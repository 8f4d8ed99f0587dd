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

const (
	registerName = iota
	registerEmail
	registerUsername
	registerPassword
	registerConfirm
)

// RegisterModel is the Bubble Tea model for the registration screen. The
// server applies the registration rules and reports every violation at
// once; a successful registration logs the user in.
type RegisterModel struct {
	ctx  context.Context
	auth Authenticator

	form       inputForm
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth Authenticator) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(
			formField{label: "Nome", placeholder: "Nome Sobrenome"},
			formField{label: "E-mail", placeholder: "voce@exemplo.com"},
			formField{label: "Usuário", placeholder: "letras, números e _", limit: 20},
			formField{label: "Senha", placeholder: "mínimo 4 caracteres", limit: 256, secret: true},
			formField{label: "Confirmação", placeholder: "repita a senha", limit: 256, secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.form.focus < len(m.form.inputs)-1 {
				m.form.focusNext()
				return m, nil
			}

			if m.form.raw(registerPassword) != m.form.raw(registerConfirm) {
				m.errMsg = "As senhas não coincidem"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(models.User{
				Name:            m.form.value(registerName),
				Email:           m.form.value(registerEmail),
				Username:        m.form.value(registerUsername),
				Password:        m.form.raw(registerPassword),
				PasswordConfirm: m.form.raw(registerConfirm),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n\n[Cadastrando...]")
	} else {
		b.WriteString("\n\n[Cadastrar]")
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage("CADASTRO", strings.TrimRight(b.String(), "\n"), "esc: voltar │ tab: próximo campo │ enter: avançar/confirmar")
}

func (m *RegisterModel) cmdRegister(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		registered, err := auth.Register(ctx, user)
		return AuthResult{User: registered, Err: err}
	}
}
