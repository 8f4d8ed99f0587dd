// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField describes one input of an [inputForm].
type formField struct {
	label       string
	placeholder string
	limit       int
	secret      bool
	value       string
}

// inputForm is a column of labelled text inputs with tab navigation.
type inputForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newInputForm(fields ...formField) inputForm {
	f := inputForm{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.Width = 40
		if field.limit > 0 {
			in.CharLimit = field.limit
		}
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		in.SetValue(field.value)

		f.labels[i] = field.label
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}

	return f
}

func (f *inputForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *inputForm) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// value returns the trimmed value of the i-th input.
func (f inputForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// raw returns the untrimmed value of the i-th input.
func (f inputForm) raw(i int) string {
	return f.inputs[i].Value()
}

func (f inputForm) view() string {
	labelWidth := lipgloss.Width("Campo")
	for _, label := range f.labels {
		if w := lipgloss.Width(label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Valor\n", labelWidth, "Campo"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, in := range f.inputs {
		b.WriteString(fmt.Sprintf("%-*s │ [", labelWidth, f.labels[i]))
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
