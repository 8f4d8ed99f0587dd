// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	refresh  key.Binding
	newItem  key.Binding
	edit     key.Binding
	photo    key.Binding
	delete   key.Binding
	copy     key.Binding
	saveImg  key.Binding
	contexts key.Binding
	groups   key.Binding
	invites  key.Binding
	invite   key.Binding
	leave    key.Binding
	view     key.Binding
	accept   key.Binding
	decline  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("l")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	photo:    key.NewBinding(key.WithKeys("p")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("y")),
	saveImg:  key.NewBinding(key.WithKeys("o")),
	contexts: key.NewBinding(key.WithKeys("c")),
	groups:   key.NewBinding(key.WithKeys("g")),
	invites:  key.NewBinding(key.WithKeys("i")),
	invite:   key.NewBinding(key.WithKeys("i")),
	leave:    key.NewBinding(key.WithKeys("x")),
	view:     key.NewBinding(key.WithKeys("v")),
	accept:   key.NewBinding(key.WithKeys("a")),
	decline:  key.NewBinding(key.WithKeys("r")),
	yes:      key.NewBinding(key.WithKeys("y", "s")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
