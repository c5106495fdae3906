// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	newItem key.Binding
	search  key.Binding
	reload  key.Binding
	delete  key.Binding
	copy    key.Binding
	reveal  key.Binding
	first   key.Binding
	sync    key.Binding
	flush   key.Binding
	backup  key.Binding
	version key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q")),
	newItem: key.NewBinding(key.WithKeys("n")),
	search:  key.NewBinding(key.WithKeys("/")),
	reload:  key.NewBinding(key.WithKeys("r")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	reveal:  key.NewBinding(key.WithKeys("s")),
	first:   key.NewBinding(key.WithKeys("f")),
	sync:    key.NewBinding(key.WithKeys("s")),
	flush:   key.NewBinding(key.WithKeys("f")),
	backup:  key.NewBinding(key.WithKeys("b")),
	version: key.NewBinding(key.WithKeys("v")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
