// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kasa/internal/adapter"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/models"
)

// saltListModel is the Salts page. New salts use the server's default
// method and a generated value.
type saltListModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	items      []models.SaltInfo
	idx        int
	loading    bool
	confirming bool
	overlay    *errorOverlayModel
	status     string
}

func newSaltListModel(ctx context.Context, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *saltListModel {
	return &saltListModel{
		ctx:     ctx,
		adapter: serverAdapter,
		logger:  logger,
	}
}

func (m *saltListModel) Init() tea.Cmd {
	m.loading = true
	m.confirming = false
	return m.cmdLoad()
}

func (m *saltListModel) current() (models.SaltInfo, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.SaltInfo{}, false
	}
	return m.items[m.idx], true
}

func (m *saltListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case saltsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case saltCreatedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Salt %d created (%s)", msg.salt.ID, msg.salt.Method)
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())
	case saltDeletedMsg:
		m.confirming = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Salt %d deleted", msg.id)
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())
	case firstSaltMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("First salt: %d (%s, %s)", msg.salt.ID, msg.salt.Method, msg.salt.ValuePreview)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(keyMsg, keys.yes):
			if item, ok := m.current(); ok {
				return m, m.cmdDelete(item.ID)
			}
			m.confirming = false
		case key.Matches(keyMsg, keys.no, keys.esc):
			m.confirming = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		return m, m.cmdCreate()
	case key.Matches(keyMsg, keys.first):
		return m, m.cmdFirst()
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.current(); ok {
			m.confirming = true
		}
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.esc):
		return m, navigateBack
	}
	return m, nil
}

func (m *saltListModel) showError(err error) {
	m.logger.Debug().Err(err).Str("func", "saltListModel.showError").Msg("shell action failed")
	m.overlay = &errorOverlayModel{message: humanizeError(err)}
}

func (m *saltListModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No salts. Press n to create the first one.\n")
	default:
		b.WriteString(fmt.Sprintf("  %-5s │ %-7s │ %-12s │ %s\n", "ID", "Method", "Value", "Created"))
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-5d │ %-7s │ %-12s │ %s\n",
				cursor, item.ID, item.Method, item.ValuePreview, formatTime(item.CreatedAt)))
		}
	}
	renderStatus(&b, m.status, "")

	if m.confirming {
		if item, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(confirmModel{message: fmt.Sprintf("salt %d", item.ID)}.View())
		}
	}

	page := renderPage("SALTS", strings.TrimRight(b.String(), "\n"),
		"n: new │ f: first salt │ d: delete │ r: reload │ esc: back")
	if m.overlay != nil {
		page += "\n\n" + m.overlay.View()
	}
	return page
}

func (m *saltListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		items, err := m.adapter.ListSalts(withTrace(ctx))
		return saltsLoadedMsg{items: items, err: err}
	}
}

func (m *saltListModel) cmdCreate() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		salt, err := m.adapter.CreateSalt(withTrace(ctx), models.CreateSaltRequest{})
		return saltCreatedMsg{salt: salt, err: err}
	}
}

func (m *saltListModel) cmdFirst() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		salt, err := m.adapter.FirstSalt(withTrace(ctx))
		return firstSaltMsg{salt: salt, err: err}
	}
}

func (m *saltListModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		err := m.adapter.DeleteSalt(withTrace(ctx), id)
		return saltDeletedMsg{id: id, err: err}
	}
}
