// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kasa/internal/adapter"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/models"
)

// systemModel is the System page: server health and version plus the
// cache and backup actions.
type systemModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	health  models.HealthStatus
	version string
	loading bool
	busy    bool
	status  string
	errMsg  string
}

func newSystemModel(ctx context.Context, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *systemModel {
	return &systemModel{
		ctx:     ctx,
		adapter: serverAdapter,
		logger:  logger,
	}
}

func (m *systemModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *systemModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case systemLoadedMsg:
		m.loading = false
		m.health = msg.health
		m.version = msg.version
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil
	case cacheDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Cache %s: %d salts, %d ciphers", msg.action, msg.result.Salts, msg.result.Ciphers)
		return m, cmdClearStatus()
	case backupDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Backup written to %s (%d bytes)", msg.result.Object, msg.result.Size)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		return m, navigateBack
	}
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.sync):
		m.busy = true
		return m, m.cmdCache("synced", m.adapter.SyncCache)
	case key.Matches(keyMsg, keys.flush):
		m.busy = true
		return m, m.cmdCache("flushed", m.adapter.FlushCache)
	case key.Matches(keyMsg, keys.backup):
		m.busy = true
		return m, m.cmdBackup()
	case key.Matches(keyMsg, keys.reload):
		return m, m.Init()
	}
	return m, nil
}

func (m *systemModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		b.WriteString(fmt.Sprintf("Server version: %s\n", valueOrNA(m.version)))
		b.WriteString(fmt.Sprintf("Status:         %s\n", valueOrNA(m.health.Status)))

		names := make([]string, 0, len(m.health.Checks))
		for name := range m.health.Checks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  %-13s %s\n", name+":", m.health.Checks[name]))
		}
	}
	if m.busy {
		b.WriteString("\nWorking...\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("SYSTEM", strings.TrimRight(b.String(), "\n"),
		"s: sync cache │ f: flush cache │ b: backup │ r: reload │ esc: back")
}

func (m *systemModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		ctx := withTrace(ctx)
		health, healthErr := m.adapter.Health(ctx)
		version, versionErr := m.adapter.Version(ctx)
		return systemLoadedMsg{health: health, version: version, err: errors.Join(healthErr, versionErr)}
	}
}

func (m *systemModel) cmdCache(action string, call func(context.Context) (models.CacheSyncResult, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		result, err := call(withTrace(ctx))
		return cacheDoneMsg{action: action, result: result, err: err}
	}
}

func (m *systemModel) cmdBackup() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		result, err := m.adapter.Backup(withTrace(ctx))
		return backupDoneMsg{result: result, err: err}
	}
}
