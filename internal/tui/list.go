// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kasa/internal/adapter"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/models"
)

type cipherMode int

const (
	cipherModeList cipherMode = iota
	cipherModeDetail
	cipherModeCreate
	cipherModeSearch
	cipherModeConfirm
)

// cipherListModel is the Ciphers page: list, search, create, decrypt and
// delete.
type cipherListModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	items   []models.CipherInfo
	idx     int
	loading bool
	spinner spinner.Model
	mode    cipherMode

	search      string
	searchInput textinput.Model
	form        cipherFormModel
	detail      detailModel
	overlay     *errorOverlayModel
	status      string
}

func newCipherListModel(ctx context.Context, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *cipherListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	searchInput := textinput.New()
	searchInput.Placeholder = "part of a name"
	searchInput.CharLimit = 255
	searchInput.Width = 40

	return &cipherListModel{
		ctx:         ctx,
		adapter:     serverAdapter,
		logger:      logger,
		spinner:     s,
		searchInput: searchInput,
	}
}

func (m *cipherListModel) Init() tea.Cmd {
	m.mode = cipherModeList
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *cipherListModel) current() (models.CipherInfo, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.CipherInfo{}, false
	}
	return m.items[m.idx], true
}

func (m *cipherListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ciphersLoadedMsg:
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
	case decryptedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.detail = detailModel{result: msg.result}
		m.mode = cipherModeDetail
		return m, nil
	case cipherCreatedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = cipherModeList
		m.status = fmt.Sprintf("Cipher %q created with salt %d", msg.result.Name, msg.result.SaltIDUsed)
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())
	case cipherDeletedMsg:
		m.mode = cipherModeList
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Cipher %q deleted", msg.result.Name)
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())
	case copiedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.detail.status = "Copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		m.detail.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		switch m.mode {
		case cipherModeCreate:
			return m, m.form.updateInput(msg)
		case cipherModeSearch:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	switch m.mode {
	case cipherModeDetail:
		return m.updateDetail(keyMsg)
	case cipherModeCreate:
		return m.updateCreate(keyMsg)
	case cipherModeSearch:
		return m.updateSearch(keyMsg)
	case cipherModeConfirm:
		return m.updateConfirm(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m *cipherListModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if item, ok := m.current(); ok {
			return m, m.cmdDecrypt(item.ID)
		}
	case key.Matches(msg, keys.newItem):
		m.form = newCipherFormModel()
		m.mode = cipherModeCreate
		return m, textinput.Blink
	case key.Matches(msg, keys.search):
		m.searchInput.SetValue(m.search)
		m.mode = cipherModeSearch
		return m, m.searchInput.Focus()
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.mode = cipherModeConfirm
		}
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(msg, keys.esc):
		return m, navigateBack
	}
	return m, nil
}

func (m *cipherListModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.reveal):
		m.detail.revealed = !m.detail.revealed
	case key.Matches(msg, keys.copy):
		if text, ok := m.detail.plaintext(); ok {
			return m, cmdCopyToClipboard(text)
		}
	case key.Matches(msg, keys.esc):
		m.detail = detailModel{}
		m.mode = cipherModeList
	}
	return m, nil
}

func (m *cipherListModel) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = cipherModeList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		req, err := m.form.request()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.form.errMsg = ""
		m.form.submitting = true
		return m, m.cmdCreate(req)
	}
	return m, m.form.updateInput(msg)
}

func (m *cipherListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.searchInput.Blur()
		m.mode = cipherModeList
		return m, nil
	case key.Matches(msg, keys.enter):
		m.search = strings.TrimSpace(m.searchInput.Value())
		m.searchInput.Blur()
		m.mode = cipherModeList
		m.idx = 0
		m.loading = true
		return m, m.cmdLoad()
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *cipherListModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if item, ok := m.current(); ok {
			return m, m.cmdDelete(item.ID)
		}
		m.mode = cipherModeList
	case key.Matches(msg, keys.no, keys.esc):
		m.mode = cipherModeList
	}
	return m, nil
}

func (m *cipherListModel) showError(err error) {
	m.logger.Debug().Err(err).Str("func", "cipherListModel.showError").Msg("shell action failed")
	m.overlay = &errorOverlayModel{message: humanizeError(err)}
}

func (m *cipherListModel) View() string {
	switch m.mode {
	case cipherModeDetail:
		return m.withOverlay(m.detail.View())
	case cipherModeCreate:
		return m.form.View()
	}

	var b strings.Builder
	if m.mode == cipherModeSearch {
		b.WriteString("Search: [")
		b.WriteString(m.searchInput.View())
		b.WriteString("]\n\n")
	} else if m.search != "" {
		b.WriteString(fmt.Sprintf("Filter: %q\n\n", m.search))
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No ciphers\n")
	default:
		b.WriteString(fmt.Sprintf("  %-5s │ %-30s │ %-8s │ %s\n", "ID", "Name", "Method", "Updated"))
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-5d │ %-30s │ %-8s │ %s\n",
				cursor, item.ID, fitText(item.Name, 30), item.Method, formatTime(item.UpdatedAt)))
		}
	}
	renderStatus(&b, m.status, "")

	if m.mode == cipherModeConfirm {
		if item, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(confirmModel{message: item.Name}.View())
		}
	}

	page := renderPage("CIPHERS", strings.TrimRight(b.String(), "\n"),
		"enter: decrypt │ n: new │ /: search │ d: delete │ r: reload │ esc: back")
	return m.withOverlay(page)
}

func (m *cipherListModel) withOverlay(page string) string {
	if m.overlay == nil {
		return page
	}
	return page + "\n\n" + m.overlay.View()
}

func (m *cipherListModel) cmdLoad() tea.Cmd {
	ctx, search := m.ctx, m.search
	return func() tea.Msg {
		items, err := m.adapter.ListCiphers(withTrace(ctx), search)
		return ciphersLoadedMsg{items: items, err: err}
	}
}

func (m *cipherListModel) cmdDecrypt(id int64) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		result, err := m.adapter.DecryptByID(withTrace(ctx), id)
		return decryptedMsg{result: result, err: err}
	}
}

func (m *cipherListModel) cmdCreate(req models.CreateCipherRequest) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		result, err := m.adapter.CreateCipher(withTrace(ctx), req)
		return cipherCreatedMsg{result: result, err: err}
	}
}

func (m *cipherListModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		result, err := m.adapter.DeleteCipher(withTrace(ctx), id)
		return cipherDeletedMsg{result: result, err: err}
	}
}
