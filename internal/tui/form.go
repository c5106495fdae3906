// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kasa/models"
)

var (
	errNameRequired      = errors.New("name is required")
	errPlaintextRequired = errors.New("secret text is required")
	errUnknownMethod     = errors.New("unknown cipher method, use aes128, aes256 or chacha20")
)

const (
	formFieldName = iota
	formFieldPlaintext
	formFieldMethod
)

// cipherFormModel collects a new cipher. The secret is typed with masked
// echo and never rendered.
type cipherFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newCipherFormModel() cipherFormModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "github_token"
	nameInput.CharLimit = 255
	nameInput.Width = 40
	nameInput.Focus()

	plaintextInput := textinput.New()
	plaintextInput.Placeholder = "secret"
	plaintextInput.CharLimit = 4096
	plaintextInput.Width = 40
	plaintextInput.EchoMode = textinput.EchoPassword
	plaintextInput.EchoCharacter = '*'

	methodInput := textinput.New()
	methodInput.Placeholder = "server default"
	methodInput.CharLimit = 16
	methodInput.Width = 40

	return cipherFormModel{
		inputs: []textinput.Model{nameInput, plaintextInput, methodInput},
	}
}

func (m *cipherFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *cipherFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *cipherFormModel) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// request builds the create request. An empty method leaves the choice to
// the server.
func (m cipherFormModel) request() (models.CreateCipherRequest, error) {
	name := strings.TrimSpace(m.inputs[formFieldName].Value())
	if name == "" {
		return models.CreateCipherRequest{}, errNameRequired
	}
	plaintext := m.inputs[formFieldPlaintext].Value()
	if plaintext == "" {
		return models.CreateCipherRequest{}, errPlaintextRequired
	}

	var method models.CipherMethod
	if raw := strings.TrimSpace(m.inputs[formFieldMethod].Value()); raw != "" {
		method = models.ParseCipherMethod(raw)
		if !method.Valid() {
			return models.CreateCipherRequest{}, errUnknownMethod
		}
	}

	return models.CreateCipherRequest{
		Name:      name,
		Plaintext: plaintext,
		Method:    method,
	}, nil
}

func (m cipherFormModel) View() string {
	var b strings.Builder
	b.WriteString("Field   │ Value\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Name    │ [")
	b.WriteString(m.inputs[formFieldName].View())
	b.WriteString("]\n")
	b.WriteString("Secret  │ [")
	b.WriteString(m.inputs[formFieldPlaintext].View())
	b.WriteString("]\n")
	b.WriteString("Method  │ [")
	b.WriteString(m.inputs[formFieldMethod].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Encrypting...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("NEW CIPHER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}
