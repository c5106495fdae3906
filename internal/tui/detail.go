// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/kasa/models"
)

const maskedSecret = "••••••••"

// detailModel shows one decrypted cipher. The plaintext stays masked until
// the user reveals it.
type detailModel struct {
	result   models.DecryptResult
	revealed bool
	status   string
}

func (m detailModel) plaintext() (string, bool) {
	if m.result.DecryptedText == nil {
		return "", false
	}
	return *m.result.DecryptedText, true
}

func (m detailModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Name:    %s\n", m.result.Name))
	b.WriteString(fmt.Sprintf("ID:      %d\n", m.result.CipherID))
	b.WriteString(fmt.Sprintf("Method:  %s\n", m.result.Method))

	secret := maskedSecret
	if text, ok := m.plaintext(); ok && m.revealed {
		secret = text
	}
	b.WriteString(fmt.Sprintf("Secret:  %s\n", secret))

	renderStatus(&b, m.status, "")

	return renderPage("CIPHER", strings.TrimRight(b.String(), "\n"), "s: show/hide │ c: copy │ esc: back")
}
