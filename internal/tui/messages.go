// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/kasa/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type ciphersLoadedMsg struct {
	items []models.CipherInfo
	err   error
}

type decryptedMsg struct {
	result models.DecryptResult
	err    error
}

type cipherCreatedMsg struct {
	result models.CreateCipherResult
	err    error
}

type cipherDeletedMsg struct {
	result models.DeleteCipherResult
	err    error
}

type saltsLoadedMsg struct {
	items []models.SaltInfo
	err   error
}

type saltCreatedMsg struct {
	salt models.SaltInfo
	err  error
}

type saltDeletedMsg struct {
	id  int64
	err error
}

type firstSaltMsg struct {
	salt models.SaltInfo
	err  error
}

type systemLoadedMsg struct {
	health  models.HealthStatus
	version string
	err     error
}

type cacheDoneMsg struct {
	action string
	result models.CacheSyncResult
	err    error
}

type backupDoneMsg struct {
	result models.BackupResult
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
