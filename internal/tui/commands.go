// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kasa/internal/utils"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

var traceIDs = utils.NewUUIDGenerator()

// withTrace gives every shell action its own trace id, so the server log
// lines of one action can be found together.
func withTrace(ctx context.Context) context.Context {
	return utils.WithTraceID(ctx, traceIDs.Generate())
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func navigateBack() tea.Msg {
	return NavigateTo{Page: pageMenu}
}
