// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive `kasa shell`.
//
// The shell is a Bubble Tea program routed by [RootModel]: a main menu
// leads to the cipher, salt and system pages, each of which talks to the
// server only through an [adapter.ServerAdapter].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kasa/internal/adapter"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/models"
)

var ErrUserQuit = errors.New("user quit the shell")

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		adapter:   serverAdapter,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user leaves the shell. Leaving with ctrl+c returns
// ErrUserQuit, leaving from the menu with q returns nil.
func (t *TUI) Run(ctx context.Context) error {
	root := newShell(ctx, t.adapter, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func newShell(ctx context.Context, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) RootModel {
	pages := map[string]tea.Model{
		pageMenu:    NewMenuModel(),
		pageCiphers: newCipherListModel(ctx, serverAdapter, logger),
		pageSalts:   newSaltListModel(ctx, serverAdapter, logger),
		pageSystem:  newSystemModel(ctx, serverAdapter, logger),
	}
	return NewRootModel(pages, pageMenu, buildInfo)
}
