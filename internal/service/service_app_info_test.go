// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kasa/internal/config"
	"github.com/MKhiriev/kasa/internal/logger"
)

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, nil, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("down") }

	tests := []struct {
		name       string
		checks     []HealthCheck
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "no checks",
			wantStatus: HealthOK,
			wantChecks: map[string]string{},
		},
		{
			name: "all healthy",
			checks: []HealthCheck{
				{Name: "database", Critical: true, Check: ok},
				{Name: "cache", Check: ok},
			},
			wantStatus: HealthOK,
			wantChecks: map[string]string{"database": "ok", "cache": "ok"},
		},
		{
			name: "cache down degrades",
			checks: []HealthCheck{
				{Name: "database", Critical: true, Check: ok},
				{Name: "cache", Check: fail},
			},
			wantStatus: HealthDegraded,
			wantChecks: map[string]string{"database": "ok", "cache": "error"},
		},
		{
			name: "database down is unavailable",
			checks: []HealthCheck{
				{Name: "cache", Check: fail},
				{Name: "database", Critical: true, Check: fail},
			},
			wantStatus: HealthUnavailable,
			wantChecks: map[string]string{"database": "error", "cache": "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: "v1"}, tt.checks, logger.Nop())
			require.NoError(t, err)

			got := svc.Health(context.Background())
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, "v1", got.Version)
			assert.Equal(t, tt.wantChecks, got.Checks)
		})
	}
}
