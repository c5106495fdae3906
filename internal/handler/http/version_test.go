// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kasa/internal/service"
	"github.com/MKhiriev/kasa/models"
)

func TestGetServerVersion(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", string(body))
}

func TestHealth(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{service.HealthOK, http.StatusOK},
		{service.HealthDegraded, http.StatusOK},
		{service.HealthUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			api := newTestAPI(t)
			api.info.status = models.HealthStatus{Status: tt.status, Checks: map[string]string{"database": "ok"}}

			resp := api.do(t, http.MethodGet, "/health", "")
			assert.Equal(t, tt.want, resp.StatusCode)
			assert.Equal(t, tt.status, decode[models.HealthStatus](t, resp).Status)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodGet, "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, service.KindNotFound, decode[models.ErrorResponse](t, resp).Error)
}
