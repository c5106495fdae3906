// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/kasa/internal/service"
)

func TestStatusFromKind(t *testing.T) {
	tests := map[string]int{
		service.KindUnsupportedMethod: http.StatusBadRequest,
		service.KindNoFirstSalt:       http.StatusConflict,
		service.KindNotFound:          http.StatusNotFound,
		service.KindAmbiguousName:     http.StatusConflict,
		service.KindDecryptionFailed:  http.StatusUnprocessableEntity,
		service.KindSaltInUse:         http.StatusConflict,
		service.KindStoreUnavailable:  http.StatusServiceUnavailable,
		service.KindInvalidRequest:    http.StatusBadRequest,
		service.KindInternal:          http.StatusInternalServerError,
		"SomethingNew":                http.StatusInternalServerError,
	}

	for kind, want := range tests {
		t.Run(kind, func(t *testing.T) {
			assert.Equal(t, want, statusFromKind(kind))
		})
	}
}
