// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/kasa/internal/logger"
)

func (h *Handler) syncCache(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.CacheService.Sync(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int("salts", res.Salts).Int("ciphers", res.Ciphers).Msg("cache synced on request")
	writeResult(w, r, res, http.StatusOK)
}

func (h *Handler) flushCache(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.CacheService.Flush(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int("salts", res.Salts).Int("ciphers", res.Ciphers).Msg("cache flushed on request")
	writeResult(w, r, res, http.StatusOK)
}

func (h *Handler) backup(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.BackupService.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, res, http.StatusCreated)
}
