// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/models"
)

func (h *Handler) createSalt(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSaltRequest
	if err := decodeOptionalJSON(r, w, &req); err != nil {
		writeError(w, r, err)
		return
	}

	salt, err := h.services.SaltService.CreateSalt(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, salt.Info(), http.StatusCreated)
}

func (h *Handler) listSalts(w http.ResponseWriter, r *http.Request) {
	salts, err := h.services.SaltService.ListSalts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	infos := make([]models.SaltInfo, 0, len(salts))
	for _, salt := range salts {
		infos = append(infos, salt.Info())
	}
	writeResult(w, r, infos, http.StatusOK)
}

func (h *Handler) getSalt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	salt, err := h.services.SaltService.GetSalt(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, salt.Info(), http.StatusOK)
}

func (h *Handler) firstSalt(w http.ResponseWriter, r *http.Request) {
	salt, err := h.services.SaltService.FirstSaltKey(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, salt.Info(), http.StatusOK)
}

func (h *Handler) deleteSalt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.SaltService.DeleteSalt(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) generateKey(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateKeyRequest
	if err := decodeJSON(r, w, &req); err != nil {
		writeError(w, r, err)
		return
	}

	key, err := h.services.SaltService.GenerateKey(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("salt_id", key.SaltID).Msg("key generated")
	writeResult(w, r, key, http.StatusCreated)
}

func (h *Handler) saltMethods(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, models.Methods{Salt: h.services.SaltService.SupportedMethods()}, http.StatusOK)
}
