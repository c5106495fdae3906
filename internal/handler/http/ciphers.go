// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/kasa/models"
)

func (h *Handler) createCipher(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCipherRequest
	if err := decodeJSON(r, w, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.CipherService.CreateCipher(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, res, http.StatusCreated)
}

// listCiphers serves both the full listing and ?search= substring lookups.
func (h *Handler) listCiphers(w http.ResponseWriter, r *http.Request) {
	ciphers, err := h.services.CipherService.SearchCiphers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, ciphers, http.StatusOK)
}

func (h *Handler) getCipher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	info, err := h.services.CipherService.GetCipher(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, info, http.StatusOK)
}

func (h *Handler) updateCipher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateCipherRequest
	if err := decodeJSON(r, w, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ID = id

	info, err := h.services.CipherService.UpdateCipher(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, info, http.StatusOK)
}

func (h *Handler) deleteCipher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.CipherService.DeleteCipher(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, res, http.StatusOK)
}

func (h *Handler) decryptByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.CipherService.DecryptByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, res, http.StatusOK)
}

// decryptByName answers 300 Multiple Choices with suggestions when the name
// is shared by several ciphers.
func (h *Handler) decryptByName(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.CipherService.DecryptByName(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if res.Ambiguous() {
		status = http.StatusMultipleChoices
	}
	writeResult(w, r, res, status)
}

func (h *Handler) deleteCipherByName(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.CipherService.DeleteCipherByName(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, res, http.StatusOK)
}

func (h *Handler) cipherMethods(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, models.Methods{Cipher: h.services.CipherService.SupportedMethods()}, http.StatusOK)
}
