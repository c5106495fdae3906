// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/service"
	"github.com/MKhiriev/kasa/internal/utils"
	"github.com/MKhiriev/kasa/models"
)

var kindStatusMap = map[string]int{
	service.KindUnsupportedMethod: http.StatusBadRequest,
	service.KindNoFirstSalt:       http.StatusConflict,
	service.KindNotFound:          http.StatusNotFound,
	service.KindAmbiguousName:     http.StatusConflict,
	service.KindDecryptionFailed:  http.StatusUnprocessableEntity,
	service.KindSaltInUse:         http.StatusConflict,
	service.KindStoreUnavailable:  http.StatusServiceUnavailable,
	service.KindInvalidRequest:    http.StatusBadRequest,
	service.KindInternal:          http.StatusInternalServerError,
}

func statusFromKind(kind string) int {
	if status, ok := kindStatusMap[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError classifies err and writes the matching ErrorResponse.
// Internal errors are logged in full and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	kind := service.KindOf(err)
	status := statusFromKind(kind)
	body := models.ErrorResponse{Error: kind, Message: err.Error()}

	var ambiguous *service.AmbiguousNameError
	if errors.As(err, &ambiguous) {
		body.Suggestions = ambiguous.Suggestions
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("kind", kind).Int("status", status).Msg("request failed")
		if kind == service.KindInternal {
			body.Message = http.StatusText(status)
		}
	} else {
		log.Debug().Err(err).Str("kind", kind).Int("status", status).Msg("request rejected")
	}

	if _, err := utils.WriteJSON(w, body, status); err != nil {
		log.Err(err).Str("func", "http.writeError").Msg("error writing error response")
	}
}

// writeResult writes v as JSON with status.
func writeResult(w http.ResponseWriter, r *http.Request, v any, status int) {
	if _, err := utils.WriteJSON(w, v, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "http.writeResult").Msg("error writing response")
	}
}
