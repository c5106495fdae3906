// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/kasa/internal/service"
	"github.com/MKhiriev/kasa/models"
)

// notFound replaces chi's plain-text 404 so that unknown routes answer with
// the same error body as every other failure.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, models.ErrorResponse{
		Error:   service.KindNotFound,
		Message: ErrUnknownRoute.Error() + ": " + r.URL.Path,
	}, http.StatusNotFound)
}

// methodNotAllowed is registered with chi.Mux.MethodNotAllowed. chi has
// already matched the path and found no handler for the method, and it sets
// the Allow header before calling it.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, models.ErrorResponse{
		Error:   service.KindInvalidRequest,
		Message: "method " + r.Method + " is not allowed on " + r.URL.Path,
	}, http.StatusMethodNotAllowed)
}
