// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Get("/version", h.getServerVersion)

		r.Route("/salts", func(r chi.Router) {
			r.Post("/", h.createSalt)
			r.Get("/", h.listSalts)
			r.Get("/first", h.firstSalt)
			r.Get("/methods", h.saltMethods)
			r.Post("/generate-key", h.generateKey)
			r.Get("/{id}", h.getSalt)
			r.Delete("/{id}", h.deleteSalt)
		})

		r.Route("/ciphers", func(r chi.Router) {
			r.Post("/", h.createCipher)
			r.Get("/", h.listCiphers)
			r.Get("/methods", h.cipherMethods)
			r.Get("/by-name/{name}", h.decryptByName)
			r.Delete("/by-name/{name}", h.deleteCipherByName)
			r.Get("/{id}", h.getCipher)
			r.Put("/{id}", h.updateCipher)
			r.Delete("/{id}", h.deleteCipher)
			r.Get("/{id}/decrypt", h.decryptByID)
		})

		r.Post("/cache/sync", h.syncCache)
		r.Post("/cache/flush", h.flushCache)
		r.Post("/admin/backup", h.backup)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
