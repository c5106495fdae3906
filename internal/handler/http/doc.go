// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON API of the kasa server.
//
// It exposes route wiring, request handlers and middleware. Request
// tracing, access logging and per-request timeouts are applied here before
// requests are delegated to the service layer. Service errors are turned
// into {"error": kind, "message": ...} bodies by writeError.
package http
