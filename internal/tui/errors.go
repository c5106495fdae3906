// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/kasa/internal/adapter"
)

// humanizeError turns adapter failures into one line fit for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		switch {
		case errors.Is(err, adapter.ErrNoFirstSalt):
			return "No first salt yet: create a salt on the Salts page first"
		case errors.Is(err, adapter.ErrServerUnavailable):
			return "Server storage is unavailable, try again later"
		case apiErr.Message != "":
			return apiErr.Message
		}
		return apiErr.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
