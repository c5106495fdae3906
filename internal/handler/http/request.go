// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/kasa/internal/service"
)

// maxBodySize caps request bodies; plaintexts are far smaller.
const maxBodySize = 1 << 20

func decodeJSON(r *http.Request, w http.ResponseWriter, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w: %w", service.ErrInvalidRequest, ErrInvalidJSON, err)
	}
	return nil
}

// decodeOptionalJSON is decodeJSON for endpoints whose body may be empty.
func decodeOptionalJSON(r *http.Request, w http.ResponseWriter, v any) error {
	err := decodeJSON(r, w, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %w", service.ErrInvalidRequest, ErrInvalidPathID)
	}
	return id, nil
}

// pathName returns the unescaped {name} parameter. chi matches on
// r.URL.RawPath when it is set, leaving escapes such as %2F in the value.
func pathName(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	unescaped, err := url.PathUnescape(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", service.ErrInvalidRequest, ErrInvalidPathName, err)
	}
	return unescaped, nil
}
