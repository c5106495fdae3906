// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/kasa/models"
)

// Sentinels matched by *APIError through errors.Is, one per server error kind.
var (
	ErrUnsupportedMethod = errors.New("unsupported method")
	ErrNoFirstSalt       = errors.New("no first salt")
	ErrNotFound          = errors.New("not found")
	ErrAmbiguousName     = errors.New("ambiguous name")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrSaltInUse         = errors.New("salt in use")
	ErrServerUnavailable = errors.New("server storage unavailable")
	ErrBadRequest        = errors.New("bad request")
	ErrInternal          = errors.New("internal server error")

	ErrEmptyServerURL = errors.New("empty server url")
)

var kindSentinels = map[string]error{
	"UnsupportedMethod": ErrUnsupportedMethod,
	"NoFirstSalt":       ErrNoFirstSalt,
	"NotFound":          ErrNotFound,
	"AmbiguousName":     ErrAmbiguousName,
	"DecryptionFailed":  ErrDecryptionFailed,
	"SaltInUse":         ErrSaltInUse,
	"StoreUnavailable":  ErrServerUnavailable,
	"InvalidRequest":    ErrBadRequest,
	"Internal":          ErrInternal,
}

// APIError is a failed API call as reported by the server.
type APIError struct {
	Status      int
	Kind        string
	Message     string
	Suggestions []models.Suggestion
}

func (e *APIError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches the sentinel of the error kind.
func (e *APIError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}
