// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/kasa/internal/crypto"
	"github.com/MKhiriev/kasa/internal/store"
	"github.com/MKhiriev/kasa/models"
)

var (
	// ErrNoFirstSalt is returned when an operation needs the default salt
	// and no salt with models.FirstSaltID exists.
	ErrNoFirstSalt = errors.New("no first salt: create a salt before storing ciphers")

	// ErrAmbiguousName is returned by destructive by-name operations when
	// several ciphers share the name. Use errors.As with *AmbiguousNameError
	// to read the candidates.
	ErrAmbiguousName = errors.New("cipher name is ambiguous")

	// ErrInvalidRequest wraps validation failures.
	ErrInvalidRequest = errors.New("invalid request")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrBackupDisabled        = errors.New("backup storage is not configured")
)

// AmbiguousNameError carries the candidates of an ambiguous name.
type AmbiguousNameError struct {
	Name        string
	Suggestions []models.Suggestion
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("%s: %d ciphers are named %q", ErrAmbiguousName, len(e.Suggestions), e.Name)
}

func (e *AmbiguousNameError) Is(target error) bool {
	return target == ErrAmbiguousName
}

// Error kinds reported to API clients.
const (
	KindUnsupportedMethod = "UnsupportedMethod"
	KindNoFirstSalt       = "NoFirstSalt"
	KindNotFound          = "NotFound"
	KindAmbiguousName     = "AmbiguousName"
	KindDecryptionFailed  = "DecryptionFailed"
	KindSaltInUse         = "SaltInUse"
	KindStoreUnavailable  = "StoreUnavailable"
	KindInvalidRequest    = "InvalidRequest"
	KindInternal          = "Internal"
)

// kindTable is ordered: a validation error may also wrap
// crypto.ErrUnsupportedMethod, which must win.
var kindTable = []struct {
	target error
	kind   string
}{
	{crypto.ErrUnsupportedMethod, KindUnsupportedMethod},
	{ErrNoFirstSalt, KindNoFirstSalt},
	{ErrAmbiguousName, KindAmbiguousName},
	{store.ErrNotFound, KindNotFound},
	{crypto.ErrDecryptionFailed, KindDecryptionFailed},
	{store.ErrSaltInUse, KindSaltInUse},
	{store.ErrStoreUnavailable, KindStoreUnavailable},
	{ErrInvalidRequest, KindInvalidRequest},
	{crypto.ErrInvalidSaltValue, KindInvalidRequest},
	{crypto.ErrInvalidKeySize, KindInvalidRequest},
	{ErrBackupDisabled, KindInvalidRequest},
}

// KindOf classifies err into one of the Kind constants. Unknown errors are
// KindInternal.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range kindTable {
		if errors.Is(err, entry.target) {
			return entry.kind
		}
	}
	return KindInternal
}

func invalidRequest(err error) error {
	if errors.Is(err, crypto.ErrUnsupportedMethod) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}
