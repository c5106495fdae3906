// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/kasa/internal/crypto"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("name is required")
	ErrNameTooLong       = errors.New("name is too long")
	ErrInvalidName       = errors.New("name contains control characters")
	ErrEmptyPlaintext    = errors.New("plaintext is required")
	ErrPlaintextTooLarge = errors.New("plaintext is too large")
	ErrInvalidPlaintext  = errors.New("plaintext is not valid UTF-8")
	ErrInvalidID         = errors.New("invalid ID")
	ErrInvalidSaltID     = errors.New("invalid salt ID")
	ErrEmptySecret       = errors.New("secret is required")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")

	// Method errors wrap crypto.ErrUnsupportedMethod so callers can report
	// them with the same kind as an engine-level rejection.
	ErrUnsupportedSaltMethod   = fmt.Errorf("%w: unknown salt method", crypto.ErrUnsupportedMethod)
	ErrUnsupportedCipherMethod = fmt.Errorf("%w: unknown cipher method", crypto.ErrUnsupportedMethod)
)
