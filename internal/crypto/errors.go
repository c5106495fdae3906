// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrUnsupportedMethod is returned for an unknown salt or cipher method.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrInvalidKeySize is returned when key material has the wrong length
	// for the selected cipher, or a non-positive length is requested.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrDecryptionFailed covers truncated blobs, block-misaligned input,
	// invalid padding and plaintext that is not valid text.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidSaltValue is returned for an empty salt, or an argon2 salt
	// shorter than MinArgon2SaltLength.
	ErrInvalidSaltValue = errors.New("invalid salt value")

	// ErrEmptyMasterKey is returned when the keyring is built without a secret.
	ErrEmptyMasterKey = errors.New("master key is empty")
)
