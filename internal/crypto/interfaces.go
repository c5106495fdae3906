// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/kasa/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Cipher is one symmetric algorithm variant.
//
// Encrypt returns a sealed blob: a fresh random IV or nonce followed by the
// ciphertext, so Decrypt needs nothing but the blob and the key.
type Cipher interface {
	// Method is the identifier stored with every record sealed by this cipher.
	Method() models.CipherMethod

	// KeySize is the exact key length in bytes.
	KeySize() int

	// Encrypt seals plaintext with key. The key must be KeySize bytes long.
	Encrypt(plaintext, key []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. Malformed blobs and padding
	// failures are reported as ErrDecryptionFailed.
	Decrypt(blob, key []byte) ([]byte, error)
}

// KeyDeriver turns a secret and a stored salt into key material of the
// requested length. Implementations are deterministic.
type KeyDeriver interface {
	Derive(secret []byte, salt models.Salt, length int) ([]byte, error)
}

// CipherEngine dispatches encryption by method.
type CipherEngine interface {
	Encrypt(method models.CipherMethod, plaintext, key []byte) ([]byte, error)
	Decrypt(method models.CipherMethod, blob, key []byte) ([]byte, error)
}

// KeySource derives keys from the process master secret.
type KeySource interface {
	DeriveKey(salt models.Salt, length int) ([]byte, error)
}
