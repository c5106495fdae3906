// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateSaltRequest asks for a new salt. An empty Value is replaced by
// random bytes.
type CreateSaltRequest struct {
	Method SaltMethod `json:"method"`
	Value  []byte     `json:"value,omitempty"`
}

// GenerateKeyRequest asks for a new salt plus the key derived from Secret.
type GenerateKeyRequest struct {
	Secret string       `json:"secret"`
	Method SaltMethod   `json:"method"`
	Cipher CipherMethod `json:"cipher,omitempty"`
}

// CreateCipherRequest asks for a new cipher.
//
// Method defaults to the configured cipher method when empty; SaltID
// defaults to the first salt when nil.
type CreateCipherRequest struct {
	Name      string       `json:"name"`
	Plaintext string       `json:"plaintext"`
	Method    CipherMethod `json:"method,omitempty"`
	SaltID    *int64       `json:"salt_id,omitempty"`
}

// UpdateCipherRequest describes a partial cipher update. Nil fields are left
// untouched. Changing Plaintext or Method re-encrypts the record with its
// existing salt.
type UpdateCipherRequest struct {
	ID        int64         `json:"id"`
	Name      *string       `json:"name,omitempty"`
	Plaintext *string       `json:"plaintext,omitempty"`
	Method    *CipherMethod `json:"method,omitempty"`
}
