// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Cipher is a named secret stored encrypted at rest.
//
// Ciphertext is the sealed blob produced by the cipher engine: the IV or
// nonce followed by the encrypted bytes. Plaintext never appears in this
// type, so a Cipher may be persisted, cached and serialized freely.
type Cipher struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Ciphertext []byte       `json:"ciphertext"`
	Method     CipherMethod `json:"method"`
	SaltID     int64        `json:"salt_id"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// GetID returns the cipher identifier.
func (c Cipher) GetID() int64 {
	return c.ID
}

// Info returns the metadata view of the cipher without the ciphertext.
func (c Cipher) Info() CipherInfo {
	return CipherInfo{
		ID:        c.ID,
		Name:      c.Name,
		Method:    c.Method,
		SaltID:    c.SaltID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// Suggestion returns the disambiguation entry for the cipher.
func (c Cipher) Suggestion() Suggestion {
	return Suggestion{ID: c.ID, Name: c.Name, Method: c.Method}
}

// CipherInfo is the metadata view of a cipher.
type CipherInfo struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Method    CipherMethod `json:"method"`
	SaltID    int64        `json:"salt_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Suggestion identifies one candidate when a name matches several ciphers.
type Suggestion struct {
	ID     int64        `json:"id"`
	Name   string       `json:"name"`
	Method CipherMethod `json:"method"`
}

// Suggestions builds the disambiguation list for a set of ciphers.
func Suggestions(ciphers []Cipher) []Suggestion {
	out := make([]Suggestion, 0, len(ciphers))
	for _, c := range ciphers {
		out = append(out, c.Suggestion())
	}
	return out
}
