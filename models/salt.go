// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"time"
)

// FirstSaltID is the identifier of the salt used as the default key source
// by operations that do not name a salt explicitly.
const FirstSaltID int64 = 1

// Salt is a stored value combined with the master secret to derive a
// reproducible encryption key.
//
// A salt is immutable once created. Ciphers reference it by ID and must stay
// decryptable, so the only permitted mutation is deletion, and only while no
// cipher references it.
type Salt struct {
	// ID is assigned by the durable store; ID 1 is the first salt.
	ID int64 `json:"id"`

	// Method selects the derivation function.
	Method SaltMethod `json:"method"`

	// Value is the raw salt bytes. JSON encodes it as base64.
	Value []byte `json:"value"`

	// CreatedAt is set by the durable store.
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the salt identifier.
func (s Salt) GetID() int64 {
	return s.ID
}

// IsFirst reports whether s is the default key source.
func (s Salt) IsFirst() bool {
	return s.ID == FirstSaltID
}

// Info converts the salt into its listing representation.
func (s Salt) Info() SaltInfo {
	return SaltInfo{
		ID:           s.ID,
		Method:       s.Method,
		ValuePreview: previewHex(s.Value),
		CreatedAt:    s.CreatedAt,
	}
}

// SaltInfo is the listing view of a salt. The value is shortened to a
// preview of its hex encoding.
type SaltInfo struct {
	ID           int64      `json:"id"`
	Method       SaltMethod `json:"method"`
	ValuePreview string     `json:"value_preview"`
	CreatedAt    time.Time  `json:"created_at"`
}

const previewLength = 8

func previewHex(value []byte) string {
	encoded := hex.EncodeToString(value)
	if len(encoded) <= previewLength {
		return encoded
	}
	return encoded[:previewLength] + "..."
}
