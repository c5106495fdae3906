// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateCipherResult is returned after a cipher has been stored.
type CreateCipherResult struct {
	CipherID   int64        `json:"cipher_id"`
	Name       string       `json:"name"`
	Method     CipherMethod `json:"method"`
	SaltIDUsed int64        `json:"salt_id_used"`
}

// DecryptResult is the outcome of a decrypt request.
//
// A unique match carries the decrypted text and MatchesFound == 1. When a
// name matches several ciphers, only MatchesFound and Suggestions are set and
// DecryptedText is nil, so it is absent from the JSON encoding.
type DecryptResult struct {
	DecryptedText *string      `json:"decrypted_text,omitempty"`
	CipherID      int64        `json:"cipher_id,omitempty"`
	Name          string       `json:"name,omitempty"`
	Method        CipherMethod `json:"method,omitempty"`
	MatchesFound  int          `json:"matches_found"`
	Suggestions   []Suggestion `json:"suggestions,omitempty"`
}

// Ambiguous reports whether the result lists candidates instead of text.
func (r DecryptResult) Ambiguous() bool {
	return r.MatchesFound > 1
}

// DeleteCipherResult describes a removed cipher.
type DeleteCipherResult struct {
	ID     int64        `json:"id"`
	Name   string       `json:"name"`
	Method CipherMethod `json:"method"`
}

// GeneratedKey is returned by the generate-key operation. DerivedKey is
// hex encoded and is only ever computed from a secret the caller supplied.
type GeneratedKey struct {
	SaltID     int64        `json:"salt_id"`
	Method     SaltMethod   `json:"method"`
	Cipher     CipherMethod `json:"cipher"`
	DerivedKey string       `json:"derived_key"`
}

// CacheSyncResult reports how many records a cache rebuild wrote.
type CacheSyncResult struct {
	Salts   int `json:"salts"`
	Ciphers int `json:"ciphers"`
}

// Methods lists supported algorithms.
type Methods struct {
	Salt   []SaltMethod   `json:"salt,omitempty"`
	Cipher []CipherMethod `json:"cipher,omitempty"`
}

// BackupResult identifies an exported snapshot.
type BackupResult struct {
	Object  string `json:"object"`
	Salts   int    `json:"salts"`
	Ciphers int    `json:"ciphers"`
	Size    int64  `json:"size"`
}

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error       string       `json:"error"`
	Message     string       `json:"message"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}
