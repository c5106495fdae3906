// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/kasa/models"
)

// Keyring holds the master secret inside a memguard enclave and derives
// per-salt keys from it on demand. The secret is decrypted into guarded
// memory only for the duration of a single derivation.
type Keyring struct {
	enclave *memguard.Enclave
	deriver KeyDeriver
}

// NewKeyring seals masterKey into an enclave. The caller's slice is wiped.
func NewKeyring(masterKey []byte, deriver KeyDeriver) (*Keyring, error) {
	if len(masterKey) == 0 {
		return nil, ErrEmptyMasterKey
	}
	return &Keyring{
		enclave: memguard.NewEnclave(masterKey),
		deriver: deriver,
	}, nil
}

// DeriveKey implements [KeySource]. Callers wipe the returned key with
// [Wipe] once the encrypt or decrypt call has finished.
func (k *Keyring) DeriveKey(salt models.Salt, length int) ([]byte, error) {
	buf, err := k.enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open master key enclave: %w", err)
	}
	defer buf.Destroy()

	return k.deriver.Derive(buf.Bytes(), salt, length)
}

// Wipe zeroes key material or plaintext in place.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}
