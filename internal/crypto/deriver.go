// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/kasa/models"
)

const (
	// SaltValueLength is the size of generated salt values.
	SaltValueLength = 16

	// MinArgon2SaltLength is the shortest salt argon2 accepts.
	MinArgon2SaltLength = 8
)

// Argon2Params pins the argon2id cost parameters. They are part of the
// deployment configuration: keys derived under one set of parameters cannot
// be reproduced under another.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultArgon2Params returns 1 pass, 64 MiB and 4 lanes.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:      1,
		MemoryKiB: 64 * 1024,
		Threads:   4,
	}
}

// Deriver implements [KeyDeriver] for every [models.SaltMethod].
//
// Digest methods hash secret||value, then stretch the output with counter
// blocks H(secret||value||uint32be(i)) for i = 1, 2, ... until the target
// length is reached. argon2 runs argon2id with the configured parameters.
type Deriver struct {
	argon Argon2Params
}

// NewDeriver constructs a Deriver. Zero-valued parameters fall back to
// [DefaultArgon2Params] field by field.
func NewDeriver(params Argon2Params) *Deriver {
	def := DefaultArgon2Params()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.MemoryKiB == 0 {
		params.MemoryKiB = def.MemoryKiB
	}
	if params.Threads == 0 {
		params.Threads = def.Threads
	}
	return &Deriver{argon: params}
}

// Params returns the argon2 parameters in use.
func (d *Deriver) Params() Argon2Params {
	return d.argon
}

// Derive implements [KeyDeriver].
func (d *Deriver) Derive(secret []byte, salt models.Salt, length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: requested %d bytes", ErrInvalidKeySize, length)
	}
	if len(salt.Value) == 0 {
		return nil, ErrInvalidSaltValue
	}

	switch salt.Method {
	case models.SaltSHA256:
		return stretch(sha256.New, secret, salt.Value, length), nil
	case models.SaltSHA512:
		return stretch(sha512.New, secret, salt.Value, length), nil
	case models.SaltMD5:
		return stretch(md5.New, secret, salt.Value, length), nil
	case models.SaltArgon2:
		if len(salt.Value) < MinArgon2SaltLength {
			return nil, fmt.Errorf("%w: argon2 needs at least %d bytes", ErrInvalidSaltValue, MinArgon2SaltLength)
		}
		return argon2.IDKey(secret, salt.Value, d.argon.Time, d.argon.MemoryKiB, d.argon.Threads, uint32(length)), nil
	default:
		return nil, fmt.Errorf("%w: salt method %q", ErrUnsupportedMethod, salt.Method)
	}
}

func stretch(newHash func() hash.Hash, secret, value []byte, length int) []byte {
	h := newHash()
	out := make([]byte, 0, length+h.Size())

	h.Write(secret)
	h.Write(value)
	out = h.Sum(out)

	var counter [4]byte
	for i := uint32(1); len(out) < length; i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		h.Reset()
		h.Write(secret)
		h.Write(value)
		h.Write(counter[:])
		out = h.Sum(out)
	}

	// wipe the tail that is cut off
	for i := length; i < len(out); i++ {
		out[i] = 0
	}
	return out[:length:length]
}

// NewSaltValue returns SaltValueLength random bytes read from r,
// or from crypto/rand when r is nil.
func NewSaltValue(r io.Reader) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}
	value := make([]byte, SaltValueLength)
	if _, err := io.ReadFull(r, value); err != nil {
		return nil, fmt.Errorf("generate salt value: %w", err)
	}
	return value, nil
}

// ValidateSaltValue checks a caller-supplied value for method.
func ValidateSaltValue(method models.SaltMethod, value []byte) error {
	if !method.Valid() {
		return fmt.Errorf("%w: salt method %q", ErrUnsupportedMethod, method)
	}
	if len(value) == 0 {
		return ErrInvalidSaltValue
	}
	if method == models.SaltArgon2 && len(value) < MinArgon2SaltLength {
		return fmt.Errorf("%w: argon2 needs at least %d bytes", ErrInvalidSaltValue, MinArgon2SaltLength)
	}
	return nil
}
