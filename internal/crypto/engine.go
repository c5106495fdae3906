// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/kasa/models"
)

// Engine implements [CipherEngine] over the registered [Cipher] variants.
// The variant is always selected by the method stored with a record.
type Engine struct {
	ciphers map[models.CipherMethod]Cipher
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	rand io.Reader
}

// WithRandom replaces crypto/rand as the IV and nonce source.
func WithRandom(r io.Reader) EngineOption {
	return func(o *engineOptions) {
		o.rand = r
	}
}

// NewEngine builds an Engine with aes128, aes256 and chacha20.
func NewEngine(opts ...EngineOption) *Engine {
	o := engineOptions{rand: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{ciphers: make(map[models.CipherMethod]Cipher, len(models.CipherMethods))}
	e.register(newAESCBC(models.CipherAES128, o.rand))
	e.register(newAESCBC(models.CipherAES256, o.rand))
	e.register(newChaCha20(o.rand))
	return e
}

func (e *Engine) register(c Cipher) {
	e.ciphers[c.Method()] = c
}

// Cipher returns the variant for method.
func (e *Engine) Cipher(method models.CipherMethod) (Cipher, error) {
	c, ok := e.ciphers[method]
	if !ok {
		return nil, fmt.Errorf("%w: cipher method %q", ErrUnsupportedMethod, method)
	}
	return c, nil
}

// Encrypt implements [CipherEngine].
func (e *Engine) Encrypt(method models.CipherMethod, plaintext, key []byte) ([]byte, error) {
	c, err := e.Cipher(method)
	if err != nil {
		return nil, err
	}
	return c.Encrypt(plaintext, key)
}

// Decrypt implements [CipherEngine].
func (e *Engine) Decrypt(method models.CipherMethod, blob, key []byte) ([]byte, error) {
	c, err := e.Cipher(method)
	if err != nil {
		return nil, err
	}
	return c.Decrypt(blob, key)
}
