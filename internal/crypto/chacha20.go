// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"

	"github.com/MKhiriev/kasa/models"
)

// chacha20Cipher is the ChaCha20 stream cipher with a 12-byte nonce.
// Blob layout: nonce || ct. There is no authentication tag, so a modified
// blob decrypts to modified plaintext instead of failing.
type chacha20Cipher struct {
	rand io.Reader
}

func newChaCha20(rand io.Reader) *chacha20Cipher {
	return &chacha20Cipher{rand: rand}
}

func (c *chacha20Cipher) Method() models.CipherMethod { return models.CipherChaCha20 }

func (c *chacha20Cipher) KeySize() int { return chacha20.KeySize }

func (c *chacha20Cipher) Encrypt(plaintext, key []byte) ([]byte, error) {
	if err := c.checkKey(key); err != nil {
		return nil, err
	}

	blob := make([]byte, chacha20.NonceSize+len(plaintext))
	nonce := blob[:chacha20.NonceSize]
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("create chacha20 stream: %w", err)
	}
	stream.XORKeyStream(blob[chacha20.NonceSize:], plaintext)
	return blob, nil
}

func (c *chacha20Cipher) Decrypt(blob, key []byte) ([]byte, error) {
	if err := c.checkKey(key); err != nil {
		return nil, err
	}
	if len(blob) < chacha20.NonceSize {
		return nil, fmt.Errorf("%w: chacha20 blob shorter than nonce", ErrDecryptionFailed)
	}

	nonce, ct := blob[:chacha20.NonceSize], blob[chacha20.NonceSize:]
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	plaintext := make([]byte, len(ct))
	stream.XORKeyStream(plaintext, ct)
	return plaintext, nil
}

func (c *chacha20Cipher) checkKey(key []byte) error {
	if len(key) != chacha20.KeySize {
		return fmt.Errorf("%w: chacha20 needs %d bytes, got %d", ErrInvalidKeySize, chacha20.KeySize, len(key))
	}
	return nil
}
