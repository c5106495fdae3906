// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/MKhiriev/kasa/models"
)

// aesCBC is AES in CBC mode with PKCS7 padding. Blob layout: iv || ct.
type aesCBC struct {
	method  models.CipherMethod
	keySize int
	rand    io.Reader
}

func newAESCBC(method models.CipherMethod, rand io.Reader) *aesCBC {
	return &aesCBC{method: method, keySize: method.KeySize(), rand: rand}
}

func (c *aesCBC) Method() models.CipherMethod { return c.method }

func (c *aesCBC) KeySize() int { return c.keySize }

func (c *aesCBC) Encrypt(plaintext, key []byte) ([]byte, error) {
	block, err := c.block(key)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	blob := make([]byte, aes.BlockSize+len(padded))
	iv := blob[:aes.BlockSize]
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(blob[aes.BlockSize:], padded)
	Wipe(padded)
	return blob, nil
}

func (c *aesCBC) Decrypt(blob, key []byte) ([]byte, error) {
	block, err := c.block(key)
	if err != nil {
		return nil, err
	}

	// at least the IV plus one block
	if len(blob) < 2*aes.BlockSize || len(blob)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: malformed %s blob", ErrDecryptionFailed, c.method)
	}

	iv, ct := blob[:aes.BlockSize], blob[aes.BlockSize:]
	padded := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ct)

	plaintext, ok := pkcs7Unpad(padded, aes.BlockSize)
	if !ok {
		Wipe(padded)
		return nil, fmt.Errorf("%w: invalid padding", ErrDecryptionFailed)
	}
	return plaintext, nil
}

func (c *aesCBC) block(key []byte) (cipher.Block, error) {
	if len(key) != c.keySize {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrInvalidKeySize, c.method, c.keySize, len(key))
	}
	return aes.NewCipher(key)
}
