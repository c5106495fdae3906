// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"errors"
	"testing"

	"golang.org/x/crypto/chacha20"

	"github.com/MKhiriev/kasa/models"
)

// counterReader yields 0, 1, 2, ... so IVs and nonces are reproducible.
type counterReader struct {
	next byte
}

func (r *counterReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}

func keyFor(method models.CipherMethod) []byte {
	return bytes.Repeat([]byte{0x42}, method.KeySize())
}

func TestEngine_RoundTrip(t *testing.T) {
	e := NewEngine()
	plaintexts := [][]byte{
		{},
		[]byte("a"),
		[]byte("ghp_xxx"),
		bytes.Repeat([]byte("x"), aes.BlockSize),
		bytes.Repeat([]byte("multi-block secret "), 20),
		[]byte("unicode: ключ 🔑"),
	}

	for _, method := range models.CipherMethods {
		for _, p := range plaintexts {
			blob, err := e.Encrypt(method, p, keyFor(method))
			if err != nil {
				t.Fatalf("%s: Encrypt error: %v", method, err)
			}
			got, err := e.Decrypt(method, blob, keyFor(method))
			if err != nil {
				t.Fatalf("%s: Decrypt error: %v", method, err)
			}
			if !bytes.Equal(got, p) {
				t.Fatalf("%s: round trip = %q, want %q", method, got, p)
			}
		}
	}
}

func TestEngine_FreshIVPerCall(t *testing.T) {
	e := NewEngine()
	for _, method := range models.CipherMethods {
		b1, _ := e.Encrypt(method, []byte("same"), keyFor(method))
		b2, _ := e.Encrypt(method, []byte("same"), keyFor(method))
		if bytes.Equal(b1, b2) {
			t.Fatalf("%s: two encryptions produced the same blob", method)
		}
	}
}

func TestEngine_BlobLayout(t *testing.T) {
	e := NewEngine(WithRandom(&counterReader{}))

	blob, err := e.Encrypt(models.CipherAES128, []byte("hello"), keyFor(models.CipherAES128))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if len(blob) != 2*aes.BlockSize {
		t.Fatalf("aes blob length = %d, want %d", len(blob), 2*aes.BlockSize)
	}
	if blob[0] != 0 || blob[15] != 15 {
		t.Fatalf("expected IV prefix from the random source, got %x", blob[:16])
	}

	blob, err = e.Encrypt(models.CipherChaCha20, []byte("hello"), keyFor(models.CipherChaCha20))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if len(blob) != chacha20.NonceSize+5 {
		t.Fatalf("chacha20 blob length = %d, want %d", len(blob), chacha20.NonceSize+5)
	}
}

func TestEngine_UnsupportedMethod(t *testing.T) {
	e := NewEngine()
	if _, err := e.Encrypt("rot13", []byte("x"), make([]byte, 32)); !errors.Is(err, ErrUnsupportedMethod) {
		t.Fatalf("err = %v, want ErrUnsupportedMethod", err)
	}
	if _, err := e.Decrypt("", []byte("x"), make([]byte, 32)); !errors.Is(err, ErrUnsupportedMethod) {
		t.Fatalf("err = %v, want ErrUnsupportedMethod", err)
	}
}

func TestEngine_WrongKeySize(t *testing.T) {
	e := NewEngine()
	for _, method := range models.CipherMethods {
		if _, err := e.Encrypt(method, []byte("x"), make([]byte, 7)); !errors.Is(err, ErrInvalidKeySize) {
			t.Fatalf("%s: err = %v, want ErrInvalidKeySize", method, err)
		}
	}
	// an aes256 key is not an aes128 key
	if _, err := e.Encrypt(models.CipherAES128, []byte("x"), make([]byte, 32)); !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("err = %v, want ErrInvalidKeySize", err)
	}
}

func TestEngine_MalformedBlobs(t *testing.T) {
	e := NewEngine()
	tests := []struct {
		name   string
		method models.CipherMethod
		blob   []byte
	}{
		{"aes empty", models.CipherAES256, nil},
		{"aes iv only", models.CipherAES256, make([]byte, aes.BlockSize)},
		{"aes misaligned", models.CipherAES128, make([]byte, aes.BlockSize+5)},
		{"chacha20 shorter than nonce", models.CipherChaCha20, make([]byte, chacha20.NonceSize-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Decrypt(tt.method, tt.blob, keyFor(tt.method))
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Fatalf("err = %v, want ErrDecryptionFailed", err)
			}
		})
	}
}

func TestEngine_WrongKeyFailsPadding(t *testing.T) {
	e := NewEngine(WithRandom(&counterReader{}))
	blob, err := e.Encrypt(models.CipherAES256, []byte("ghp_xxx"), keyFor(models.CipherAES256))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	failures := 0
	for i := 0; i < 16; i++ {
		wrong := bytes.Repeat([]byte{byte(i + 1)}, 32)
		got, err := e.Decrypt(models.CipherAES256, blob, wrong)
		if err == nil && bytes.Equal(got, []byte("ghp_xxx")) {
			t.Fatalf("wrong key returned the original plaintext")
		}
		if errors.Is(err, ErrDecryptionFailed) {
			failures++
		}
	}
	if failures < 14 {
		t.Fatalf("only %d of 16 wrong keys were rejected", failures)
	}
}

func TestEngine_TamperTruncation(t *testing.T) {
	e := NewEngine()
	for _, method := range []models.CipherMethod{models.CipherAES128, models.CipherAES256} {
		blob, _ := e.Encrypt(method, []byte("ghp_xxx"), keyFor(method))
		if _, err := e.Decrypt(method, blob[:len(blob)-1], keyFor(method)); !errors.Is(err, ErrDecryptionFailed) {
			t.Fatalf("%s: truncated blob err = %v, want ErrDecryptionFailed", method, err)
		}
	}
}

func TestEngine_TamperLastBlock(t *testing.T) {
	e := NewEngine(WithRandom(&counterReader{}))
	original := []byte("ghp_xxx")

	for _, method := range []models.CipherMethod{models.CipherAES128, models.CipherAES256} {
		blob, err := e.Encrypt(method, original, keyFor(method))
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}

		failures := 0
		for i := len(blob) - aes.BlockSize; i < len(blob); i++ {
			tampered := bytes.Clone(blob)
			tampered[i] ^= 0x01

			got, err := e.Decrypt(method, tampered, keyFor(method))
			if err == nil && bytes.Equal(got, original) {
				t.Fatalf("%s: flipping byte %d went unnoticed", method, i)
			}
			if errors.Is(err, ErrDecryptionFailed) {
				failures++
			}
		}
		if failures < 14 {
			t.Fatalf("%s: only %d of 16 last-block flips failed", method, failures)
		}
	}
}

func TestEngine_TamperIVChangesPlaintext(t *testing.T) {
	// CBC has no integrity check on the IV: a flipped IV bit flips the same
	// bit of the first plaintext block and padding stays valid.
	e := NewEngine()
	blob, _ := e.Encrypt(models.CipherAES256, []byte("ghp_xxx"), keyFor(models.CipherAES256))
	blob[0] ^= 0x01

	got, err := e.Decrypt(models.CipherAES256, blob, keyFor(models.CipherAES256))
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if string(got) != "fhp_xxx" {
		t.Fatalf("got %q, want %q", got, "fhp_xxx")
	}
}

func TestEngine_TamperChaCha20IsUndetected(t *testing.T) {
	e := NewEngine()
	original := []byte("ghp_xxx")
	blob, _ := e.Encrypt(models.CipherChaCha20, original, keyFor(models.CipherChaCha20))
	blob[len(blob)-1] ^= 0x01

	got, err := e.Decrypt(models.CipherChaCha20, blob, keyFor(models.CipherChaCha20))
	if err != nil {
		t.Fatalf("chacha20 has no tag, expected silent corruption, got %v", err)
	}
	if bytes.Equal(got, original) || len(got) != len(original) {
		t.Fatalf("expected same-length corrupted plaintext, got %q", got)
	}
	if got[len(got)-1] != original[len(original)-1]^0x01 {
		t.Fatalf("expected the flipped bit to carry into the plaintext")
	}
}

func TestPKCS7(t *testing.T) {
	padded := pkcs7Pad([]byte("abc"), 16)
	if len(padded) != 16 || padded[15] != 13 {
		t.Fatalf("unexpected padding: %x", padded)
	}
	full := pkcs7Pad(make([]byte, 16), 16)
	if len(full) != 32 || full[31] != 16 {
		t.Fatalf("aligned input must get a full padding block")
	}

	if got, ok := pkcs7Unpad(padded, 16); !ok || string(got) != "abc" {
		t.Fatalf("unpad = %q, %v", got, ok)
	}

	bad := bytes.Clone(padded)
	bad[14] = 7
	if _, ok := pkcs7Unpad(bad, 16); ok {
		t.Fatalf("expected inconsistent padding to be rejected")
	}
	zero := make([]byte, 16)
	if _, ok := pkcs7Unpad(zero, 16); ok {
		t.Fatalf("expected zero pad byte to be rejected")
	}
}
