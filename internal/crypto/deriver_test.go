// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/md5"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/MKhiriev/kasa/models"
)

func testArgon2Params() Argon2Params {
	return Argon2Params{Time: 1, MemoryKiB: 1024, Threads: 1}
}

func TestDeriver_DigestFirstBlockMatchesHash(t *testing.T) {
	d := NewDeriver(testArgon2Params())
	secret := []byte("master")
	salt := models.Salt{Method: models.SaltSHA256, Value: []byte("0123456789abcdef")}

	got, err := d.Derive(secret, salt, 32)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	want := sha256.Sum256(append(append([]byte{}, secret...), salt.Value...))
	if !bytes.Equal(got, want[:]) {
		t.Fatalf("sha256 key = %x, want %x", got, want)
	}

	short, err := d.Derive(secret, salt, 16)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if !bytes.Equal(short, want[:16]) {
		t.Fatalf("16-byte key must be a prefix of the digest")
	}
}

func TestDeriver_StretchesWithCounter(t *testing.T) {
	d := NewDeriver(testArgon2Params())
	secret := []byte("s")
	salt := models.Salt{Method: models.SaltMD5, Value: []byte("salt-value")}

	got, err := d.Derive(secret, salt, 32)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	block0 := md5.Sum([]byte("ssalt-value"))
	block1 := md5.Sum(append([]byte("ssalt-value"), 0, 0, 0, 1))
	want := append(block0[:], block1[:]...)
	if !bytes.Equal(got, want) {
		t.Fatalf("md5 stretched key = %x, want %x", got, want)
	}
}

func TestDeriver_Deterministic(t *testing.T) {
	d := NewDeriver(testArgon2Params())
	value := bytes.Repeat([]byte{0xAB}, 16)

	for _, method := range models.SaltMethods {
		t.Run(string(method), func(t *testing.T) {
			salt := models.Salt{ID: 1, Method: method, Value: value}
			for _, n := range []int{16, 32, 48} {
				k1, err := d.Derive([]byte("secret"), salt, n)
				if err != nil {
					t.Fatalf("Derive error: %v", err)
				}
				k2, err := NewDeriver(testArgon2Params()).Derive([]byte("secret"), salt, n)
				if err != nil {
					t.Fatalf("Derive error: %v", err)
				}
				if len(k1) != n {
					t.Fatalf("key length = %d, want %d", len(k1), n)
				}
				if !bytes.Equal(k1, k2) {
					t.Fatalf("expected identical keys for identical inputs")
				}
			}
		})
	}
}

func TestDeriver_DifferentInputsDiffer(t *testing.T) {
	d := NewDeriver(testArgon2Params())
	salt := models.Salt{Method: models.SaltSHA512, Value: []byte("value-one")}
	other := models.Salt{Method: models.SaltSHA512, Value: []byte("value-two")}

	k1, _ := d.Derive([]byte("secret"), salt, 32)
	k2, _ := d.Derive([]byte("secret"), other, 32)
	k3, _ := d.Derive([]byte("another"), salt, 32)

	if bytes.Equal(k1, k2) || bytes.Equal(k1, k3) {
		t.Fatalf("expected different keys for different salt or secret")
	}
}

func TestDeriver_Argon2ParamsChangeOutput(t *testing.T) {
	salt := models.Salt{Method: models.SaltArgon2, Value: bytes.Repeat([]byte{1}, 16)}

	k1, err := NewDeriver(testArgon2Params()).Derive([]byte("secret"), salt, 32)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	k2, err := NewDeriver(Argon2Params{Time: 2, MemoryKiB: 1024, Threads: 1}).Derive([]byte("secret"), salt, 32)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different argon2 parameters")
	}
}

func TestDeriver_Errors(t *testing.T) {
	d := NewDeriver(testArgon2Params())

	tests := []struct {
		name   string
		salt   models.Salt
		length int
		want   error
	}{
		{"unknown method", models.Salt{Method: "sha1", Value: []byte("x")}, 16, ErrUnsupportedMethod},
		{"zero length", models.Salt{Method: models.SaltSHA256, Value: []byte("x")}, 0, ErrInvalidKeySize},
		{"empty value", models.Salt{Method: models.SaltSHA256}, 16, ErrInvalidSaltValue},
		{"short argon2 salt", models.Salt{Method: models.SaltArgon2, Value: []byte("short")}, 16, ErrInvalidSaltValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Derive([]byte("secret"), tt.salt, tt.length)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewDeriver_Defaults(t *testing.T) {
	d := NewDeriver(Argon2Params{Threads: 2})
	p := d.Params()
	if p.Time != 1 || p.MemoryKiB != 64*1024 || p.Threads != 2 {
		t.Fatalf("unexpected params: %+v", p)
	}
}

func TestNewSaltValue(t *testing.T) {
	v1, err := NewSaltValue(nil)
	if err != nil {
		t.Fatalf("NewSaltValue error: %v", err)
	}
	v2, err := NewSaltValue(nil)
	if err != nil {
		t.Fatalf("NewSaltValue error: %v", err)
	}
	if len(v1) != SaltValueLength || bytes.Equal(v1, v2) {
		t.Fatalf("expected two distinct %d-byte values", SaltValueLength)
	}

	if _, err := NewSaltValue(bytes.NewReader([]byte{1, 2})); err == nil {
		t.Fatalf("expected error on short random source")
	}
}

func TestValidateSaltValue(t *testing.T) {
	if err := ValidateSaltValue(models.SaltSHA256, []byte("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateSaltValue("bcrypt", []byte("a")); !errors.Is(err, ErrUnsupportedMethod) {
		t.Fatalf("err = %v, want ErrUnsupportedMethod", err)
	}
	if err := ValidateSaltValue(models.SaltArgon2, []byte("1234567")); !errors.Is(err, ErrInvalidSaltValue) {
		t.Fatalf("err = %v, want ErrInvalidSaltValue", err)
	}
}
