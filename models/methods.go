// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// SaltMethod names the hash or KDF used to turn a secret and a salt value
// into key material. It is stored with every salt record.
type SaltMethod string

const (
	SaltSHA256 SaltMethod = "sha256"
	SaltSHA512 SaltMethod = "sha512"
	SaltMD5    SaltMethod = "md5"
	SaltArgon2 SaltMethod = "argon2"
)

// SaltMethods lists every supported salt method in display order.
var SaltMethods = []SaltMethod{SaltSHA256, SaltSHA512, SaltMD5, SaltArgon2}

// Valid reports whether m is a supported salt method.
func (m SaltMethod) Valid() bool {
	for _, known := range SaltMethods {
		if m == known {
			return true
		}
	}
	return false
}

func (m SaltMethod) String() string {
	return string(m)
}

// CipherMethod names the symmetric algorithm used for a cipher record.
// Decryption always uses the method stored with the record.
type CipherMethod string

const (
	CipherAES128   CipherMethod = "aes128"
	CipherAES256   CipherMethod = "aes256"
	CipherChaCha20 CipherMethod = "chacha20"
)

// CipherMethods lists every supported cipher method in display order.
var CipherMethods = []CipherMethod{CipherAES128, CipherAES256, CipherChaCha20}

// Valid reports whether m is a supported cipher method.
func (m CipherMethod) Valid() bool {
	for _, known := range CipherMethods {
		if m == known {
			return true
		}
	}
	return false
}

// KeySize returns the key length in bytes the method requires,
// or 0 for an unknown method.
func (m CipherMethod) KeySize() int {
	switch m {
	case CipherAES128:
		return 16
	case CipherAES256, CipherChaCha20:
		return 32
	default:
		return 0
	}
}

func (m CipherMethod) String() string {
	return string(m)
}

// ParseSaltMethod normalizes user input ("SHA256", " argon2 ") into a SaltMethod.
// The result is not validated.
func ParseSaltMethod(s string) SaltMethod {
	return SaltMethod(strings.ToLower(strings.TrimSpace(s)))
}

// ParseCipherMethod normalizes user input into a CipherMethod.
// The result is not validated.
func ParseCipherMethod(s string) CipherMethod {
	return CipherMethod(strings.ToLower(strings.TrimSpace(s)))
}
