// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/kasa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SaltRepository is the durable store of salts.
type SaltRepository interface {
	// CreateSalt inserts a salt and returns it with ID and CreatedAt set.
	CreateSalt(ctx context.Context, salt models.Salt) (models.Salt, error)
	// GetSalt returns ErrNotFound when id does not exist.
	GetSalt(ctx context.Context, id int64) (models.Salt, error)
	// ListSalts returns all salts ordered by id.
	ListSalts(ctx context.Context) ([]models.Salt, error)
	// DeleteSalt returns ErrSaltInUse while any cipher references id.
	DeleteSalt(ctx context.Context, id int64) error
	// DeleteAllSalts removes every salt and resets the id sequence so the
	// next salt is the first salt again. Refused with ErrSaltInUse while
	// any cipher exists.
	DeleteAllSalts(ctx context.Context) (int64, error)
}

// CipherRepository is the durable store of ciphers.
type CipherRepository interface {
	// CreateCipher returns ErrNotFound when SaltID does not exist.
	CreateCipher(ctx context.Context, cipher models.Cipher) (models.Cipher, error)
	GetCipher(ctx context.Context, id int64) (models.Cipher, error)
	// GetCiphersByName returns every cipher with exactly this name.
	GetCiphersByName(ctx context.Context, name string) ([]models.Cipher, error)
	// SearchCiphers returns ciphers whose name contains pattern,
	// case-insensitively.
	SearchCiphers(ctx context.Context, pattern string) ([]models.Cipher, error)
	ListCiphers(ctx context.Context) ([]models.Cipher, error)
	// UpdateCipher rewrites name, ciphertext and method. The salt binding
	// is immutable.
	UpdateCipher(ctx context.Context, cipher models.Cipher) (models.Cipher, error)
	DeleteCipher(ctx context.Context, id int64) error
}

// CacheStore is a best-effort key/value store in front of the repositories.
// Every method may fail; callers treat failures as misses.
type CacheStore interface {
	// Get returns ErrCacheMiss when key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key starting with namespace + ":" and returns
	// how many were removed.
	Clear(ctx context.Context, namespace string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}
