// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/kasa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SaltServiceWrapper,CipherServiceWrapper

// SaltService manages salts and the first-salt convention.
type SaltService interface {
	// CreateSalt stores a salt. An empty method selects the configured
	// default, an empty value is generated.
	CreateSalt(ctx context.Context, req models.CreateSaltRequest) (models.Salt, error)
	GetSalt(ctx context.Context, id int64) (models.Salt, error)
	ListSalts(ctx context.Context) ([]models.Salt, error)
	// DeleteSalt refuses with store.ErrSaltInUse while ciphers reference it.
	DeleteSalt(ctx context.Context, id int64) error
	DeleteAllSalts(ctx context.Context) (int64, error)
	// FirstSaltKey returns the salt with models.FirstSaltID, or
	// ErrNoFirstSalt.
	FirstSaltKey(ctx context.Context) (models.Salt, error)
	// GenerateKey creates a salt and derives a key from the caller's own
	// secret. The derived key is returned hex-encoded.
	GenerateKey(ctx context.Context, req models.GenerateKeyRequest) (models.GeneratedKey, error)
	SupportedMethods() []models.SaltMethod
}

// CipherService encrypts, stores and decrypts named secrets.
type CipherService interface {
	CreateCipher(ctx context.Context, req models.CreateCipherRequest) (models.CreateCipherResult, error)
	// DecryptByName decrypts the only cipher with this name. Several
	// matches yield an ambiguous result listing them, not an error.
	DecryptByName(ctx context.Context, name string) (models.DecryptResult, error)
	DecryptByID(ctx context.Context, id int64) (models.DecryptResult, error)
	GetCipher(ctx context.Context, id int64) (models.CipherInfo, error)
	ListCiphers(ctx context.Context) ([]models.CipherInfo, error)
	SearchCiphers(ctx context.Context, pattern string) ([]models.CipherInfo, error)
	UpdateCipher(ctx context.Context, req models.UpdateCipherRequest) (models.CipherInfo, error)
	DeleteCipher(ctx context.Context, id int64) (models.DeleteCipherResult, error)
	// DeleteCipherByName returns *AmbiguousNameError when several ciphers
	// share the name.
	DeleteCipherByName(ctx context.Context, name string) (models.DeleteCipherResult, error)
	SupportedMethods() []models.CipherMethod
}

// CacheService maintains the cache of both record kinds.
type CacheService interface {
	// Sync copies every durable record into the cache.
	Sync(ctx context.Context) (models.CacheSyncResult, error)
	// Flush empties both cache namespaces and reports how many entries
	// were removed.
	Flush(ctx context.Context) (models.CacheSyncResult, error)
	// Rebuild flushes, then syncs.
	Rebuild(ctx context.Context) (models.CacheSyncResult, error)
}

// AppInfoService reports version and readiness.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
}

// BackupService exports a ciphertext-only snapshot.
type BackupService interface {
	Export(ctx context.Context) (models.BackupResult, error)
}

// SaltServiceWrapper decorates a SaltService, e.g. with validation.
type SaltServiceWrapper interface {
	Wrap(SaltService) SaltService
}

// CipherServiceWrapper decorates a CipherService, e.g. with validation.
type CipherServiceWrapper interface {
	Wrap(CipherService) CipherService
}
