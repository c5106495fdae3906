// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the CLI's client for the kasa HTTP API.
//
// [ServerAdapter] decouples the command tree and the interactive shell from
// the transport. Failed calls return an *APIError decoded from the server's
// error body; it matches the sentinel errors of this package with
// [errors.Is], so callers can tell NotFound from SaltInUse without looking
// at status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/kasa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter mirrors the HTTP API one method per route.
type ServerAdapter interface {
	Health(ctx context.Context) (models.HealthStatus, error)
	Version(ctx context.Context) (string, error)

	CreateSalt(ctx context.Context, req models.CreateSaltRequest) (models.SaltInfo, error)
	ListSalts(ctx context.Context) ([]models.SaltInfo, error)
	GetSalt(ctx context.Context, id int64) (models.SaltInfo, error)
	FirstSalt(ctx context.Context) (models.SaltInfo, error)
	DeleteSalt(ctx context.Context, id int64) error
	GenerateKey(ctx context.Context, req models.GenerateKeyRequest) (models.GeneratedKey, error)
	SaltMethods(ctx context.Context) ([]models.SaltMethod, error)

	CreateCipher(ctx context.Context, req models.CreateCipherRequest) (models.CreateCipherResult, error)
	// ListCiphers lists every cipher, or those whose name contains search.
	ListCiphers(ctx context.Context, search string) ([]models.CipherInfo, error)
	GetCipher(ctx context.Context, id int64) (models.CipherInfo, error)
	UpdateCipher(ctx context.Context, req models.UpdateCipherRequest) (models.CipherInfo, error)
	DeleteCipher(ctx context.Context, id int64) (models.DeleteCipherResult, error)
	DeleteCipherByName(ctx context.Context, name string) (models.DeleteCipherResult, error)
	DecryptByID(ctx context.Context, id int64) (models.DecryptResult, error)
	// DecryptByName returns the candidates, not an error, when the name is
	// ambiguous; check DecryptResult.Ambiguous.
	DecryptByName(ctx context.Context, name string) (models.DecryptResult, error)
	CipherMethods(ctx context.Context) ([]models.CipherMethod, error)

	SyncCache(ctx context.Context) (models.CacheSyncResult, error)
	FlushCache(ctx context.Context) (models.CacheSyncResult, error)
	Backup(ctx context.Context) (models.BackupResult, error)
}
