// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/kasa/internal/cache"
	"github.com/MKhiriev/kasa/internal/config"
	"github.com/MKhiriev/kasa/internal/crypto"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/store"
	"github.com/MKhiriev/kasa/models"
)

// Defaults are the method defaults applied when a request names none.
type Defaults struct {
	SaltMethod   models.SaltMethod
	CipherMethod models.CipherMethod

	// Rand overrides crypto/rand for generated salt values.
	Rand io.Reader
}

// DefaultsFromConfig reads the method defaults from cfg.
func DefaultsFromConfig(cfg config.App) Defaults {
	return Defaults{
		SaltMethod:   models.ParseSaltMethod(cfg.DefaultSaltMethod),
		CipherMethod: models.ParseCipherMethod(cfg.DefaultCipherMethod),
	}
}

type Services struct {
	SaltService    SaltService
	CipherService  CipherService
	CacheService   CacheService
	AppInfoService AppInfoService
	BackupService  BackupService
}

// NewServices wires the services over storages. keys derives cipher keys
// from the master secret, deriver serves GenerateKey with caller secrets.
// backup may be nil when no object storage is configured.
func NewServices(storages *store.Storages, keys crypto.KeySource, deriver crypto.KeyDeriver, backup BackupService, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	saltEngine := NewSaltEngine(storages.SaltRepository, storages.Cache, logger)
	cipherEngine := NewCipherEngine(storages.CipherRepository, storages.Cache, logger)
	defaults := DefaultsFromConfig(cfg.App)

	saltService := NewSaltValidationService().Wrap(
		NewSaltService(storages.SaltRepository, saltEngine, deriver, defaults, logger),
	)
	cipherService := NewCipherValidationService().Wrap(
		NewCipherService(storages.CipherRepository, cipherEngine, saltService, keys, crypto.NewEngine(), defaults, logger),
	)

	checks := []HealthCheck{
		{Name: "database", Critical: true, Check: storages.DB.Ping},
		{Name: "cache", Check: storages.Cache.Ping},
	}
	appInfoService, err := NewAppInfoService(cfg.App, checks, logger)
	if err != nil {
		return nil, err
	}

	if backup == nil {
		backup = disabledBackup{}
	}

	return &Services{
		SaltService:    saltService,
		CipherService:  cipherService,
		CacheService:   NewCacheService(saltEngine, cipherEngine, logger),
		AppInfoService: appInfoService,
		BackupService:  backup,
	}, nil
}

// NewSaltEngine returns the cache-aside engine of the salt namespace.
func NewSaltEngine(repo store.SaltRepository, cacheStore store.CacheStore, logger *logger.Logger) *cache.Engine[models.Salt] {
	return cache.NewEngine[models.Salt](cache.KindSalt, cache.SourceFuncs[models.Salt]{
		GetFunc:    repo.GetSalt,
		ListFunc:   repo.ListSalts,
		DeleteFunc: repo.DeleteSalt,
	}, cacheStore, logger)
}

// NewCipherEngine returns the cache-aside engine of the cipher namespace.
func NewCipherEngine(repo store.CipherRepository, cacheStore store.CacheStore, logger *logger.Logger) *cache.Engine[models.Cipher] {
	return cache.NewEngine[models.Cipher](cache.KindCipher, cache.SourceFuncs[models.Cipher]{
		GetFunc:    repo.GetCipher,
		ListFunc:   repo.ListCiphers,
		DeleteFunc: repo.DeleteCipher,
	}, cacheStore, logger)
}

type disabledBackup struct{}

func (disabledBackup) Export(context.Context) (models.BackupResult, error) {
	return models.BackupResult{}, ErrBackupDisabled
}
