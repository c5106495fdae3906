// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/kasa/models"
)

// validate checks the merged server configuration. All failing groups are
// reported together.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.validateApp(),
		cfg.validateStorage(),
		cfg.validateServer(),
		cfg.validateWorkers(),
		cfg.validateBackup(),
	)
}

func (cfg *StructuredConfig) validateApp() error {
	if cfg.App.MasterKey == "" {
		return fmt.Errorf("%w: master key is required", ErrInvalidAppConfigs)
	}
	if !models.ParseSaltMethod(cfg.App.DefaultSaltMethod).Valid() {
		return fmt.Errorf("%w: unknown default salt method %q", ErrInvalidAppConfigs, cfg.App.DefaultSaltMethod)
	}
	if !models.ParseCipherMethod(cfg.App.DefaultCipherMethod).Valid() {
		return fmt.Errorf("%w: unknown default cipher method %q", ErrInvalidAppConfigs, cfg.App.DefaultCipherMethod)
	}
	a := cfg.App.Argon2
	if a.Time == 0 || a.MemoryKiB == 0 || a.Threads == 0 {
		return fmt.Errorf("%w: argon2 parameters must be positive", ErrInvalidAppConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) validateStorage() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	c := cfg.Storage.Cache
	if c.TTL < 0 || c.RetryAttempts < 0 || c.ScanBatchSize < 0 {
		return fmt.Errorf("%w: cache settings must not be negative", ErrInvalidStorageConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) validateWorkers() error {
	if cfg.Workers.CacheSyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *StructuredConfig) validateBackup() error {
	b := cfg.Backup
	if b.Endpoint == "" {
		return nil
	}
	if b.Bucket == "" || b.AccessKey == "" || b.SecretKey == "" {
		return fmt.Errorf("%w: endpoint set without bucket or credentials", ErrInvalidBackupConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) validateAdapter() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}
