// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/kasa/internal/config"
	"github.com/MKhiriev/kasa/internal/logger"
)

// Storages bundles the durable repositories and the cache store.
type Storages struct {
	SaltRepository   SaltRepository
	CipherRepository CipherRepository
	Cache            CacheStore
	DB               *DB
}

// NewStorages connects the durable store selected by cfg.DB.DSN and the
// cache store: Redis when cfg.Cache.RedisURL is set, memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("error connecting durable store")
		return nil, err
	}

	var cache CacheStore
	if cfg.Cache.RedisURL != "" {
		redisCache, err := NewRedisCache(ctx, cfg.Cache, log)
		if err != nil {
			log.Err(err).Str("func", "store.NewStorages").Msg("error connecting cache store")
			_ = db.Close()
			return nil, err
		}
		cache = redisCache
	} else {
		log.Info().Str("func", "store.NewStorages").Msg("no redis url configured, using in-memory cache")
		cache = NewMemoryCache(cfg.Cache.TTL)
	}

	return &Storages{
		SaltRepository:   NewSaltRepository(db),
		CipherRepository: NewCipherRepository(db),
		Cache:            cache,
		DB:               db,
	}, nil
}

// Close releases the cache and database connections.
func (s *Storages) Close() error {
	var errs []error
	if s.Cache != nil {
		errs = append(errs, s.Cache.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
