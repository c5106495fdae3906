// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/service"
)

// cacheSyncWorker periodically copies durable records into the cache so
// entries lost to eviction or a cache restart come back without a request
// having to miss first.
type cacheSyncWorker struct {
	cache    service.CacheService
	interval time.Duration

	logger *logger.Logger
}

func NewCacheSyncWorker(cache service.CacheService, interval time.Duration, logger *logger.Logger) Worker {
	return &cacheSyncWorker{
		cache:    cache,
		interval: interval,
		logger:   logger.WithComponent("cache-sync"),
	}
}

func (w *cacheSyncWorker) Run(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.interval).Msg("cache sync worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("cache sync worker stopped")
			return nil
		case <-ticker.C:
			w.syncOnce(ctx)
		}
	}
}

// syncOnce logs failures and keeps the worker alive; the next tick retries.
func (w *cacheSyncWorker) syncOnce(ctx context.Context) {
	res, err := w.cache.Sync(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Err(err).Str("func", "cacheSyncWorker.syncOnce").Msg("cache sync failed")
		return
	}
	w.logger.Debug().
		Int("salts", res.Salts).
		Int("ciphers", res.Ciphers).
		Msg("cache synced")
}
