// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/kasa/internal/cache"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/models"
)

type cacheService struct {
	salts   *cache.Engine[models.Salt]
	ciphers *cache.Engine[models.Cipher]

	logger *logger.Logger
}

// NewCacheService builds the cache maintenance service over both engines.
func NewCacheService(salts *cache.Engine[models.Salt], ciphers *cache.Engine[models.Cipher], logger *logger.Logger) CacheService {
	return &cacheService{
		salts:   salts,
		ciphers: ciphers,
		logger:  logger,
	}
}

func (s *cacheService) Sync(ctx context.Context) (models.CacheSyncResult, error) {
	var result models.CacheSyncResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.salts.Sync(gctx)
		result.Salts = n
		return err
	})
	g.Go(func() error {
		n, err := s.ciphers.Sync(gctx)
		result.Ciphers = n
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "cacheService.Sync").Msg("error syncing cache")
		return models.CacheSyncResult{}, err
	}

	return result, nil
}

func (s *cacheService) Flush(ctx context.Context) (models.CacheSyncResult, error) {
	var result models.CacheSyncResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.salts.Flush(gctx)
		result.Salts = int(n)
		return err
	})
	g.Go(func() error {
		n, err := s.ciphers.Flush(gctx)
		result.Ciphers = int(n)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "cacheService.Flush").Msg("error flushing cache")
		return models.CacheSyncResult{}, err
	}

	return result, nil
}

func (s *cacheService) Rebuild(ctx context.Context) (models.CacheSyncResult, error) {
	if _, err := s.Flush(ctx); err != nil {
		return models.CacheSyncResult{}, err
	}
	return s.Sync(ctx)
}
