// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/kasa/internal/config"
	"github.com/MKhiriev/kasa/internal/logger"
)

const defaultScanBatchSize = 1000

// RedisCache implements [CacheStore] on Redis.
type RedisCache struct {
	client           redis.UniversalClient
	ttl              time.Duration
	operationTimeout time.Duration
	scanBatchSize    int64
	logger           *logger.Logger
}

// NewRedisCache connects to cfg.RedisURL, pinging until the server answers
// or cfg.RetryAttempts is exhausted.
func NewRedisCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (*RedisCache, error) {
	if cfg.RedisURL == "" {
		return nil, ErrEmptyRedisURL
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	if cfg.ConnectTimeout > 0 {
		opts.DialTimeout = cfg.ConnectTimeout
	}
	if cfg.OperationTimeout > 0 {
		opts.ReadTimeout = cfg.OperationTimeout
		opts.WriteTimeout = cfg.OperationTimeout
	}

	client := redis.NewClient(opts)
	if err := waitForRedis(ctx, client, cfg, log); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewRedisCacheFromClient(client, cfg, log), nil
}

// NewRedisCacheFromClient wraps an already connected client.
func NewRedisCacheFromClient(client redis.UniversalClient, cfg config.Cache, log *logger.Logger) *RedisCache {
	batch := int64(cfg.ScanBatchSize)
	if batch <= 0 {
		batch = defaultScanBatchSize
	}
	return &RedisCache{
		client:           client,
		ttl:              cfg.TTL,
		operationTimeout: cfg.OperationTimeout,
		scanBatchSize:    batch,
		logger:           log,
	}
}

func waitForRedis(ctx context.Context, client redis.UniversalClient, cfg config.Cache, log *logger.Logger) error {
	attempts := max(cfg.RetryAttempts, 1)
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		err = client.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			log.Info().Str("func", "NewRedisCache").Msg("connected to redis")
			return nil
		}

		log.Warn().Err(err).Str("func", "NewRedisCache").Int("attempt", attempt).Msg("redis is not ready")
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return fmt.Errorf("%w: %w", ErrRedisNotReady, err)
}

func (c *RedisCache) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.operationTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.operationTimeout)
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return value, nil
}

func (c *RedisCache) Put(ctx context.Context, key string, value []byte) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

// Clear walks the namespace with SCAN and removes keys batch by batch with
// UNLINK, so large namespaces never block the server.
func (c *RedisCache) Clear(ctx context.Context, namespace string) (int64, error) {
	var (
		cursor  uint64
		removed int64
	)
	match := namespace + ":*"

	for {
		keys, next, err := c.client.Scan(ctx, cursor, match, c.scanBatchSize).Result()
		if err != nil {
			return removed, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
		}
		if len(keys) > 0 {
			n, err := c.client.Unlink(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
			}
			removed += n
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	c.logger.Debug().Str("func", "RedisCache.Clear").Str("namespace", namespace).Int64("removed", removed).Msg("namespace cleared")
	return removed, nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
