// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache implements [CacheStore] in process memory. It backs
// single-node deployments and tests.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryCache returns an empty cache. A zero ttl keeps entries until
// they are deleted or cleared.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		items: make(map[string]memoryItem),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || c.expired(item) {
		return nil, ErrCacheMiss
	}
	return append([]byte(nil), item.value...), nil
}

func (c *MemoryCache) Put(_ context.Context, key string, value []byte) error {
	item := memoryItem{value: append([]byte(nil), value...)}
	if c.ttl > 0 {
		item.expiresAt = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Clear(_ context.Context, namespace string) (int64, error) {
	prefix := namespace + ":"

	c.mu.Lock()
	defer c.mu.Unlock()

	var removed int64
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
			removed++
		}
	}
	return removed, nil
}

func (c *MemoryCache) Ping(context.Context) error { return nil }

func (c *MemoryCache) Close() error { return nil }

// Len returns the number of live entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, item := range c.items {
		if !c.expired(item) {
			n++
		}
	}
	return n
}

func (c *MemoryCache) expired(item memoryItem) bool {
	return !item.expiresAt.IsZero() && !c.now().Before(item.expiresAt)
}
