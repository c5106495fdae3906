// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps the cache store consistent with the durable store.
//
// Engine implements cache-aside for one record kind: reads try the cache
// first and warm it from the durable store on a miss, writes commit to the
// durable store before the cache is touched. Cache failures never fail an
// operation; they are logged and the durable store answers instead.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/store"
)

// Kind namespaces cache keys.
type Kind string

const (
	KindSalt   Kind = "salt"
	KindCipher Kind = "cipher"
)

// Key returns the cache key of record id, e.g. "salt:1".
func Key(kind Kind, id int64) string {
	return string(kind) + ":" + strconv.FormatInt(id, 10)
}

// Record is implemented by every cached model.
type Record interface {
	GetID() int64
}

// Source is the durable side of one record kind.
type Source[T Record] interface {
	Get(ctx context.Context, id int64) (T, error)
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id int64) error
}

// SourceFuncs adapts plain functions to [Source].
type SourceFuncs[T Record] struct {
	GetFunc    func(ctx context.Context, id int64) (T, error)
	ListFunc   func(ctx context.Context) ([]T, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

func (s SourceFuncs[T]) Get(ctx context.Context, id int64) (T, error) { return s.GetFunc(ctx, id) }

func (s SourceFuncs[T]) List(ctx context.Context) ([]T, error) { return s.ListFunc(ctx) }

func (s SourceFuncs[T]) Delete(ctx context.Context, id int64) error { return s.DeleteFunc(ctx, id) }

const lockStripes = 64

// Engine is the cache-aside engine for records of type T.
//
// Cache fills and removals of the same key are serialized by a striped
// lock. A fill that started before a removal of its key (or a Flush)
// finished is dropped, so a removed record is never put back into the cache.
type Engine[T Record] struct {
	kind   Kind
	source Source[T]
	cache  store.CacheStore
	logger *logger.Logger

	stripes [lockStripes]sync.Mutex

	mu        sync.Mutex
	epoch     uint64
	removedAt map[int64]uint64
	flushedAt uint64
	inflight  int
}

// NewEngine builds an engine for kind over source and cache.
func NewEngine[T Record](kind Kind, source Source[T], cache store.CacheStore, log *logger.Logger) *Engine[T] {
	return &Engine[T]{
		kind:      kind,
		source:    source,
		cache:     cache,
		logger:    log.WithComponent("cache." + string(kind)),
		removedAt: make(map[int64]uint64),
	}
}

// Kind returns the namespace the engine manages.
func (e *Engine[T]) Kind() Kind {
	return e.kind
}

// Write runs commit against the durable store and, once it succeeds,
// mirrors the committed record into the cache. A failed commit leaves the
// cache untouched.
func (e *Engine[T]) Write(ctx context.Context, commit func(ctx context.Context) (T, error)) (T, error) {
	start := e.begin()
	defer e.end()

	record, err := commit(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := e.fill(ctx, start, record); err != nil && !errors.Is(err, errRemoved) {
		e.logger.Warn().Err(err).Str("key", Key(e.kind, record.GetID())).Msg("cache write failed")
	}
	return record, nil
}

// Read returns record id from the cache, or from the durable store on a
// miss, warming the cache with the result.
func (e *Engine[T]) Read(ctx context.Context, id int64) (T, error) {
	key := Key(e.kind, id)

	raw, err := e.cache.Get(ctx, key)
	switch {
	case err == nil:
		var record T
		decodeErr := json.Unmarshal(raw, &record)
		if decodeErr == nil {
			return record, nil
		}
		e.logger.Warn().Err(decodeErr).Str("key", key).Msg("undecodable cache entry, falling back to durable store")
	case errors.Is(err, store.ErrCacheMiss):
	default:
		e.logger.Warn().Err(err).Str("key", key).Msg("cache read failed, falling back to durable store")
	}

	start := e.begin()
	defer e.end()

	record, err := e.source.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := e.fill(ctx, start, record); err != nil && !errors.Is(err, errRemoved) {
		e.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return record, nil
}

// Sync copies every durable record of the kind into the cache and returns
// how many were written. Records removed while the listing was in flight
// are skipped. Running it twice leaves the same cache content.
func (e *Engine[T]) Sync(ctx context.Context) (int, error) {
	start := e.begin()
	defer e.end()

	records, err := e.source.List(ctx)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, record := range records {
		if err := e.fill(ctx, start, record); err != nil {
			if errors.Is(err, errRemoved) {
				continue
			}
			return 0, err
		}
		written++
	}

	e.logger.Info().Int("records", written).Msg("cache synced")
	return written, nil
}

// Flush drops every cache entry of the kind. The durable store is not
// touched. Fills that started before the flush are dropped.
func (e *Engine[T]) Flush(ctx context.Context) (int64, error) {
	for i := range e.stripes {
		e.stripes[i].Lock()
	}
	defer func() {
		for i := range e.stripes {
			e.stripes[i].Unlock()
		}
	}()

	e.mu.Lock()
	e.epoch++
	e.flushedAt = e.epoch
	e.mu.Unlock()

	removed, err := e.cache.Clear(ctx, string(e.kind))
	if err != nil {
		return removed, err
	}

	e.logger.Info().Int64("removed", removed).Msg("cache flushed")
	return removed, nil
}

// Delete removes record id from the durable store and then from the cache.
// The cache entry is dropped even when the durable delete fails, so a stale
// entry never outlives a record that may be gone.
func (e *Engine[T]) Delete(ctx context.Context, id int64) error {
	lock := e.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	err := e.source.Delete(ctx, id)
	e.remove(ctx, id)
	return err
}

// Invalidate drops the cache entry of record id.
func (e *Engine[T]) Invalidate(ctx context.Context, id int64) {
	lock := e.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	e.remove(ctx, id)
}

var errRemoved = errors.New("record removed while filling")

// fill puts record into the cache unless its key was removed after start.
func (e *Engine[T]) fill(ctx context.Context, start uint64, record T) error {
	id := record.GetID()
	key := Key(e.kind, id)

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	lock := e.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	if e.removedSince(id, start) {
		e.logger.Debug().Str("key", key).Msg("skipping fill of removed record")
		return errRemoved
	}
	return e.cache.Put(ctx, key, raw)
}

// remove marks id as removed and drops its cache entry. The caller holds
// the key's stripe lock.
func (e *Engine[T]) remove(ctx context.Context, id int64) {
	e.mu.Lock()
	e.epoch++
	if e.inflight > 0 {
		e.removedAt[id] = e.epoch
	}
	e.mu.Unlock()

	key := Key(e.kind, id)
	if err := e.cache.Delete(ctx, key); err != nil {
		e.logger.Warn().Err(err).Str("key", key).Msg("cache delete failed")
	}
}

// begin registers an in-flight fill and returns its start epoch.
func (e *Engine[T]) begin() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inflight++
	return e.epoch
}

// end releases a fill. Removal marks are only needed while fills run.
func (e *Engine[T]) end() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inflight--
	if e.inflight == 0 {
		clear(e.removedAt)
	}
}

func (e *Engine[T]) removedSince(id int64, start uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.flushedAt > start {
		return true
	}
	at, ok := e.removedAt[id]
	return ok && at > start
}

func (e *Engine[T]) lockFor(id int64) *sync.Mutex {
	return &e.stripes[uint64(id)%lockStripes]
}
