// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the repositories and cache stores. Callers
// match them with [errors.Is].
var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("record not found")

	// ErrSaltInUse is returned when a salt delete is refused because at
	// least one cipher still references it.
	ErrSaltInUse = errors.New("salt is referenced by ciphers")

	// ErrStoreUnavailable wraps every durable store failure that is not a
	// domain outcome: connection loss, timeouts, driver errors. Such
	// failures are safe to retry.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrCacheMiss is returned by [CacheStore.Get] when the key is absent.
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable wraps cache backend failures.
	ErrCacheUnavailable = errors.New("cache unavailable")

	// ErrUnsupportedDSN is returned when the DSN matches no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrEmptyRedisURL is returned when a Redis cache is built without a URL.
	ErrEmptyRedisURL = errors.New("empty redis connection URL")

	// ErrRedisNotReady is returned when Redis does not answer a ping within
	// the configured retries.
	ErrRedisNotReady = errors.New("redis did not become ready within the given time period")
)

// Low-level database operation errors, wrapped together with
// ErrStoreUnavailable so logs show which stage failed.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)

// IsRetryable reports whether err is a durable store failure the caller may
// retry.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
