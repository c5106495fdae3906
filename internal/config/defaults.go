// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults returns the baseline every other source is merged onto.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultSaltMethod:   "sha256",
			DefaultCipherMethod: "aes256",
			Argon2: Argon2{
				Time:      1,
				MemoryKiB: 64 * 1024,
				Threads:   4,
			},
			Version:  "dev",
			LogLevel: "info",
		},
		Storage: Storage{
			DB: DB{
				DSN:             "sqlite://kasa.db",
				MaxOpenConns:    10,
				ConnMaxLifetime: 30 * time.Minute,
				BusyTimeout:     5 * time.Second,
			},
			Cache: Cache{
				RetryAttempts:    3,
				RetryInterval:    2 * time.Second,
				ConnectTimeout:   10 * time.Second,
				OperationTimeout: 500 * time.Millisecond,
				ScanBatchSize:    1000,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Workers: Workers{
			CacheSyncInterval: 10 * time.Minute,
		},
		Backup: Backup{
			Prefix: "backups/",
			Region: "us-east-1",
		},
		Adapter: Adapter{
			ServerURL:      "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
			RetryCount:     2,
		},
	}
}

func osArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}
