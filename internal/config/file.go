// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML files. Secrets
// are deliberately absent: they come from the environment only.
type fileConfig struct {
	App struct {
		DefaultSaltMethod   string `json:"default_salt_method" yaml:"default_salt_method"`
		DefaultCipherMethod string `json:"default_cipher_method" yaml:"default_cipher_method"`
		Version             string `json:"version" yaml:"version"`
		LogLevel            string `json:"log_level" yaml:"log_level"`
		Argon2              struct {
			Time      uint32 `json:"time" yaml:"time"`
			MemoryKiB uint32 `json:"memory_kib" yaml:"memory_kib"`
			Threads   uint8  `json:"threads" yaml:"threads"`
		} `json:"argon2" yaml:"argon2"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn" yaml:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns" yaml:"max_open_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
			BusyTimeout     Duration `json:"busy_timeout" yaml:"busy_timeout"`
		} `json:"db" yaml:"db"`
		Cache struct {
			RedisURL         string   `json:"redis_url" yaml:"redis_url"`
			TTL              Duration `json:"ttl" yaml:"ttl"`
			RetryAttempts    int      `json:"retry_attempts" yaml:"retry_attempts"`
			RetryInterval    Duration `json:"retry_interval" yaml:"retry_interval"`
			ConnectTimeout   Duration `json:"connect_timeout" yaml:"connect_timeout"`
			OperationTimeout Duration `json:"operation_timeout" yaml:"operation_timeout"`
			ScanBatchSize    int      `json:"scan_batch_size" yaml:"scan_batch_size"`
		} `json:"cache" yaml:"cache"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Workers struct {
		CacheSyncInterval Duration `json:"cache_sync_interval" yaml:"cache_sync_interval"`
	} `json:"workers" yaml:"workers"`

	Backup struct {
		Endpoint string `json:"endpoint" yaml:"endpoint"`
		Bucket   string `json:"bucket" yaml:"bucket"`
		Prefix   string `json:"prefix" yaml:"prefix"`
		Region   string `json:"region" yaml:"region"`
		UseSSL   bool   `json:"use_ssl" yaml:"use_ssl"`
	} `json:"backup" yaml:"backup"`

	Adapter struct {
		ServerURL      string   `json:"server_url" yaml:"server_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RetryCount     int      `json:"retry_count" yaml:"retry_count"`
	} `json:"adapter" yaml:"adapter"`
}

// parseFile reads a JSON or YAML config file, chosen by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	case ".json", "":
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, filepath.Ext(path))
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultSaltMethod:   fc.App.DefaultSaltMethod,
			DefaultCipherMethod: fc.App.DefaultCipherMethod,
			Version:             fc.App.Version,
			LogLevel:            fc.App.LogLevel,
			Argon2: Argon2{
				Time:      fc.App.Argon2.Time,
				MemoryKiB: fc.App.Argon2.MemoryKiB,
				Threads:   fc.App.Argon2.Threads,
			},
		},
		Storage: Storage{
			DB: DB{
				DSN:             fc.Storage.DB.DSN,
				MaxOpenConns:    fc.Storage.DB.MaxOpenConns,
				ConnMaxLifetime: time.Duration(fc.Storage.DB.ConnMaxLifetime),
				BusyTimeout:     time.Duration(fc.Storage.DB.BusyTimeout),
			},
			Cache: Cache{
				RedisURL:         fc.Storage.Cache.RedisURL,
				TTL:              time.Duration(fc.Storage.Cache.TTL),
				RetryAttempts:    fc.Storage.Cache.RetryAttempts,
				RetryInterval:    time.Duration(fc.Storage.Cache.RetryInterval),
				ConnectTimeout:   time.Duration(fc.Storage.Cache.ConnectTimeout),
				OperationTimeout: time.Duration(fc.Storage.Cache.OperationTimeout),
				ScanBatchSize:    fc.Storage.Cache.ScanBatchSize,
			},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Workers: Workers{
			CacheSyncInterval: time.Duration(fc.Workers.CacheSyncInterval),
		},
		Backup: Backup{
			Endpoint: fc.Backup.Endpoint,
			Bucket:   fc.Backup.Bucket,
			Prefix:   fc.Backup.Prefix,
			Region:   fc.Backup.Region,
			UseSSL:   fc.Backup.UseSSL,
		},
		Adapter: Adapter{
			ServerURL:      fc.Adapter.ServerURL,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			RetryCount:     fc.Adapter.RetryCount,
		},
	}
}

// Duration accepts "1h30m"-style strings or integer nanoseconds in JSON
// and YAML files.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
