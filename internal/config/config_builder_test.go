// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.App.MasterKey = "master"
	return cfg
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_PriorityOrder(t *testing.T) {
	b := newConfigBuilder()
	// added out of order on purpose
	b.add(priorityFlags, &StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:1"}})
	b.add(priorityEnv, &StructuredConfig{
		App:    App{MasterKey: "env-key", Version: "env"},
		Server: Server{HTTPAddress: "127.0.0.1:2"},
	})
	b.add(priorityFile, &StructuredConfig{App: App{Version: "file", LogLevel: "warn"}})
	b.add(priorityDefaults, Defaults())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:1", cfg.Server.HTTPAddress)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "env-key", cfg.App.MasterKey)
	// untouched defaults survive
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "aes256", cfg.App.DefaultCipherMethod)
}

func TestBuild_ValidationFailure(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestWithFile_UsesHighestPriorityPath(t *testing.T) {
	dir := t.TempDir()
	low := filepath.Join(dir, "low.json")
	high := filepath.Join(dir, "high.yaml")
	require.NoError(t, os.WriteFile(low, []byte(`{"app": {"version": "low"}}`), 0o600))
	require.NoError(t, os.WriteFile(high, []byte("app:\n  version: high\n"), 0o600))

	b := newConfigBuilder()
	b.add(priorityEnv, &StructuredConfig{FilePath: low, App: App{MasterKey: "k"}})
	b.add(priorityFlags, &StructuredConfig{FilePath: high})
	b.withDefaults().withFile()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "high", cfg.App.Version)
}

func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.add(priorityEnv, &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "none.json")})

	_, err := b.withFile().build()
	assert.Error(t, err)
}

func TestWithFlags_Error(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "bad"})
	assert.Error(t, b.err)
}

func TestBuilder_EnvAndFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_MASTER_KEY":          "from-env",
		"STORAGE_DB_DATABASE_URI": "postgres://env/kasa",
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-d", "sqlite:///tmp/flags.db"}).
		withFile().
		build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.MasterKey)
	assert.Equal(t, "sqlite:///tmp/flags.db", cfg.Storage.DB.DSN)
}

func TestBuilder_DotEnvFromFlag(t *testing.T) {
	clearEnvVars(t)
	p := filepath.Join(t.TempDir(), "kasa.env")
	require.NoError(t, os.WriteFile(p, []byte("APP_MASTER_KEY=dotenv-key\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("APP_MASTER_KEY") })

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-env-file", p}).
		build()
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.App.MasterKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing master key", mutate: func(c *StructuredConfig) { c.App.MasterKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown salt method", mutate: func(c *StructuredConfig) { c.App.DefaultSaltMethod = "sha1" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown cipher method", mutate: func(c *StructuredConfig) { c.App.DefaultCipherMethod = "des" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero argon2 threads", mutate: func(c *StructuredConfig) { c.App.Argon2.Threads = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative ttl", mutate: func(c *StructuredConfig) { c.Storage.Cache.TTL = -time.Second }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "negative interval", mutate: func(c *StructuredConfig) { c.Workers.CacheSyncInterval = -1 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "backup without bucket", mutate: func(c *StructuredConfig) { c.Backup.Endpoint = "minio:9000" }, wantErr: ErrInvalidBackupConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_SERVER_URL": "http://remote:8080"})

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://remote:8080", cfg.Adapter.ServerURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}
