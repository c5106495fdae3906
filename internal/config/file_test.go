// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseFile_JSON(t *testing.T) {
	p := writeConfigFile(t, "kasa.json", `{
		"app": {"default_cipher_method": "aes128", "argon2": {"time": 3}},
		"storage": {
			"db": {"dsn": "postgres://localhost/kasa", "busy_timeout": "2s"},
			"cache": {"redis_url": "redis://cache:6379/0", "ttl": 60000000000}
		},
		"server": {"http_address": "localhost:8081", "request_timeout": "45s"},
		"workers": {"cache_sync_interval": "5m"},
		"backup": {"endpoint": "minio:9000", "bucket": "kasa"}
	}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "aes128", cfg.App.DefaultCipherMethod)
	assert.Equal(t, uint32(3), cfg.App.Argon2.Time)
	assert.Equal(t, "postgres://localhost/kasa", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Storage.DB.BusyTimeout)
	assert.Equal(t, time.Minute, cfg.Storage.Cache.TTL)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.CacheSyncInterval)
	assert.Equal(t, "minio:9000", cfg.Backup.Endpoint)
}

func TestParseFile_YAML(t *testing.T) {
	p := writeConfigFile(t, "kasa.yaml", `
app:
  default_salt_method: argon2
  log_level: debug
storage:
  db:
    dsn: sqlite:///var/lib/kasa.db
  cache:
    retry_interval: 500ms
server:
  shutdown_timeout: 20s
adapter:
  server_url: http://kasa:8080
  retry_count: 5
`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "argon2", cfg.App.DefaultSaltMethod)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "sqlite:///var/lib/kasa.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 500*time.Millisecond, cfg.Storage.Cache.RetryInterval)
	assert.Equal(t, 20*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://kasa:8080", cfg.Adapter.ServerURL)
	assert.Equal(t, 5, cfg.Adapter.RetryCount)
}

func TestParseFile_SecretsAreIgnored(t *testing.T) {
	p := writeConfigFile(t, "kasa.json", `{"app": {"master_key": "leaked"}}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Empty(t, cfg.App.MasterKey)
}

func TestParseFile_Errors(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = parseFile(writeConfigFile(t, "kasa.json", `{"server": {"request_timeout": "soon"}}`))
	assert.Error(t, err)

	_, err = parseFile(writeConfigFile(t, "kasa.toml", `a = 1`))
	assert.ErrorIs(t, err, ErrUnsupportedConfigFormat)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
