// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the kasa server.
//
// It is populated by merging defaults, an optional JSON or YAML file,
// environment variables and command-line flags, then validated once. The
// result is treated as immutable for the rest of the process lifetime.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env:       environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the master secret, default methods and key derivation
	// parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the durable store and cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Backup holds the S3-compatible object storage used for snapshots.
	// Backups are disabled while Endpoint is empty.
	Backup Backup `envPrefix:"BACKUP_"`

	// Adapter holds the settings the CLI uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// FilePath is an optional JSON or YAML configuration file.
	// Env: CONFIG, flags: -c / -config.
	FilePath string `env:"CONFIG"`

	// EnvFile is an optional dotenv file loaded before the environment is
	// read. Variables already present in the environment win.
	// Env: ENV_FILE
	EnvFile string `env:"ENV_FILE"`
}

// App holds application-level settings.
type App struct {
	// MasterKey is the secret every cipher key is derived from. It is moved
	// into a guarded enclave at startup and must never be logged.
	// Env: APP_MASTER_KEY
	MasterKey string `env:"MASTER_KEY" json:"-" yaml:"-"`

	// DefaultSaltMethod is used when a salt is created without a method.
	// Env: APP_DEFAULT_SALT_METHOD
	DefaultSaltMethod string `env:"DEFAULT_SALT_METHOD"`

	// DefaultCipherMethod is used when a cipher is created without a method.
	// Env: APP_DEFAULT_CIPHER_METHOD
	DefaultCipherMethod string `env:"DEFAULT_CIPHER_METHOD"`

	// Argon2 pins the argon2id cost parameters. Changing them makes keys of
	// existing argon2 salts irreproducible.
	Argon2 Argon2 `envPrefix:"ARGON2_"`

	// Version is reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Argon2 holds argon2id cost parameters.
type Argon2 struct {
	// Env: APP_ARGON2_TIME
	Time uint32 `env:"TIME"`
	// Env: APP_ARGON2_MEMORY_KIB
	MemoryKiB uint32 `env:"MEMORY_KIB"`
	// Env: APP_ARGON2_THREADS
	Threads uint8 `env:"THREADS"`
}

// Storage groups the durable store and cache settings.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds durable store connection settings.
type DB struct {
	// DSN selects the backend by scheme: postgres:// or postgresql:// use
	// PostgreSQL, sqlite://, file: or a plain path use SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits PostgreSQL connections. SQLite always uses one.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// ConnMaxLifetime recycles PostgreSQL connections.
	// Env: STORAGE_DB_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`

	// BusyTimeout is how long SQLite waits on a locked database.
	// Env: STORAGE_DB_BUSY_TIMEOUT
	BusyTimeout time.Duration `env:"BUSY_TIMEOUT"`
}

// Cache holds the cache store settings. An empty RedisURL selects the
// in-process cache.
type Cache struct {
	// Env: STORAGE_CACHE_REDIS_URL
	RedisURL string `env:"REDIS_URL"`

	// TTL of cache entries. Zero keeps entries until flushed.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`

	// Env: STORAGE_CACHE_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// Env: STORAGE_CACHE_RETRY_INTERVAL
	RetryInterval time.Duration `env:"RETRY_INTERVAL"`

	// Env: STORAGE_CACHE_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// OperationTimeout bounds every single cache call.
	// Env: STORAGE_CACHE_OPERATION_TIMEOUT
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`

	// ScanBatchSize is the SCAN COUNT used when clearing a namespace.
	// Env: STORAGE_CACHE_SCAN_BATCH_SIZE
	ScanBatchSize int `env:"SCAN_BATCH_SIZE"`
}

// Server holds the inbound HTTP settings.
type Server struct {
	// HTTPAddress in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request, including store calls.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// CacheSyncInterval is the period of the cache resync job.
	// Zero disables the job; the cache is still warmed at startup.
	// Env: WORKERS_CACHE_SYNC_INTERVAL
	CacheSyncInterval time.Duration `env:"CACHE_SYNC_INTERVAL"`
}

// Backup holds S3-compatible object storage settings.
type Backup struct {
	// Endpoint in "host:port" form, without scheme.
	// Env: BACKUP_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: BACKUP_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY" json:"-" yaml:"-"`
	// Env: BACKUP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY" json:"-" yaml:"-"`
	// Env: BACKUP_BUCKET
	Bucket string `env:"BUCKET"`
	// Env: BACKUP_PREFIX
	Prefix string `env:"PREFIX"`
	// Env: BACKUP_REGION
	Region string `env:"REGION"`
	// Env: BACKUP_USE_SSL
	UseSSL bool `env:"USE_SSL"`
}

// Enabled reports whether backups are configured.
func (b Backup) Enabled() bool {
	return b.Endpoint != "" && b.Bucket != ""
}

// Adapter holds the CLI's view of the server.
type Adapter struct {
	// ServerURL is the base URL of the kasa API.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of retries on transport errors and 503.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// GetStructuredConfig loads, merges and validates the server configuration.
// Priority, lowest first: defaults, config file, environment, flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(osArgs()).
		withFile().
		build()
}

// GetClientConfig loads the configuration used by the CLI. Flags are owned
// by the command tree, so only defaults, the dotenv file, the environment
// and the config file take part. Only the adapter group is validated.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFile().
		merge()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validateAdapter()
}
