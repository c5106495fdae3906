// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/kasa/internal/config"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/migrations"
)

const (
	retryAttempts = 3
	retryBackoff  = 50 * time.Millisecond
)

// DB is the durable store connection shared by the repositories.
type DB struct {
	*sql.DB
	dialect            string
	queries            queries
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Connect opens the backend selected by the DSN scheme and applies the
// schema migrations.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch dialect {
	case migrations.Postgres:
		db, err = NewConnectPostgres(ctx, dsn, cfg, log)
	default:
		db, err = NewConnectSQLite(ctx, dsn, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "store.Connect").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewConnectPostgres opens a PostgreSQL connection through pgx.
func NewConnectPostgres(ctx context.Context, dsn string, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, migrations.Postgres, NewPostgresErrorClassifier(), log), nil
}

// NewConnectSQLite opens a SQLite database with foreign keys enforced and a
// single connection, so writes are serialized.
func NewConnectSQLite(ctx context.Context, path string, cfg config.DB, log *logger.Logger) (*DB, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
				return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
			}
		}
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(path, cfg.BusyTimeout))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return newDB(conn, migrations.SQLite, NewSQLiteErrorClassifier(), log), nil
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		queries:            newQueries(dialect),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Dialect returns "postgres" or "sqlite".
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// Ping checks the connection. Failures are wrapped with ErrStoreUnavailable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// retry runs op again while it fails with a retryable error.
func (db *DB) retry(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		err = op(ctx)
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, ctx.Err())
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}

// storeError maps a driver error to the package's error kinds.
func storeError(stage, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, stage, err)
}

// ParseDSN picks the dialect from the DSN and returns the driver-level DSN.
//
//	postgres://..., postgresql://...  -> postgres, unchanged
//	sqlite:///abs/path, sqlite://rel  -> sqlite, the path
//	sqlite::memory:, :memory:         -> sqlite, ":memory:"
//	file:..., *.db, *.sqlite          -> sqlite, the path
func ParseDSN(dsn string) (dialect, driverDSN string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return migrations.Postgres, dsn, nil
	case dsn == ":memory:", dsn == "sqlite::memory:", dsn == "sqlite://:memory:":
		return migrations.SQLite, ":memory:", nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
		}
		return migrations.SQLite, path, nil
	case strings.HasPrefix(dsn, "file:"):
		return migrations.SQLite, strings.TrimPrefix(dsn, "file:"), nil
	case strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"), strings.HasSuffix(dsn, ".sqlite3"):
		return migrations.SQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
}

func sqliteDSN(path string, busyTimeout time.Duration) string {
	if busyTimeout <= 0 {
		busyTimeout = 5 * time.Second
	}

	params := url.Values{}
	params.Set("_foreign_keys", "1")
	params.Set("_busy_timeout", strconv.FormatInt(busyTimeout.Milliseconds(), 10))

	if path == ":memory:" {
		return "file::memory:?" + params.Encode()
	}
	params.Set("_journal_mode", "WAL")

	// strip caller-supplied query parameters, ours are authoritative
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return "file:" + path + "?" + params.Encode()
}

// redactDSN drops credentials before a DSN reaches an error message.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	u.User = url.User("***")
	return u.String()
}
