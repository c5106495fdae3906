// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MKhiriev/kasa/internal/config"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/models"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "kasa",
				"POSTGRES_PASSWORD": "kasa",
				"POSTGRES_DB":       "kasa",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://kasa:kasa@%s:%s/kasa?sslmode=disable", host, port.Port())
}

func TestRepositories_Postgres(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	db, err := Connect(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	salts := NewSaltRepository(db)
	ciphers := NewCipherRepository(db)

	first, err := salts.CreateSalt(ctx, models.Salt{Method: models.SaltSHA256, Value: []byte("first-salt-value")})
	require.NoError(t, err)
	assert.Equal(t, models.FirstSaltID, first.ID)

	_, err = ciphers.CreateCipher(ctx, models.Cipher{Name: "orphan", Ciphertext: []byte("x"), Method: models.CipherAES128, SaltID: 42})
	require.ErrorIs(t, err, ErrNotFound)

	token, err := ciphers.CreateCipher(ctx, models.Cipher{Name: "github_token", Ciphertext: []byte("blob-1"), Method: models.CipherAES256, SaltID: first.ID})
	require.NoError(t, err)
	_, err = ciphers.CreateCipher(ctx, models.Cipher{Name: "Mail_100%", Ciphertext: []byte("blob-2"), Method: models.CipherChaCha20, SaltID: first.ID})
	require.NoError(t, err)

	found, err := ciphers.SearchCiphers(ctx, "GITHUB")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, token.ID, found[0].ID)

	literal, err := ciphers.SearchCiphers(ctx, "100%")
	require.NoError(t, err)
	assert.Len(t, literal, 1)

	require.ErrorIs(t, salts.DeleteSalt(ctx, first.ID), ErrSaltInUse)

	all, err := ciphers.ListCiphers(ctx)
	require.NoError(t, err)
	for _, c := range all {
		require.NoError(t, ciphers.DeleteCipher(ctx, c.ID))
	}

	deleted, err := salts.DeleteAllSalts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	again, err := salts.CreateSalt(ctx, models.Salt{Method: models.SaltMD5, Value: []byte("fresh")})
	require.NoError(t, err)
	assert.Equal(t, models.FirstSaltID, again.ID)
}
