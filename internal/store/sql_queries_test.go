// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kasa/migrations"
)

func TestQueries_PlaceholderPerDialect(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		want    string
	}{
		{name: "postgres uses dollar placeholders", dialect: migrations.Postgres, want: "SELECT id, name, ciphertext, method, salt_id, created_at, updated_at FROM ciphers WHERE id = $1"},
		{name: "sqlite uses question marks", dialect: migrations.SQLite, want: "SELECT id, name, ciphertext, method, salt_id, created_at, updated_at FROM ciphers WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := newQueries(tt.dialect).selectCipherByID(7)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{int64(7)}, args)
		})
	}
}

func TestQueries_SearchEscapesWildcards(t *testing.T) {
	query, args, err := newQueries(migrations.Postgres).searchCiphers("Mail_100%")
	require.NoError(t, err)
	assert.Contains(t, query, `LOWER(name) LIKE $1 ESCAPE '\'`)
	assert.Equal(t, []any{`%mail\_100\%%`}, args)
}
