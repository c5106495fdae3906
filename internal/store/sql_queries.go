// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/kasa/migrations"
	"github.com/MKhiriev/kasa/models"
)

const (
	saltColumns   = "id, method, value, created_at"
	cipherColumns = "id, name, ciphertext, method, salt_id, created_at, updated_at"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// queries builds the dialect-specific SQL used by the repositories.
type queries struct {
	dialect string
	sb      sq.StatementBuilderType
}

func newQueries(dialect string) queries {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.Postgres {
		placeholder = sq.Dollar
	}
	return queries{
		dialect: dialect,
		sb:      sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

func (q queries) insertSalt(salt models.Salt) (string, []any, error) {
	return q.sb.Insert("salts").
		Columns("method", "value").
		Values(string(salt.Method), salt.Value).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func (q queries) selectSaltByID(id int64) (string, []any, error) {
	return q.sb.Select(saltColumns).
		From("salts").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q queries) selectSalts() (string, []any, error) {
	return q.sb.Select(saltColumns).
		From("salts").
		OrderBy("id").
		ToSql()
}

func (q queries) deleteSalt(id int64) (string, []any, error) {
	return q.sb.Delete("salts").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q queries) deleteAllSalts() (string, []any, error) {
	return q.sb.Delete("salts").ToSql()
}

// resetSaltSequence makes the next inserted salt receive id 1 again.
func (q queries) resetSaltSequence() string {
	if q.dialect == migrations.Postgres {
		return "SELECT setval(pg_get_serial_sequence('salts', 'id'), 1, false)"
	}
	return "DELETE FROM sqlite_sequence WHERE name = 'salts'"
}

func (q queries) countCiphers(saltID *int64) (string, []any, error) {
	builder := q.sb.Select("COUNT(*)").From("ciphers")
	if saltID != nil {
		builder = builder.Where(sq.Eq{"salt_id": *saltID})
	}
	return builder.ToSql()
}

func (q queries) insertCipher(cipher models.Cipher) (string, []any, error) {
	return q.sb.Insert("ciphers").
		Columns("name", "ciphertext", "method", "salt_id").
		Values(cipher.Name, cipher.Ciphertext, string(cipher.Method), cipher.SaltID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func (q queries) selectCipherByID(id int64) (string, []any, error) {
	return q.sb.Select(cipherColumns).
		From("ciphers").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q queries) selectCiphersByName(name string) (string, []any, error) {
	return q.sb.Select(cipherColumns).
		From("ciphers").
		Where(sq.Eq{"name": name}).
		OrderBy("id").
		ToSql()
}

// searchCiphers matches names containing pattern, case-insensitively, with
// LIKE wildcards in pattern taken literally.
func (q queries) searchCiphers(pattern string) (string, []any, error) {
	like := "%" + likeEscaper.Replace(strings.ToLower(pattern)) + "%"
	return q.sb.Select(cipherColumns).
		From("ciphers").
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, like).
		OrderBy("id").
		ToSql()
}

func (q queries) selectCiphers() (string, []any, error) {
	return q.sb.Select(cipherColumns).
		From("ciphers").
		OrderBy("id").
		ToSql()
}

func (q queries) updateCipher(cipher models.Cipher) (string, []any, error) {
	return q.sb.Update("ciphers").
		Set("name", cipher.Name).
		Set("ciphertext", cipher.Ciphertext).
		Set("method", string(cipher.Method)).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": cipher.ID}).
		Suffix("RETURNING salt_id, created_at, updated_at").
		ToSql()
}

func (q queries) deleteCipher(id int64) (string, []any, error) {
	return q.sb.Delete("ciphers").
		Where(sq.Eq{"id": id}).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSalt(row rowScanner) (models.Salt, error) {
	var (
		salt      models.Salt
		method    string
		createdAt sqlTime
	)
	if err := row.Scan(&salt.ID, &method, &salt.Value, &createdAt); err != nil {
		return models.Salt{}, err
	}
	salt.Method = models.SaltMethod(method)
	salt.CreatedAt = createdAt.Time
	return salt, nil
}

func scanCipher(row rowScanner) (models.Cipher, error) {
	var (
		cipher    models.Cipher
		method    string
		createdAt sqlTime
		updatedAt sqlTime
	)
	err := row.Scan(&cipher.ID, &cipher.Name, &cipher.Ciphertext, &method, &cipher.SaltID, &createdAt, &updatedAt)
	if err != nil {
		return models.Cipher{}, err
	}
	cipher.Method = models.CipherMethod(method)
	cipher.CreatedAt = createdAt.Time
	cipher.UpdatedAt = updatedAt.Time
	return cipher, nil
}
