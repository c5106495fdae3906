// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kasa/models"
)

type cipherRepository struct {
	*DB
}

// NewCipherRepository returns the SQL implementation of [CipherRepository].
func NewCipherRepository(db *DB) CipherRepository {
	return &cipherRepository{DB: db}
}

func (r *cipherRepository) CreateCipher(ctx context.Context, cipher models.Cipher) (models.Cipher, error) {
	query, args, err := r.queries.insertCipher(cipher)
	if err != nil {
		r.logger.Err(err).Str("func", "cipherRepository.CreateCipher").Msg("error building insert query")
		return models.Cipher{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.retry(ctx, func(ctx context.Context) error {
		var createdAt, updatedAt sqlTime
		if err := r.QueryRowContext(ctx, query, args...).Scan(&cipher.ID, &createdAt, &updatedAt); err != nil {
			return err
		}
		cipher.CreatedAt = createdAt.Time
		cipher.UpdatedAt = updatedAt.Time
		return nil
	})
	if err != nil {
		if r.errorClassificator.IsForeignKeyViolation(err) {
			return models.Cipher{}, fmt.Errorf("%w: salt %d", ErrNotFound, cipher.SaltID)
		}
		r.logger.Err(err).Str("func", "cipherRepository.CreateCipher").Msg("error inserting cipher")
		return models.Cipher{}, storeError(ErrExecutingQuery, err)
	}

	return cipher, nil
}

func (r *cipherRepository) GetCipher(ctx context.Context, id int64) (models.Cipher, error) {
	query, args, err := r.queries.selectCipherByID(id)
	if err != nil {
		return models.Cipher{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cipher models.Cipher
	err = r.retry(ctx, func(ctx context.Context) error {
		cipher, err = scanCipher(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		return models.Cipher{}, storeError(ErrScanningRow, err)
	}

	return cipher, nil
}

func (r *cipherRepository) GetCiphersByName(ctx context.Context, name string) ([]models.Cipher, error) {
	query, args, err := r.queries.selectCiphersByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "cipherRepository.GetCiphersByName", query, args)
}

func (r *cipherRepository) SearchCiphers(ctx context.Context, pattern string) ([]models.Cipher, error) {
	query, args, err := r.queries.searchCiphers(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "cipherRepository.SearchCiphers", query, args)
}

func (r *cipherRepository) ListCiphers(ctx context.Context) ([]models.Cipher, error) {
	query, args, err := r.queries.selectCiphers()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "cipherRepository.ListCiphers", query, args)
}

func (r *cipherRepository) UpdateCipher(ctx context.Context, cipher models.Cipher) (models.Cipher, error) {
	query, args, err := r.queries.updateCipher(cipher)
	if err != nil {
		return models.Cipher{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.retry(ctx, func(ctx context.Context) error {
		var createdAt, updatedAt sqlTime
		if err := r.QueryRowContext(ctx, query, args...).Scan(&cipher.SaltID, &createdAt, &updatedAt); err != nil {
			return err
		}
		cipher.CreatedAt = createdAt.Time
		cipher.UpdatedAt = updatedAt.Time
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "cipherRepository.UpdateCipher").Int64("cipher_id", cipher.ID).Msg("error updating cipher")
		return models.Cipher{}, storeError(ErrExecutingQuery, err)
	}

	return cipher, nil
}

func (r *cipherRepository) DeleteCipher(ctx context.Context, id int64) error {
	query, args, err := r.queries.deleteCipher(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.retry(ctx, func(ctx context.Context) error {
		result, err := r.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		r.logger.Err(err).Str("func", "cipherRepository.DeleteCipher").Int64("cipher_id", id).Msg("error deleting cipher")
		return storeError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *cipherRepository) list(ctx context.Context, fn, query string, args []any) ([]models.Cipher, error) {
	var ciphers []models.Cipher
	err := r.retry(ctx, func(ctx context.Context) error {
		rows, err := r.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		ciphers = make([]models.Cipher, 0)
		for rows.Next() {
			cipher, err := scanCipher(rows)
			if err != nil {
				return err
			}
			ciphers = append(ciphers, cipher)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Err(err).Str("func", fn).Msg("error querying ciphers")
		return nil, storeError(ErrScanningRows, err)
	}

	return ciphers, nil
}
