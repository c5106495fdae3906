// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/kasa/models"
)

type saltRepository struct {
	*DB
}

// NewSaltRepository returns the SQL implementation of [SaltRepository].
func NewSaltRepository(db *DB) SaltRepository {
	return &saltRepository{DB: db}
}

func (r *saltRepository) CreateSalt(ctx context.Context, salt models.Salt) (models.Salt, error) {
	query, args, err := r.queries.insertSalt(salt)
	if err != nil {
		r.logger.Err(err).Str("func", "saltRepository.CreateSalt").Msg("error building insert query")
		return models.Salt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.retry(ctx, func(ctx context.Context) error {
		var createdAt sqlTime
		if err := r.QueryRowContext(ctx, query, args...).Scan(&salt.ID, &createdAt); err != nil {
			return err
		}
		salt.CreatedAt = createdAt.Time
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "saltRepository.CreateSalt").Msg("error inserting salt")
		return models.Salt{}, storeError(ErrExecutingQuery, err)
	}

	return salt, nil
}

func (r *saltRepository) GetSalt(ctx context.Context, id int64) (models.Salt, error) {
	query, args, err := r.queries.selectSaltByID(id)
	if err != nil {
		return models.Salt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var salt models.Salt
	err = r.retry(ctx, func(ctx context.Context) error {
		salt, err = scanSalt(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		return models.Salt{}, storeError(ErrScanningRow, err)
	}

	return salt, nil
}

func (r *saltRepository) ListSalts(ctx context.Context) ([]models.Salt, error) {
	query, args, err := r.queries.selectSalts()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var salts []models.Salt
	err = r.retry(ctx, func(ctx context.Context) error {
		rows, err := r.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		salts = make([]models.Salt, 0)
		for rows.Next() {
			salt, err := scanSalt(rows)
			if err != nil {
				return err
			}
			salts = append(salts, salt)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Err(err).Str("func", "saltRepository.ListSalts").Msg("error listing salts")
		return nil, storeError(ErrScanningRows, err)
	}

	return salts, nil
}

func (r *saltRepository) DeleteSalt(ctx context.Context, id int64) error {
	return r.retry(ctx, func(ctx context.Context) error {
		tx, err := r.BeginTx(ctx, nil)
		if err != nil {
			r.logger.Err(err).Str("func", "saltRepository.DeleteSalt").Msg("error beginning transaction")
			return storeError(ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if err := r.ensureUnreferenced(ctx, tx, &id); err != nil {
			return err
		}

		query, args, err := r.queries.deleteSalt(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			if r.errorClassificator.IsForeignKeyViolation(err) {
				return fmt.Errorf("%w: salt %d", ErrSaltInUse, id)
			}
			r.logger.Err(err).Str("func", "saltRepository.DeleteSalt").Msg("error deleting salt")
			return storeError(ErrExecutingStatement, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return storeError(ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrNotFound
		}

		if err := tx.Commit(); err != nil {
			r.logger.Err(err).Str("func", "saltRepository.DeleteSalt").Msg("error committing transaction")
			return storeError(ErrCommitingTransaction, err)
		}
		return nil
	})
}

func (r *saltRepository) DeleteAllSalts(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.retry(ctx, func(ctx context.Context) error {
		tx, err := r.BeginTx(ctx, nil)
		if err != nil {
			r.logger.Err(err).Str("func", "saltRepository.DeleteAllSalts").Msg("error beginning transaction")
			return storeError(ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if err := r.ensureUnreferenced(ctx, tx, nil); err != nil {
			return err
		}

		query, args, err := r.queries.deleteAllSalts()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			if r.errorClassificator.IsForeignKeyViolation(err) {
				return ErrSaltInUse
			}
			return storeError(ErrExecutingStatement, err)
		}
		if deleted, err = result.RowsAffected(); err != nil {
			return storeError(ErrExecutingStatement, err)
		}

		if _, err := tx.ExecContext(ctx, r.queries.resetSaltSequence()); err != nil {
			r.logger.Err(err).Str("func", "saltRepository.DeleteAllSalts").Msg("error resetting salt sequence")
			return storeError(ErrExecutingStatement, err)
		}

		if err := tx.Commit(); err != nil {
			return storeError(ErrCommitingTransaction, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

// ensureUnreferenced fails with ErrSaltInUse when ciphers reference saltID,
// or any cipher exists when saltID is nil.
func (r *saltRepository) ensureUnreferenced(ctx context.Context, tx *sql.Tx, saltID *int64) error {
	query, args, err := r.queries.countCiphers(saltID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var refs int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&refs); err != nil {
		return storeError(ErrScanningRow, err)
	}
	if refs == 0 {
		return nil
	}

	if saltID != nil {
		return fmt.Errorf("%w: salt %d is used by %d cipher(s)", ErrSaltInUse, *saltID, refs)
	}
	return fmt.Errorf("%w: %d cipher(s) exist", ErrSaltInUse, refs)
}
