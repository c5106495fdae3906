// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/MKhiriev/kasa/internal/cache"
	"github.com/MKhiriev/kasa/internal/crypto"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/store"
	"github.com/MKhiriev/kasa/models"
)

type saltService struct {
	salts   store.SaltRepository
	engine  *cache.Engine[models.Salt]
	deriver crypto.KeyDeriver

	// rand feeds generated salt values; nil means crypto/rand.
	rand io.Reader

	defaultMethod models.SaltMethod
	defaultCipher models.CipherMethod

	logger *logger.Logger
}

// NewSaltService builds the salt registry. engine must manage the salt
// namespace over the same repository.
func NewSaltService(salts store.SaltRepository, engine *cache.Engine[models.Salt], deriver crypto.KeyDeriver, defaults Defaults, logger *logger.Logger) SaltService {
	return &saltService{
		salts:         salts,
		engine:        engine,
		deriver:       deriver,
		rand:          defaults.Rand,
		defaultMethod: defaults.SaltMethod,
		defaultCipher: defaults.CipherMethod,
		logger:        logger,
	}
}

func (s *saltService) CreateSalt(ctx context.Context, req models.CreateSaltRequest) (models.Salt, error) {
	method := req.Method
	if method == "" {
		method = s.defaultMethod
	}
	if !method.Valid() {
		return models.Salt{}, fmt.Errorf("%w: salt method %q", crypto.ErrUnsupportedMethod, method)
	}

	value := req.Value
	if len(value) == 0 {
		generated, err := crypto.NewSaltValue(s.rand)
		if err != nil {
			s.logger.Err(err).Str("func", "saltService.CreateSalt").Msg("error generating salt value")
			return models.Salt{}, err
		}
		value = generated
	} else if err := crypto.ValidateSaltValue(method, value); err != nil {
		return models.Salt{}, invalidRequest(err)
	}

	salt, err := s.engine.Write(ctx, func(ctx context.Context) (models.Salt, error) {
		return s.salts.CreateSalt(ctx, models.Salt{Method: method, Value: value})
	})
	if err != nil {
		return models.Salt{}, err
	}

	logger.FromContext(ctx).Info().Int64("salt_id", salt.ID).Str("method", salt.Method.String()).Msg("salt created")
	return salt, nil
}

func (s *saltService) GetSalt(ctx context.Context, id int64) (models.Salt, error) {
	salt, err := s.engine.Read(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Salt{}, fmt.Errorf("%w: salt %d", store.ErrNotFound, id)
		}
		return models.Salt{}, err
	}
	return salt, nil
}

func (s *saltService) ListSalts(ctx context.Context) ([]models.Salt, error) {
	return s.salts.ListSalts(ctx)
}

func (s *saltService) DeleteSalt(ctx context.Context, id int64) error {
	if err := s.engine.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: salt %d", store.ErrNotFound, id)
		}
		return err
	}

	logger.FromContext(ctx).Info().Int64("salt_id", id).Msg("salt deleted")
	return nil
}

func (s *saltService) DeleteAllSalts(ctx context.Context) (int64, error) {
	deleted, err := s.salts.DeleteAllSalts(ctx)
	if err != nil {
		return 0, err
	}

	if _, err := s.engine.Flush(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "saltService.DeleteAllSalts").Msg("error flushing salt cache")
	}

	logger.FromContext(ctx).Info().Int64("deleted", deleted).Msg("all salts deleted")
	return deleted, nil
}

func (s *saltService) FirstSaltKey(ctx context.Context) (models.Salt, error) {
	salt, err := s.engine.Read(ctx, models.FirstSaltID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Salt{}, ErrNoFirstSalt
		}
		return models.Salt{}, err
	}
	return salt, nil
}

func (s *saltService) GenerateKey(ctx context.Context, req models.GenerateKeyRequest) (models.GeneratedKey, error) {
	cipherMethod := req.Cipher
	if cipherMethod == "" {
		cipherMethod = s.defaultCipher
	}
	if !cipherMethod.Valid() {
		return models.GeneratedKey{}, fmt.Errorf("%w: cipher method %q", crypto.ErrUnsupportedMethod, cipherMethod)
	}
	if req.Secret == "" {
		return models.GeneratedKey{}, fmt.Errorf("%w: secret is required", ErrInvalidRequest)
	}

	salt, err := s.CreateSalt(ctx, models.CreateSaltRequest{Method: req.Method})
	if err != nil {
		return models.GeneratedKey{}, err
	}

	secret := []byte(req.Secret)
	defer crypto.Wipe(secret)

	key, err := s.deriver.Derive(secret, salt, cipherMethod.KeySize())
	if err != nil {
		return models.GeneratedKey{}, err
	}
	defer crypto.Wipe(key)

	return models.GeneratedKey{
		SaltID:     salt.ID,
		Method:     salt.Method,
		Cipher:     cipherMethod,
		DerivedKey: hex.EncodeToString(key),
	}, nil
}

func (s *saltService) SupportedMethods() []models.SaltMethod {
	return slices.Clone(models.SaltMethods)
}
