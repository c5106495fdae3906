// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/MKhiriev/kasa/internal/cache"
	"github.com/MKhiriev/kasa/internal/crypto"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/store"
	"github.com/MKhiriev/kasa/models"
)

type cipherService struct {
	ciphers store.CipherRepository
	engine  *cache.Engine[models.Cipher]
	salts   SaltService
	keys    crypto.KeySource
	crypter crypto.CipherEngine

	defaultMethod models.CipherMethod

	logger *logger.Logger
}

// NewCipherService builds the cipher registry. Salts are resolved through
// salts so key derivation reads them cache-aside.
func NewCipherService(
	ciphers store.CipherRepository,
	engine *cache.Engine[models.Cipher],
	salts SaltService,
	keys crypto.KeySource,
	crypter crypto.CipherEngine,
	defaults Defaults,
	logger *logger.Logger,
) CipherService {
	return &cipherService{
		ciphers:       ciphers,
		engine:        engine,
		salts:         salts,
		keys:          keys,
		crypter:       crypter,
		defaultMethod: defaults.CipherMethod,
		logger:        logger,
	}
}

func (s *cipherService) CreateCipher(ctx context.Context, req models.CreateCipherRequest) (models.CreateCipherResult, error) {
	method := req.Method
	if method == "" {
		method = s.defaultMethod
	}
	if !method.Valid() {
		return models.CreateCipherResult{}, fmt.Errorf("%w: cipher method %q", crypto.ErrUnsupportedMethod, method)
	}

	salt, err := s.resolveSalt(ctx, req.SaltID)
	if err != nil {
		return models.CreateCipherResult{}, err
	}

	plaintext := []byte(req.Plaintext)
	defer crypto.Wipe(plaintext)

	blob, err := s.seal(salt, method, plaintext)
	if err != nil {
		s.logger.Err(err).Str("func", "cipherService.CreateCipher").Msg("error encrypting cipher")
		return models.CreateCipherResult{}, err
	}

	record, err := s.engine.Write(ctx, func(ctx context.Context) (models.Cipher, error) {
		return s.ciphers.CreateCipher(ctx, models.Cipher{
			Name:       req.Name,
			Ciphertext: blob,
			Method:     method,
			SaltID:     salt.ID,
		})
	})
	if err != nil {
		return models.CreateCipherResult{}, err
	}

	logger.FromContext(ctx).Info().
		Int64("cipher_id", record.ID).
		Str("method", record.Method.String()).
		Int64("salt_id", salt.ID).
		Msg("cipher created")

	return models.CreateCipherResult{
		CipherID:   record.ID,
		Name:       record.Name,
		Method:     record.Method,
		SaltIDUsed: salt.ID,
	}, nil
}

func (s *cipherService) DecryptByName(ctx context.Context, name string) (models.DecryptResult, error) {
	matches, err := s.ciphers.GetCiphersByName(ctx, name)
	if err != nil {
		return models.DecryptResult{}, err
	}

	switch len(matches) {
	case 0:
		return models.DecryptResult{}, fmt.Errorf("%w: no cipher named %q", store.ErrNotFound, name)
	case 1:
		return s.decrypt(ctx, matches[0])
	default:
		return models.DecryptResult{
			MatchesFound: len(matches),
			Suggestions:  models.Suggestions(matches),
		}, nil
	}
}

func (s *cipherService) DecryptByID(ctx context.Context, id int64) (models.DecryptResult, error) {
	record, err := s.read(ctx, id)
	if err != nil {
		return models.DecryptResult{}, err
	}
	return s.decrypt(ctx, record)
}

func (s *cipherService) GetCipher(ctx context.Context, id int64) (models.CipherInfo, error) {
	record, err := s.read(ctx, id)
	if err != nil {
		return models.CipherInfo{}, err
	}
	return record.Info(), nil
}

func (s *cipherService) ListCiphers(ctx context.Context) ([]models.CipherInfo, error) {
	records, err := s.ciphers.ListCiphers(ctx)
	if err != nil {
		return nil, err
	}
	return infos(records), nil
}

func (s *cipherService) SearchCiphers(ctx context.Context, pattern string) ([]models.CipherInfo, error) {
	if pattern == "" {
		return s.ListCiphers(ctx)
	}

	records, err := s.ciphers.SearchCiphers(ctx, pattern)
	if err != nil {
		return nil, err
	}
	return infos(records), nil
}

func (s *cipherService) UpdateCipher(ctx context.Context, req models.UpdateCipherRequest) (models.CipherInfo, error) {
	current, err := s.ciphers.GetCipher(ctx, req.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.CipherInfo{}, fmt.Errorf("%w: cipher %d", store.ErrNotFound, req.ID)
		}
		return models.CipherInfo{}, err
	}

	updated := current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Method != nil {
		updated.Method = *req.Method
		if !updated.Method.Valid() {
			return models.CipherInfo{}, fmt.Errorf("%w: cipher method %q", crypto.ErrUnsupportedMethod, updated.Method)
		}
	}

	if req.Plaintext != nil || updated.Method != current.Method {
		blob, err := s.reseal(ctx, current, updated.Method, req.Plaintext)
		if err != nil {
			return models.CipherInfo{}, err
		}
		updated.Ciphertext = blob
	}

	record, err := s.engine.Write(ctx, func(ctx context.Context) (models.Cipher, error) {
		return s.ciphers.UpdateCipher(ctx, updated)
	})
	if err != nil {
		return models.CipherInfo{}, err
	}

	logger.FromContext(ctx).Info().Int64("cipher_id", record.ID).Msg("cipher updated")
	return record.Info(), nil
}

func (s *cipherService) DeleteCipher(ctx context.Context, id int64) (models.DeleteCipherResult, error) {
	record, err := s.ciphers.GetCipher(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.engine.Invalidate(ctx, id)
			return models.DeleteCipherResult{}, fmt.Errorf("%w: cipher %d", store.ErrNotFound, id)
		}
		return models.DeleteCipherResult{}, err
	}
	return s.delete(ctx, record)
}

func (s *cipherService) DeleteCipherByName(ctx context.Context, name string) (models.DeleteCipherResult, error) {
	matches, err := s.ciphers.GetCiphersByName(ctx, name)
	if err != nil {
		return models.DeleteCipherResult{}, err
	}

	switch len(matches) {
	case 0:
		return models.DeleteCipherResult{}, fmt.Errorf("%w: no cipher named %q", store.ErrNotFound, name)
	case 1:
		return s.delete(ctx, matches[0])
	default:
		return models.DeleteCipherResult{}, &AmbiguousNameError{Name: name, Suggestions: models.Suggestions(matches)}
	}
}

func (s *cipherService) SupportedMethods() []models.CipherMethod {
	return slices.Clone(models.CipherMethods)
}

func (s *cipherService) delete(ctx context.Context, record models.Cipher) (models.DeleteCipherResult, error) {
	if err := s.engine.Delete(ctx, record.ID); err != nil {
		return models.DeleteCipherResult{}, err
	}

	logger.FromContext(ctx).Info().Int64("cipher_id", record.ID).Msg("cipher deleted")
	return models.DeleteCipherResult{ID: record.ID, Name: record.Name, Method: record.Method}, nil
}

func (s *cipherService) read(ctx context.Context, id int64) (models.Cipher, error) {
	record, err := s.engine.Read(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Cipher{}, fmt.Errorf("%w: cipher %d", store.ErrNotFound, id)
		}
		return models.Cipher{}, err
	}
	return record, nil
}

// resolveSalt returns the requested salt, or the first salt when saltID is
// nil.
func (s *cipherService) resolveSalt(ctx context.Context, saltID *int64) (models.Salt, error) {
	if saltID == nil {
		return s.salts.FirstSaltKey(ctx)
	}
	return s.salts.GetSalt(ctx, *saltID)
}

func (s *cipherService) seal(salt models.Salt, method models.CipherMethod, plaintext []byte) ([]byte, error) {
	key, err := s.keys.DeriveKey(salt, method.KeySize())
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	return s.crypter.Encrypt(method, plaintext, key)
}

func (s *cipherService) open(ctx context.Context, record models.Cipher) (string, error) {
	if !record.Method.Valid() {
		return "", fmt.Errorf("%w: cipher %d uses %q", crypto.ErrUnsupportedMethod, record.ID, record.Method)
	}

	salt, err := s.salts.GetSalt(ctx, record.SaltID)
	if err != nil {
		return "", err
	}

	key, err := s.keys.DeriveKey(salt, record.Method.KeySize())
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(key)

	plaintext, err := s.crypter.Decrypt(record.Method, record.Ciphertext, key)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(plaintext)

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid text", crypto.ErrDecryptionFailed)
	}
	return string(plaintext), nil
}

// reseal encrypts either the new plaintext or the current one under method,
// keeping the record's salt.
func (s *cipherService) reseal(ctx context.Context, current models.Cipher, method models.CipherMethod, newPlaintext *string) ([]byte, error) {
	var plaintext []byte
	if newPlaintext != nil {
		plaintext = []byte(*newPlaintext)
	} else {
		text, err := s.open(ctx, current)
		if err != nil {
			return nil, err
		}
		plaintext = []byte(text)
	}
	defer crypto.Wipe(plaintext)

	salt, err := s.salts.GetSalt(ctx, current.SaltID)
	if err != nil {
		return nil, err
	}
	return s.seal(salt, method, plaintext)
}

func (s *cipherService) decrypt(ctx context.Context, record models.Cipher) (models.DecryptResult, error) {
	text, err := s.open(ctx, record)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("cipher_id", record.ID).Msg("error decrypting cipher")
		return models.DecryptResult{}, err
	}

	return models.DecryptResult{
		DecryptedText: &text,
		CipherID:      record.ID,
		Name:          record.Name,
		Method:        record.Method,
		MatchesFound:  1,
	}, nil
}

func infos(records []models.Cipher) []models.CipherInfo {
	out := make([]models.CipherInfo, 0, len(records))
	for _, record := range records {
		out = append(out, record.Info())
	}
	return out
}
