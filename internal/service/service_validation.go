// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/kasa/internal/validators"
	"github.com/MKhiriev/kasa/models"
)

// SaltValidationService validates salt requests before delegating.
type SaltValidationService struct {
	inner     SaltService
	validator validators.Validator
}

func NewSaltValidationService() SaltServiceWrapper {
	return &SaltValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *SaltValidationService) Wrap(inner SaltService) SaltService {
	v.inner = inner
	return v
}

func (v *SaltValidationService) CreateSalt(ctx context.Context, req models.CreateSaltRequest) (models.Salt, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Salt{}, invalidRequest(err)
	}
	return v.inner.CreateSalt(ctx, req)
}

func (v *SaltValidationService) GetSalt(ctx context.Context, id int64) (models.Salt, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Salt{}, invalidRequest(err)
	}
	return v.inner.GetSalt(ctx, id)
}

func (v *SaltValidationService) ListSalts(ctx context.Context) ([]models.Salt, error) {
	return v.inner.ListSalts(ctx)
}

func (v *SaltValidationService) DeleteSalt(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return invalidRequest(err)
	}
	return v.inner.DeleteSalt(ctx, id)
}

func (v *SaltValidationService) DeleteAllSalts(ctx context.Context) (int64, error) {
	return v.inner.DeleteAllSalts(ctx)
}

func (v *SaltValidationService) FirstSaltKey(ctx context.Context) (models.Salt, error) {
	return v.inner.FirstSaltKey(ctx)
}

func (v *SaltValidationService) GenerateKey(ctx context.Context, req models.GenerateKeyRequest) (models.GeneratedKey, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.GeneratedKey{}, invalidRequest(err)
	}
	return v.inner.GenerateKey(ctx, req)
}

func (v *SaltValidationService) SupportedMethods() []models.SaltMethod {
	return v.inner.SupportedMethods()
}

// CipherValidationService validates cipher requests before delegating.
type CipherValidationService struct {
	inner     CipherService
	validator validators.Validator
}

func NewCipherValidationService() CipherServiceWrapper {
	return &CipherValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *CipherValidationService) Wrap(inner CipherService) CipherService {
	v.inner = inner
	return v
}

func (v *CipherValidationService) CreateCipher(ctx context.Context, req models.CreateCipherRequest) (models.CreateCipherResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.CreateCipherResult{}, invalidRequest(err)
	}
	return v.inner.CreateCipher(ctx, req)
}

func (v *CipherValidationService) DecryptByName(ctx context.Context, name string) (models.DecryptResult, error) {
	if err := v.validator.Validate(ctx, name); err != nil {
		return models.DecryptResult{}, invalidRequest(err)
	}
	return v.inner.DecryptByName(ctx, name)
}

func (v *CipherValidationService) DecryptByID(ctx context.Context, id int64) (models.DecryptResult, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.DecryptResult{}, invalidRequest(err)
	}
	return v.inner.DecryptByID(ctx, id)
}

func (v *CipherValidationService) GetCipher(ctx context.Context, id int64) (models.CipherInfo, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.CipherInfo{}, invalidRequest(err)
	}
	return v.inner.GetCipher(ctx, id)
}

func (v *CipherValidationService) ListCiphers(ctx context.Context) ([]models.CipherInfo, error) {
	return v.inner.ListCiphers(ctx)
}

func (v *CipherValidationService) SearchCiphers(ctx context.Context, pattern string) ([]models.CipherInfo, error) {
	return v.inner.SearchCiphers(ctx, pattern)
}

func (v *CipherValidationService) UpdateCipher(ctx context.Context, req models.UpdateCipherRequest) (models.CipherInfo, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.CipherInfo{}, invalidRequest(err)
	}
	return v.inner.UpdateCipher(ctx, req)
}

func (v *CipherValidationService) DeleteCipher(ctx context.Context, id int64) (models.DeleteCipherResult, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.DeleteCipherResult{}, invalidRequest(err)
	}
	return v.inner.DeleteCipher(ctx, id)
}

func (v *CipherValidationService) DeleteCipherByName(ctx context.Context, name string) (models.DeleteCipherResult, error) {
	if err := v.validator.Validate(ctx, name); err != nil {
		return models.DeleteCipherResult{}, invalidRequest(err)
	}
	return v.inner.DeleteCipherByName(ctx, name)
}

func (v *CipherValidationService) SupportedMethods() []models.CipherMethod {
	return v.inner.SupportedMethods()
}
