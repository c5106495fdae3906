// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/kasa/models"
)

// Field names for field-level scoping.
const (
	FieldName      = "name"
	FieldPlaintext = "plaintext"
	FieldMethod    = "method"
	FieldSaltID    = "salt_id"
	FieldID        = "id"
	FieldSecret    = "secret"
	FieldValue     = "value"
	FieldCipher    = "cipher"
	FieldUpdates   = "updates"
)

const (
	// MaxNameLength bounds cipher names in bytes.
	MaxNameLength = 255

	// MaxPlaintextSize bounds a single secret.
	MaxPlaintextSize = 64 << 10
)

// RequestValidator implements [Validator] for the salt and cipher request
// models. Empty methods pass: the services substitute configured defaults.
type RequestValidator struct{}

// NewRequestValidator returns a RequestValidator as a [Validator].
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.CreateSaltRequest / *models.CreateSaltRequest
//   - models.GenerateKeyRequest / *models.GenerateKeyRequest
//   - models.CreateCipherRequest / *models.CreateCipherRequest
//   - models.UpdateCipherRequest / *models.UpdateCipherRequest
//   - string, validated as a cipher name
//   - int64, validated as a record ID
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateSaltRequest:
		return v.validateCreateSalt(value, fields...)
	case *models.CreateSaltRequest:
		return v.validateCreateSalt(*value, fields...)

	case models.GenerateKeyRequest:
		return v.validateGenerateKey(value, fields...)
	case *models.GenerateKeyRequest:
		return v.validateGenerateKey(*value, fields...)

	case models.CreateCipherRequest:
		return v.validateCreateCipher(value, fields...)
	case *models.CreateCipherRequest:
		return v.validateCreateCipher(*value, fields...)

	case models.UpdateCipherRequest:
		return v.validateUpdateCipher(value, fields...)
	case *models.UpdateCipherRequest:
		return v.validateUpdateCipher(*value, fields...)

	case string:
		return validateName(value)
	case int64:
		return validateID(value, ErrInvalidID)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCreateSalt(req models.CreateSaltRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMethod, FieldValue}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldMethod:
			errs = append(errs, validateSaltMethod(req.Method))
		case FieldValue:
			// empty means generate; content rules live with the deriver
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}
	return errors.Join(errs...)
}

func (v *RequestValidator) validateGenerateKey(req models.GenerateKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSecret, FieldMethod, FieldCipher}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldSecret:
			if req.Secret == "" {
				errs = append(errs, ErrEmptySecret)
			}
		case FieldMethod:
			errs = append(errs, validateSaltMethod(req.Method))
		case FieldCipher:
			errs = append(errs, validateCipherMethod(req.Cipher))
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}
	return errors.Join(errs...)
}

func (v *RequestValidator) validateCreateCipher(req models.CreateCipherRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPlaintext, FieldMethod, FieldSaltID}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldName:
			errs = append(errs, validateName(req.Name))
		case FieldPlaintext:
			errs = append(errs, validatePlaintext(req.Plaintext))
		case FieldMethod:
			errs = append(errs, validateCipherMethod(req.Method))
		case FieldSaltID:
			if req.SaltID != nil {
				errs = append(errs, validateID(*req.SaltID, ErrInvalidSaltID))
			}
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}
	return errors.Join(errs...)
}

func (v *RequestValidator) validateUpdateCipher(req models.UpdateCipherRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdates, FieldName, FieldPlaintext, FieldMethod}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldID:
			errs = append(errs, validateID(req.ID, ErrInvalidID))
		case FieldUpdates:
			if req.Name == nil && req.Plaintext == nil && req.Method == nil {
				errs = append(errs, ErrNoFieldsToUpdate)
			}
		case FieldName:
			if req.Name != nil {
				errs = append(errs, validateName(*req.Name))
			}
		case FieldPlaintext:
			if req.Plaintext != nil {
				errs = append(errs, validatePlaintext(*req.Plaintext))
			}
		case FieldMethod:
			if req.Method != nil {
				if *req.Method == "" {
					errs = append(errs, ErrUnsupportedCipherMethod)
				} else {
					errs = append(errs, validateCipherMethod(*req.Method))
				}
			}
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}
	return errors.Join(errs...)
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %d bytes, max %d", ErrNameTooLong, len(name), MaxNameLength)
	}
	if !utf8.ValidString(name) {
		return ErrInvalidName
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return ErrInvalidName
		}
	}
	return nil
}

func validatePlaintext(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPlaintext
	}
	if len(plaintext) > MaxPlaintextSize {
		return fmt.Errorf("%w: %d bytes, max %d", ErrPlaintextTooLarge, len(plaintext), MaxPlaintextSize)
	}
	if !utf8.ValidString(plaintext) {
		return ErrInvalidPlaintext
	}
	return nil
}

func validateID(id int64, err error) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", err, id)
	}
	return nil
}

func validateSaltMethod(method models.SaltMethod) error {
	if method != "" && !method.Valid() {
		return fmt.Errorf("%w %q", ErrUnsupportedSaltMethod, method)
	}
	return nil
}

func validateCipherMethod(method models.CipherMethod) error {
	if method != "" && !method.Valid() {
		return fmt.Errorf("%w %q", ErrUnsupportedCipherMethod, method)
	}
	return nil
}
