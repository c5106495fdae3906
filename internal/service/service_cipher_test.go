// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/kasa/internal/crypto"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/mock"
	"github.com/MKhiriev/kasa/internal/store"
	"github.com/MKhiriev/kasa/models"
)

var testSalt = models.Salt{ID: 1, Method: models.SaltSHA256, Value: []byte("first-salt-value")}

type cipherFixture struct {
	repo    *mock.MockCipherRepository
	salts   *mock.MockSaltService
	keys    *mock.MockKeySource
	crypter crypto.CipherEngine
	cache   *store.MemoryCache
	svc     CipherService
}

func newCipherFixture(t *testing.T, crypter crypto.CipherEngine) cipherFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := cipherFixture{
		repo:    mock.NewMockCipherRepository(ctrl),
		salts:   mock.NewMockSaltService(ctrl),
		keys:    mock.NewMockKeySource(ctrl),
		crypter: crypter,
		cache:   store.NewMemoryCache(0),
	}
	if f.crypter == nil {
		f.crypter = crypto.NewEngine()
	}

	engine := NewCipherEngine(f.repo, f.cache, logger.Nop())
	f.svc = NewCipherService(f.repo, engine, f.salts, f.keys, f.crypter, Defaults{CipherMethod: models.CipherAES256}, logger.Nop())
	return f
}

// fixedKey hands out a fresh copy on every call, the service wipes keys after use.
func fixedKey(_ models.Salt, length int) ([]byte, error) {
	return bytes.Repeat([]byte{0x5a}, length), nil
}

func (f cipherFixture) seal(t *testing.T, method models.CipherMethod, plaintext string) []byte {
	t.Helper()
	key, _ := fixedKey(testSalt, method.KeySize())
	blob, err := f.crypter.Encrypt(method, []byte(plaintext), key)
	require.NoError(t, err)
	return blob
}

func TestCipherService_CreateCipher_UsesFirstSalt(t *testing.T) {
	ctx := context.Background()
	f := newCipherFixture(t, nil)

	var stored models.Cipher
	f.salts.EXPECT().FirstSaltKey(gomock.Any()).Return(testSalt, nil)
	f.keys.EXPECT().DeriveKey(testSalt, 32).DoAndReturn(fixedKey)
	f.repo.EXPECT().CreateCipher(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c models.Cipher) (models.Cipher, error) {
		stored = c
		c.ID = 10
		return c, nil
	})

	res, err := f.svc.CreateCipher(ctx, models.CreateCipherRequest{Name: "github_token", Plaintext: "ghp_abc123"})
	require.NoError(t, err)
	assert.Equal(t, models.CreateCipherResult{CipherID: 10, Name: "github_token", Method: models.CipherAES256, SaltIDUsed: 1}, res)

	assert.Equal(t, int64(1), stored.SaltID)
	assert.NotContains(t, string(stored.Ciphertext), "ghp_abc123")

	key, _ := fixedKey(testSalt, 32)
	plain, err := f.crypter.Decrypt(models.CipherAES256, stored.Ciphertext, key)
	require.NoError(t, err)
	assert.Equal(t, "ghp_abc123", string(plain))

	_, err = f.cache.Get(ctx, "cipher:10")
	assert.NoError(t, err)
}

func TestCipherService_CreateCipher_ExplicitSalt(t *testing.T) {
	f := newCipherFixture(t, nil)
	other := models.Salt{ID: 3, Method: models.SaltMD5, Value: []byte("x")}
	saltID := int64(3)

	f.salts.EXPECT().GetSalt(gomock.Any(), int64(3)).Return(other, nil)
	f.keys.EXPECT().DeriveKey(other, 32).DoAndReturn(fixedKey)
	f.repo.EXPECT().CreateCipher(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c models.Cipher) (models.Cipher, error) {
		c.ID = 1
		return c, nil
	})

	res, err := f.svc.CreateCipher(context.Background(), models.CreateCipherRequest{Name: "n", Plaintext: "p", Method: models.CipherChaCha20, SaltID: &saltID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.SaltIDUsed)
	assert.Equal(t, models.CipherChaCha20, res.Method)
}

func TestCipherService_CreateCipher_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("no first salt", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		f.salts.EXPECT().FirstSaltKey(gomock.Any()).Return(models.Salt{}, ErrNoFirstSalt)

		_, err := f.svc.CreateCipher(ctx, models.CreateCipherRequest{Name: "n", Plaintext: "p"})
		assert.ErrorIs(t, err, ErrNoFirstSalt)
		assert.Zero(t, f.cache.Len())
	})

	t.Run("unsupported method", func(t *testing.T) {
		f := newCipherFixture(t, nil)

		_, err := f.svc.CreateCipher(ctx, models.CreateCipherRequest{Name: "n", Plaintext: "p", Method: "rot13"})
		assert.Equal(t, KindUnsupportedMethod, KindOf(err))
	})

	t.Run("missing explicit salt", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		saltID := int64(9)
		f.salts.EXPECT().GetSalt(gomock.Any(), int64(9)).Return(models.Salt{}, store.ErrNotFound)

		_, err := f.svc.CreateCipher(ctx, models.CreateCipherRequest{Name: "n", Plaintext: "p", SaltID: &saltID})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCipherService_DecryptByName(t *testing.T) {
	ctx := context.Background()

	t.Run("unique", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		record := models.Cipher{ID: 4, Name: "github_token", Method: models.CipherAES128, SaltID: 1}
		record.Ciphertext = f.seal(t, models.CipherAES128, "ghp_abc123")

		f.repo.EXPECT().GetCiphersByName(gomock.Any(), "github_token").Return([]models.Cipher{record}, nil)
		f.salts.EXPECT().GetSalt(gomock.Any(), int64(1)).Return(testSalt, nil)
		f.keys.EXPECT().DeriveKey(testSalt, 16).DoAndReturn(fixedKey)

		res, err := f.svc.DecryptByName(ctx, "github_token")
		require.NoError(t, err)
		require.NotNil(t, res.DecryptedText)
		assert.Equal(t, "ghp_abc123", *res.DecryptedText)
		assert.Equal(t, 1, res.MatchesFound)
		assert.False(t, res.Ambiguous())
	})

	t.Run("ambiguous", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		f.repo.EXPECT().GetCiphersByName(gomock.Any(), "dup").Return([]models.Cipher{
			{ID: 2, Name: "dup", Method: models.CipherAES256},
			{ID: 3, Name: "dup", Method: models.CipherChaCha20},
		}, nil)

		res, err := f.svc.DecryptByName(ctx, "dup")
		require.NoError(t, err)
		assert.Nil(t, res.DecryptedText)
		assert.Equal(t, 2, res.MatchesFound)
		assert.Equal(t, []models.Suggestion{
			{ID: 2, Name: "dup", Method: models.CipherAES256},
			{ID: 3, Name: "dup", Method: models.CipherChaCha20},
		}, res.Suggestions)
	})

	t.Run("unknown name", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		f.repo.EXPECT().GetCiphersByName(gomock.Any(), "nope").Return(nil, nil)

		_, err := f.svc.DecryptByName(ctx, "nope")
		assert.Equal(t, KindNotFound, KindOf(err))
	})
}

func TestCipherService_DecryptByID_Failures(t *testing.T) {
	ctx := context.Background()
	record := models.Cipher{ID: 6, Name: "n", Method: models.CipherAES256, SaltID: 1, Ciphertext: []byte("blob")}

	t.Run("engine rejects blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		crypter := mock.NewMockCipherEngine(ctrl)
		f := newCipherFixture(t, crypter)

		f.repo.EXPECT().GetCipher(gomock.Any(), int64(6)).Return(record, nil)
		f.salts.EXPECT().GetSalt(gomock.Any(), int64(1)).Return(testSalt, nil)
		f.keys.EXPECT().DeriveKey(testSalt, 32).DoAndReturn(fixedKey)
		crypter.EXPECT().Decrypt(models.CipherAES256, []byte("blob"), gomock.Any()).Return(nil, crypto.ErrDecryptionFailed)

		_, err := f.svc.DecryptByID(ctx, 6)
		assert.Equal(t, KindDecryptionFailed, KindOf(err))
	})

	t.Run("plaintext is not text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		crypter := mock.NewMockCipherEngine(ctrl)
		f := newCipherFixture(t, crypter)

		f.repo.EXPECT().GetCipher(gomock.Any(), int64(6)).Return(record, nil)
		f.salts.EXPECT().GetSalt(gomock.Any(), int64(1)).Return(testSalt, nil)
		f.keys.EXPECT().DeriveKey(testSalt, 32).DoAndReturn(fixedKey)
		crypter.EXPECT().Decrypt(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte{0xff, 0xfe, 0xfd}, nil)

		_, err := f.svc.DecryptByID(ctx, 6)
		assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	})

	t.Run("stored method is unknown", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		unknown := record
		unknown.Method = models.CipherMethod("rot13")
		f.repo.EXPECT().GetCipher(gomock.Any(), int64(6)).Return(unknown, nil)

		_, err := f.svc.DecryptByID(ctx, 6)
		assert.ErrorIs(t, err, crypto.ErrUnsupportedMethod)
		assert.Equal(t, KindUnsupportedMethod, KindOf(err))
	})

	t.Run("missing", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		f.repo.EXPECT().GetCipher(gomock.Any(), int64(6)).Return(models.Cipher{}, store.ErrNotFound)

		_, err := f.svc.DecryptByID(ctx, 6)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.Contains(t, err.Error(), "cipher 6")
	})
}

func TestCipherService_SearchCiphers(t *testing.T) {
	ctx := context.Background()
	f := newCipherFixture(t, nil)
	all := []models.Cipher{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	f.repo.EXPECT().ListCiphers(gomock.Any()).Return(all, nil)
	got, err := f.svc.SearchCiphers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	f.repo.EXPECT().SearchCiphers(gomock.Any(), "git").Return(all[:1], nil)
	got, err = f.svc.SearchCiphers(ctx, "git")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Name)
}

func TestCipherService_UpdateCipher(t *testing.T) {
	ctx := context.Background()

	t.Run("rename keeps ciphertext", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		current := models.Cipher{ID: 5, Name: "old", Method: models.CipherAES256, SaltID: 1, Ciphertext: []byte("sealed")}
		name := "new"

		f.repo.EXPECT().GetCipher(gomock.Any(), int64(5)).Return(current, nil)
		f.repo.EXPECT().UpdateCipher(gomock.Any(), models.Cipher{ID: 5, Name: "new", Method: models.CipherAES256, SaltID: 1, Ciphertext: []byte("sealed")}).
			DoAndReturn(func(_ context.Context, c models.Cipher) (models.Cipher, error) { return c, nil })

		info, err := f.svc.UpdateCipher(ctx, models.UpdateCipherRequest{ID: 5, Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "new", info.Name)
	})

	t.Run("method change re-encrypts current plaintext", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		current := models.Cipher{ID: 5, Name: "n", Method: models.CipherAES128, SaltID: 1}
		current.Ciphertext = f.seal(t, models.CipherAES128, "keep me")
		method := models.CipherChaCha20

		var updated models.Cipher
		f.repo.EXPECT().GetCipher(gomock.Any(), int64(5)).Return(current, nil)
		f.salts.EXPECT().GetSalt(gomock.Any(), int64(1)).Return(testSalt, nil).Times(2)
		f.keys.EXPECT().DeriveKey(testSalt, gomock.Any()).DoAndReturn(fixedKey).Times(2)
		f.repo.EXPECT().UpdateCipher(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c models.Cipher) (models.Cipher, error) {
			updated = c
			return c, nil
		})

		info, err := f.svc.UpdateCipher(ctx, models.UpdateCipherRequest{ID: 5, Method: &method})
		require.NoError(t, err)
		assert.Equal(t, models.CipherChaCha20, info.Method)

		key, _ := fixedKey(testSalt, 32)
		plain, err := f.crypter.Decrypt(models.CipherChaCha20, updated.Ciphertext, key)
		require.NoError(t, err)
		assert.Equal(t, "keep me", string(plain))
	})

	t.Run("missing", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		name := "x"
		f.repo.EXPECT().GetCipher(gomock.Any(), int64(8)).Return(models.Cipher{}, store.ErrNotFound)

		_, err := f.svc.UpdateCipher(ctx, models.UpdateCipherRequest{ID: 8, Name: &name})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCipherService_DeleteCipherByName(t *testing.T) {
	ctx := context.Background()

	t.Run("ambiguous", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		f.repo.EXPECT().GetCiphersByName(gomock.Any(), "dup").Return([]models.Cipher{{ID: 1, Name: "dup"}, {ID: 2, Name: "dup"}}, nil)

		_, err := f.svc.DeleteCipherByName(ctx, "dup")
		require.ErrorIs(t, err, ErrAmbiguousName)

		var ambiguous *AmbiguousNameError
		require.True(t, errors.As(err, &ambiguous))
		assert.Len(t, ambiguous.Suggestions, 2)
		assert.Equal(t, KindAmbiguousName, KindOf(err))
	})

	t.Run("unique", func(t *testing.T) {
		f := newCipherFixture(t, nil)
		require.NoError(t, f.cache.Put(ctx, "cipher:7", []byte("{}")))
		f.repo.EXPECT().GetCiphersByName(gomock.Any(), "solo").Return([]models.Cipher{{ID: 7, Name: "solo", Method: models.CipherAES128}}, nil)
		f.repo.EXPECT().DeleteCipher(gomock.Any(), int64(7)).Return(nil)

		res, err := f.svc.DeleteCipherByName(ctx, "solo")
		require.NoError(t, err)
		assert.Equal(t, models.DeleteCipherResult{ID: 7, Name: "solo", Method: models.CipherAES128}, res)
		assert.Zero(t, f.cache.Len())
	})
}

func TestCipherService_DeleteCipher_MissingDropsStaleEntry(t *testing.T) {
	ctx := context.Background()
	f := newCipherFixture(t, nil)
	require.NoError(t, f.cache.Put(ctx, "cipher:9", []byte("{}")))
	f.repo.EXPECT().GetCipher(gomock.Any(), int64(9)).Return(models.Cipher{}, store.ErrNotFound)

	_, err := f.svc.DeleteCipher(ctx, 9)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Zero(t, f.cache.Len())
}
