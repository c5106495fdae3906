// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/mock"
	"github.com/MKhiriev/kasa/internal/store"
	"github.com/MKhiriev/kasa/models"
)

type fakeObjectStore struct {
	putFunc func(ctx context.Context, name string, body []byte, contentType string) (int64, error)
}

func (f *fakeObjectStore) Put(ctx context.Context, name string, body []byte, contentType string) (int64, error) {
	return f.putFunc(ctx, name, body, contentType)
}

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func newTestExporter(t *testing.T, objects ObjectStore, prefix string) (*Exporter, *mock.MockSaltRepository, *mock.MockCipherRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	salts := mock.NewMockSaltRepository(ctrl)
	ciphers := mock.NewMockCipherRepository(ctrl)

	e := NewExporter(salts, ciphers, objects, prefix, logger.Nop())
	e.now = func() time.Time { return fixedNow }
	return e, salts, ciphers
}

func TestExporter_Export(t *testing.T) {
	var (
		gotName string
		gotBody []byte
		gotType string
	)
	objects := &fakeObjectStore{putFunc: func(_ context.Context, name string, body []byte, contentType string) (int64, error) {
		gotName, gotBody, gotType = name, body, contentType
		return int64(len(body)), nil
	}}
	e, salts, ciphers := newTestExporter(t, objects, "")

	salt := models.Salt{ID: 1, Method: models.SaltSHA256, Value: []byte("0123456789abcdef"), CreatedAt: fixedNow}
	cipher := models.Cipher{ID: 4, Name: "github_token", Ciphertext: []byte{1, 2, 3, 4}, Method: models.CipherAES256, SaltID: 1}
	salts.EXPECT().ListSalts(gomock.Any()).Return([]models.Salt{salt}, nil)
	ciphers.EXPECT().ListCiphers(gomock.Any()).Return([]models.Cipher{cipher}, nil)

	res, err := e.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "backups/kasa_20260314_150926.json", res.Object)
	assert.Equal(t, gotName, res.Object)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, 1, res.Salts)
	assert.Equal(t, 1, res.Ciphers)
	assert.Equal(t, int64(len(gotBody)), res.Size)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(gotBody, &snapshot))
	assert.True(t, snapshot.CreatedAt.Equal(fixedNow))
	require.Len(t, snapshot.Ciphers, 1)
	assert.Equal(t, cipher.Ciphertext, snapshot.Ciphers[0].Ciphertext)
	assert.Equal(t, "github_token", snapshot.Ciphers[0].Name)
	require.Len(t, snapshot.Salts, 1)
	assert.Equal(t, salt.Value, snapshot.Salts[0].Value)
}

func TestExporter_ObjectName(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"", "backups/kasa_20260314_150926.json"},
		{"team", "team/backups/kasa_20260314_150926.json"},
		{"team/", "team/backups/kasa_20260314_150926.json"},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			e := &Exporter{prefix: tt.prefix}
			assert.Equal(t, tt.want, e.objectName(fixedNow))
		})
	}
}

func TestExporter_Export_EmptyStore(t *testing.T) {
	var gotBody []byte
	objects := &fakeObjectStore{putFunc: func(_ context.Context, _ string, body []byte, _ string) (int64, error) {
		gotBody = body
		return int64(len(body)), nil
	}}
	e, salts, ciphers := newTestExporter(t, objects, "")
	salts.EXPECT().ListSalts(gomock.Any()).Return([]models.Salt{}, nil)
	ciphers.EXPECT().ListCiphers(gomock.Any()).Return([]models.Cipher{}, nil)

	res, err := e.Export(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Salts)
	assert.Zero(t, res.Ciphers)
	assert.JSONEq(t, `{"created_at":"2026-03-14T15:09:26Z","salts":[],"ciphers":[]}`, string(gotBody))
}

func TestExporter_Export_Failures(t *testing.T) {
	t.Run("salt listing fails", func(t *testing.T) {
		objects := &fakeObjectStore{putFunc: func(context.Context, string, []byte, string) (int64, error) {
			t.Fatal("nothing must be uploaded")
			return 0, nil
		}}
		e, salts, _ := newTestExporter(t, objects, "")
		salts.EXPECT().ListSalts(gomock.Any()).Return(nil, store.ErrStoreUnavailable)

		_, err := e.Export(context.Background())
		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	})

	t.Run("cipher listing fails", func(t *testing.T) {
		objects := &fakeObjectStore{putFunc: func(context.Context, string, []byte, string) (int64, error) {
			t.Fatal("nothing must be uploaded")
			return 0, nil
		}}
		e, salts, ciphers := newTestExporter(t, objects, "")
		salts.EXPECT().ListSalts(gomock.Any()).Return(nil, nil)
		ciphers.EXPECT().ListCiphers(gomock.Any()).Return(nil, store.ErrStoreUnavailable)

		_, err := e.Export(context.Background())
		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	})

	t.Run("upload fails", func(t *testing.T) {
		objects := &fakeObjectStore{putFunc: func(context.Context, string, []byte, string) (int64, error) {
			return 0, ErrUploadingObject
		}}
		e, salts, ciphers := newTestExporter(t, objects, "")
		salts.EXPECT().ListSalts(gomock.Any()).Return(nil, nil)
		ciphers.EXPECT().ListCiphers(gomock.Any()).Return(nil, nil)

		_, err := e.Export(context.Background())
		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
		assert.True(t, errors.Is(err, ErrUploadingObject))
	})
}

func TestNewMinioStore_EmptyBucket(t *testing.T) {
	_, err := NewMinioStore(configWithBucket(""))
	assert.ErrorIs(t, err, ErrEmptyBucket)
}
