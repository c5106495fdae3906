// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/kasa/internal/config"
)

type minioStore struct {
	client *minio.Client
	bucket string

	// bucketReady is set once the bucket is known to exist.
	mu          sync.Mutex
	bucketReady bool
}

// NewMinioStore returns an ObjectStore backed by any S3-compatible server.
// The bucket is created on the first Put when it does not exist.
func NewMinioStore(cfg config.Backup) (ObjectStore, error) {
	if cfg.Bucket == "" {
		return nil, ErrEmptyBucket
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingClient, err)
	}

	return &minioStore{client: client, bucket: cfg.Bucket}, nil
}

func (m *minioStore) Put(ctx context.Context, name string, body []byte, contentType string) (int64, error) {
	if err := m.ensureBucket(ctx); err != nil {
		return 0, err
	}

	info, err := m.client.PutObject(ctx, m.bucket, name, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{
			ContentType:  contentType,
			UserMetadata: map[string]string{"data-type": "kasa-backup"},
		})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}
	return info.Size, nil
}

func (m *minioStore) ensureBucket(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bucketReady {
		return nil
	}

	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEnsuringBucket, err)
	}
	if !exists {
		if err = m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			// another writer may have created it in between
			if resp := minio.ToErrorResponse(err); resp.Code != "BucketAlreadyOwnedByYou" {
				return fmt.Errorf("%w: %w", ErrEnsuringBucket, err)
			}
		}
	}

	m.bucketReady = true
	return nil
}
