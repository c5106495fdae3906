// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MKhiriev/kasa/internal/config"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
)

func configWithBucket(bucket string) config.Backup {
	return config.Backup{
		Endpoint:  "localhost:9000",
		AccessKey: testAccessKey,
		SecretKey: testSecretKey,
		Bucket:    bucket,
	}
}

func startMinio(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping minio integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     testAccessKey,
				"MINIO_ROOT_PASSWORD": testSecretKey,
			},
			Cmd:        []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("minio container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate minio container: %v", err)
		}
	})

	endpoint, err := container.PortEndpoint(ctx, "9000/tcp", "")
	require.NoError(t, err)
	return endpoint
}

func TestMinioStore_Put(t *testing.T) {
	endpoint := startMinio(t)

	cfg := configWithBucket("kasa-backups")
	cfg.Endpoint = endpoint

	objects, err := NewMinioStore(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	body := []byte(`{"salts":[],"ciphers":[]}`)

	// the bucket does not exist yet and is created on demand
	size, err := objects.Put(ctx, "backups/kasa_20260314_150926.json", body, "application/json")
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), size)

	_, err = objects.Put(ctx, "backups/kasa_20260314_150927.json", body, "application/json")
	require.NoError(t, err)

	client := objects.(*minioStore).client
	obj, err := client.GetObject(ctx, cfg.Bucket, "backups/kasa_20260314_150926.json", minio.GetObjectOptions{})
	require.NoError(t, err)
	defer obj.Close()

	got, err := io.ReadAll(obj)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}
