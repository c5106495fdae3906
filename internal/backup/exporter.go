// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/store"
	"github.com/MKhiriev/kasa/models"
)

const objectTimeLayout = "20060102_150405"

// Snapshot is the JSON document written for every backup.
type Snapshot struct {
	CreatedAt time.Time       `json:"created_at"`
	Salts     []models.Salt   `json:"salts"`
	Ciphers   []models.Cipher `json:"ciphers"`
}

// Exporter reads every durable record and uploads it as one Snapshot.
type Exporter struct {
	salts   store.SaltRepository
	ciphers store.CipherRepository
	objects ObjectStore
	prefix  string

	now    func() time.Time
	logger *logger.Logger
}

func NewExporter(salts store.SaltRepository, ciphers store.CipherRepository, objects ObjectStore, prefix string, logger *logger.Logger) *Exporter {
	return &Exporter{
		salts:   salts,
		ciphers: ciphers,
		objects: objects,
		prefix:  prefix,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger.WithComponent("backup"),
	}
}

// Export writes <prefix>backups/kasa_YYYYMMDD_HHMMSS.json. Object storage
// failures are reported as store.ErrStoreUnavailable.
func (e *Exporter) Export(ctx context.Context) (models.BackupResult, error) {
	salts, err := e.salts.ListSalts(ctx)
	if err != nil {
		e.logger.Err(err).Str("func", "Exporter.Export").Msg("error listing salts")
		return models.BackupResult{}, err
	}
	ciphers, err := e.ciphers.ListCiphers(ctx)
	if err != nil {
		e.logger.Err(err).Str("func", "Exporter.Export").Msg("error listing ciphers")
		return models.BackupResult{}, err
	}

	snapshot := Snapshot{
		CreatedAt: e.now(),
		Salts:     salts,
		Ciphers:   ciphers,
	}
	body, err := json.Marshal(snapshot)
	if err != nil {
		return models.BackupResult{}, fmt.Errorf("%w: %w", ErrEncodingBackup, err)
	}

	name := e.objectName(snapshot.CreatedAt)
	size, err := e.objects.Put(ctx, name, body, "application/json")
	if err != nil {
		e.logger.Err(err).Str("func", "Exporter.Export").Str("object", name).Msg("error uploading snapshot")
		return models.BackupResult{}, fmt.Errorf("%w: %w", store.ErrStoreUnavailable, err)
	}

	e.logger.Info().
		Str("object", name).
		Int("salts", len(salts)).
		Int("ciphers", len(ciphers)).
		Int64("size", size).
		Msg("backup exported")

	return models.BackupResult{
		Object:  name,
		Salts:   len(salts),
		Ciphers: len(ciphers),
		Size:    size,
	}, nil
}

func (e *Exporter) objectName(at time.Time) string {
	file := "kasa_" + at.Format(objectTimeLayout) + ".json"
	if e.prefix == "" {
		return path.Join("backups", file)
	}
	return path.Join(e.prefix, "backups", file)
}
