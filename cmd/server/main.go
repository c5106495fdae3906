// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/kasa/internal/backup"
	"github.com/MKhiriev/kasa/internal/config"
	"github.com/MKhiriev/kasa/internal/crypto"
	"github.com/MKhiriev/kasa/internal/handler"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/server"
	"github.com/MKhiriev/kasa/internal/service"
	"github.com/MKhiriev/kasa/internal/store"
	"github.com/MKhiriev/kasa/internal/workers"
	"github.com/MKhiriev/kasa/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	defer memguard.Purge()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("kasa-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !logger.SetLevel(cfg.App.LogLevel) && cfg.App.LogLevel != "" {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Bool("redis_cache", cfg.Storage.Cache.RedisURL != "").
		Bool("backup", cfg.Backup.Enabled()).
		Dur("cache_sync_interval", cfg.Workers.CacheSyncInterval).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		memguard.SafeExit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	deriver := crypto.NewDeriver(crypto.Argon2Params{
		Time:      cfg.App.Argon2.Time,
		MemoryKiB: cfg.App.Argon2.MemoryKiB,
		Threads:   cfg.App.Argon2.Threads,
	})
	keyring, err := crypto.NewKeyring([]byte(cfg.App.MasterKey), deriver)
	if err != nil {
		return fmt.Errorf("create keyring: %w", err)
	}
	cfg.App.MasterKey = ""

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	var backupService service.BackupService
	if cfg.Backup.Enabled() {
		objects, err := backup.NewMinioStore(cfg.Backup)
		if err != nil {
			return fmt.Errorf("create backup store: %w", err)
		}
		backupService = backup.NewExporter(storages.SaltRepository, storages.CipherRepository, objects, cfg.Backup.Prefix, log)
	} else {
		log.Info().Msg("backup storage is not configured, backups are disabled")
	}

	services, err := service.NewServices(storages, keyring, deriver, backupService, *cfg, log)
	if err != nil {
		return fmt.Errorf("create services: %w", err)
	}

	// warm the cache; a cold cache only costs store reads
	if res, err := services.CacheService.Sync(ctx); err != nil {
		log.Warn().Err(err).Msg("initial cache sync failed")
	} else {
		log.Info().Int("salts", res.Salts).Int("ciphers", res.Ciphers).Msg("cache warmed")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}
	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	workersDone := make(chan error, 1)
	go func() {
		workersDone <- workers.NewWorkers(services, cfg.Workers, log).Run(ctx)
	}()

	if err = srv.RunServer(ctx); err != nil {
		return err
	}
	return <-workersDone
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
