// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/kasa/internal/adapter"
	"github.com/MKhiriev/kasa/internal/client"
	"github.com/MKhiriev/kasa/internal/config"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/tui"
	"github.com/MKhiriev/kasa/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("kasa-cli")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, tui.New(serverAdapter, buildInfo, log), buildInfo, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
