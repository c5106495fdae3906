// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/kasa/internal/config"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/models"
)

// Health states reported by AppInfoService.Health.
const (
	HealthOK          = "ok"
	HealthDegraded    = "degraded"
	HealthUnavailable = "unavailable"
)

// HealthCheck is one readiness probe. A failing critical check makes the
// service unavailable, a failing non-critical one degraded.
type HealthCheck struct {
	Name     string
	Critical bool
	Check    func(ctx context.Context) error
}

type appInfoService struct {
	appVersion string
	checks     []HealthCheck

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, checks []HealthCheck, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		checks:     checks,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{
		Status:  HealthOK,
		Version: s.appVersion,
		Checks:  make(map[string]string, len(s.checks)),
	}

	for _, check := range s.checks {
		if err := check.Check(ctx); err != nil {
			s.logger.Warn().Err(err).Str("check", check.Name).Msg("health check failed")
			status.Checks[check.Name] = "error"
			if check.Critical {
				status.Status = HealthUnavailable
			} else if status.Status == HealthOK {
				status.Status = HealthDegraded
			}
			continue
		}
		status.Checks[check.Name] = HealthOK
	}

	return status
}
