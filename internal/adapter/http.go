// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/kasa/internal/config"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/utils"
	"github.com/MKhiriev/kasa/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter]
// for cfg.ServerURL. A bare "host:port" is treated as http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout, cfg.RetryCount),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyServerURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// call runs req against path and decodes the result into out when out is
// non-nil. fn names the operation in wrapped transport errors.
func (h *httpServerAdapter) call(ctx context.Context, fn, method, path string, body, out any) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter."+fn).Msg("request failed")
		return fmt.Errorf("%s request: %w", fn, err)
	}
	if err := mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", "httpServerAdapter."+fn).Int("status", resp.StatusCode()).Msg("server rejected request")
		return err
	}
	return nil
}

func idPath(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10)
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus
	err := h.call(ctx, "Health", resty.MethodGet, "/health", nil, &status)
	return status, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) CreateSalt(ctx context.Context, req models.CreateSaltRequest) (models.SaltInfo, error) {
	var info models.SaltInfo
	err := h.call(ctx, "CreateSalt", resty.MethodPost, "/api/salts", req, &info)
	return info, err
}

func (h *httpServerAdapter) ListSalts(ctx context.Context) ([]models.SaltInfo, error) {
	var infos []models.SaltInfo
	err := h.call(ctx, "ListSalts", resty.MethodGet, "/api/salts", nil, &infos)
	return infos, err
}

func (h *httpServerAdapter) GetSalt(ctx context.Context, id int64) (models.SaltInfo, error) {
	var info models.SaltInfo
	err := h.call(ctx, "GetSalt", resty.MethodGet, idPath("/api/salts/", id), nil, &info)
	return info, err
}

func (h *httpServerAdapter) FirstSalt(ctx context.Context) (models.SaltInfo, error) {
	var info models.SaltInfo
	err := h.call(ctx, "FirstSalt", resty.MethodGet, "/api/salts/first", nil, &info)
	return info, err
}

func (h *httpServerAdapter) DeleteSalt(ctx context.Context, id int64) error {
	return h.call(ctx, "DeleteSalt", resty.MethodDelete, idPath("/api/salts/", id), nil, nil)
}

func (h *httpServerAdapter) GenerateKey(ctx context.Context, req models.GenerateKeyRequest) (models.GeneratedKey, error) {
	var key models.GeneratedKey
	err := h.call(ctx, "GenerateKey", resty.MethodPost, "/api/salts/generate-key", req, &key)
	return key, err
}

func (h *httpServerAdapter) SaltMethods(ctx context.Context) ([]models.SaltMethod, error) {
	var methods models.Methods
	err := h.call(ctx, "SaltMethods", resty.MethodGet, "/api/salts/methods", nil, &methods)
	return methods.Salt, err
}

func (h *httpServerAdapter) CreateCipher(ctx context.Context, req models.CreateCipherRequest) (models.CreateCipherResult, error) {
	var res models.CreateCipherResult
	err := h.call(ctx, "CreateCipher", resty.MethodPost, "/api/ciphers", req, &res)
	return res, err
}

func (h *httpServerAdapter) ListCiphers(ctx context.Context, search string) ([]models.CipherInfo, error) {
	path := "/api/ciphers"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}

	var infos []models.CipherInfo
	err := h.call(ctx, "ListCiphers", resty.MethodGet, path, nil, &infos)
	return infos, err
}

func (h *httpServerAdapter) GetCipher(ctx context.Context, id int64) (models.CipherInfo, error) {
	var info models.CipherInfo
	err := h.call(ctx, "GetCipher", resty.MethodGet, idPath("/api/ciphers/", id), nil, &info)
	return info, err
}

func (h *httpServerAdapter) UpdateCipher(ctx context.Context, req models.UpdateCipherRequest) (models.CipherInfo, error) {
	var info models.CipherInfo
	err := h.call(ctx, "UpdateCipher", resty.MethodPut, idPath("/api/ciphers/", req.ID), req, &info)
	return info, err
}

func (h *httpServerAdapter) DeleteCipher(ctx context.Context, id int64) (models.DeleteCipherResult, error) {
	var res models.DeleteCipherResult
	err := h.call(ctx, "DeleteCipher", resty.MethodDelete, idPath("/api/ciphers/", id), nil, &res)
	return res, err
}

func (h *httpServerAdapter) DeleteCipherByName(ctx context.Context, name string) (models.DeleteCipherResult, error) {
	var res models.DeleteCipherResult
	err := h.call(ctx, "DeleteCipherByName", resty.MethodDelete, "/api/ciphers/by-name/"+url.PathEscape(name), nil, &res)
	return res, err
}

func (h *httpServerAdapter) DecryptByID(ctx context.Context, id int64) (models.DecryptResult, error) {
	var res models.DecryptResult
	err := h.call(ctx, "DecryptByID", resty.MethodGet, idPath("/api/ciphers/", id)+"/decrypt", nil, &res)
	return res, err
}

// DecryptByName decodes the 300 body itself: resty only fills SetResult for
// 2xx responses.
func (h *httpServerAdapter) DecryptByName(ctx context.Context, name string) (models.DecryptResult, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/ciphers/by-name/" + url.PathEscape(name))
	if err != nil {
		return models.DecryptResult{}, fmt.Errorf("decrypt by name request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.DecryptResult{}, err
	}

	var res models.DecryptResult
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return models.DecryptResult{}, fmt.Errorf("decrypt by name decode: %w", err)
	}
	return res, nil
}

func (h *httpServerAdapter) CipherMethods(ctx context.Context) ([]models.CipherMethod, error) {
	var methods models.Methods
	err := h.call(ctx, "CipherMethods", resty.MethodGet, "/api/ciphers/methods", nil, &methods)
	return methods.Cipher, err
}

func (h *httpServerAdapter) SyncCache(ctx context.Context) (models.CacheSyncResult, error) {
	var res models.CacheSyncResult
	err := h.call(ctx, "SyncCache", resty.MethodPost, "/api/cache/sync", nil, &res)
	return res, err
}

func (h *httpServerAdapter) FlushCache(ctx context.Context) (models.CacheSyncResult, error) {
	var res models.CacheSyncResult
	err := h.call(ctx, "FlushCache", resty.MethodPost, "/api/cache/flush", nil, &res)
	return res, err
}

func (h *httpServerAdapter) Backup(ctx context.Context) (models.BackupResult, error) {
	var res models.BackupResult
	err := h.call(ctx, "Backup", resty.MethodPost, "/api/admin/backup", nil, &res)
	return res, err
}
