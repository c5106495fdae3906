// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/kasa/models"
)

// mapHTTPError returns nil for 2xx and 300 responses. Anything else becomes
// an *APIError, decoded from the error body when the server sent one.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status <= http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return &APIError{Status: status, Kind: body.Error, Message: body.Message, Suggestions: body.Suggestions}
	}

	apiErr := &APIError{Status: status, Message: strings.TrimSpace(string(resp.Body()))}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	switch {
	case status == http.StatusServiceUnavailable:
		apiErr.Kind = "StoreUnavailable"
	case status >= http.StatusInternalServerError:
		apiErr.Kind = "Internal"
	}
	return apiErr
}
