// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the trace id between the CLI and the server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client for baseURL. Requests whose context carries
// a trace id send it as X-Trace-ID. Requests answered with 503 Service
// Unavailable, or failing at the transport level, are retried up to
// retryCount times with a short backoff.
func NewHTTPClient(baseURL string, timeout time.Duration, retryCount int) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() == http.StatusServiceUnavailable
		}).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
				req.SetHeader(TraceIDHeader, traceID)
			}
			return nil
		})

	return &HTTPClient{Client: client}
}
