// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGetTraceIDFromContext(t *testing.T) {
	if _, ok := GetTraceIDFromContext(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
	if _, ok := GetTraceIDFromContext(WithTraceID(context.Background(), "")); ok {
		t.Fatal("expected ok=false for empty trace id")
	}

	got, ok := GetTraceIDFromContext(WithTraceID(context.Background(), "abc"))
	if !ok || got != "abc" {
		t.Fatalf("expected abc, got %q (ok=%v)", got, ok)
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()
	if first == second {
		t.Fatal("expected distinct ids")
	}

	id, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("expected valid uuid, got %v", err)
	}
	if id.Version() != 7 {
		t.Errorf("expected version 7, got %d", id.Version())
	}
}

func TestHTTPClient_SendsTraceID(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(TraceIDHeader)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, 0)
	ctx := WithTraceID(context.Background(), "trace-42")

	if _, err := client.R().SetContext(ctx).Get("/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "trace-42" {
		t.Errorf("expected trace-42, got %q", seen)
	}
}

func TestHTTPClient_RetriesUnavailable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second, 3).R().Get("/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode())
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 calls, got %d", calls.Load())
	}
}
