// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoHTTPHandler is returned by NewServer when there is no API to serve.
	ErrNoHTTPHandler = errors.New("server: no http handler configured")

	// ErrEmptyAddress is returned by NewServer when SERVER_ADDRESS is empty.
	ErrEmptyAddress = errors.New("server: empty listen address")

	// ErrListen wraps listener failures in RunServer.
	ErrListen = errors.New("server: cannot listen")
)
