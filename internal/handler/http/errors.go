// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. They are reported to clients as InvalidRequest.
var (
	ErrInvalidJSON     = errors.New("invalid JSON was passed")
	ErrInvalidPathID   = errors.New("path id must be a positive integer")
	ErrInvalidPathName = errors.New("path name is not a valid escaped segment")
	ErrUnknownRoute    = errors.New("no such route")
)
