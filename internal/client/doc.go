// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the `kasa` command line.
//
// Every command is a thin cobra wrapper over one [adapter.ServerAdapter]
// call. Output is a table by default and JSON with --json. Secrets are read
// from the terminal without echo, or from stdin with --stdin, and are never
// accepted as flag values so they stay out of shell history.
package client
