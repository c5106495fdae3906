// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates kasa configuration.
//
// Sources, lowest priority first (non-zero fields of a later source
// override earlier ones):
//  1. Built-in defaults ([Defaults])
//  2. JSON or YAML config file (CONFIG / -c)
//  3. Environment variables, after an optional dotenv file is loaded
//  4. Command-line flags
//
// Secrets (APP_MASTER_KEY, BACKUP_ACCESS_KEY, BACKUP_SECRET_KEY) are read
// from the environment only.
//
// [GetStructuredConfig] is the server entry point; [GetClientConfig] is
// used by the CLI.
package config
