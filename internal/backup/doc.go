// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backup exports ciphertext-only snapshots of the durable store to
// S3-compatible object storage.
//
// A snapshot is one JSON object holding every salt and every cipher record
// as stored: ciphertext stays sealed and no key material is included, so a
// snapshot is useless without the server's master key.
package backup
