// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the kasa server.
// It defines the Worker interface and a Workers aggregate that runs
// several workers under one context.
package workers

import "context"

// Worker is a background job.
//
// Run blocks until ctx is cancelled or the job fails for good. A cancelled
// context is a normal stop and yields nil.
type Worker interface {
	Run(ctx context.Context) error
}
