// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the command line.
type Client interface {
	// Run executes the command named by args and blocks until it ends.
	Run(ctx context.Context, args []string) error
}

// Shell is the interactive mode started by `kasa shell`.
type Shell interface {
	Run(ctx context.Context) error
}
