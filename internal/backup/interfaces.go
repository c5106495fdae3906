// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import "context"

// ObjectStore writes named objects to a bucket.
type ObjectStore interface {
	// Put stores body under name and returns the stored size.
	Put(ctx context.Context, name string, body []byte, contentType string) (int64, error)
}
