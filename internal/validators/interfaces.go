// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the services.
//
// A Validator accepts any supported request value and an optional list of
// field names restricting which rules run. Validation is independent of
// transport and storage, so the same rules apply to HTTP requests and to
// direct service calls.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
