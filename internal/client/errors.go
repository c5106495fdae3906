// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrEmptySecret    = errors.New("secret must not be empty")
	ErrNothingToDo    = errors.New("nothing to update: pass --name, --method or --secret")
	ErrInvalidID      = errors.New("id must be a positive integer")
	ErrInvalidHexSalt = errors.New("salt value must be hex encoded")
)
