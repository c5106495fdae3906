// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/kasa/internal/crypto"
)

// maxStdinSecret bounds what --stdin accepts.
const maxStdinSecret = 1 << 20

// readSecretText reads a secret from stdin when fromStdin is set and from a
// hidden terminal prompt otherwise. One trailing newline is dropped from
// stdin input.
func (a *App) readSecretText(cmd *cobra.Command, fromStdin bool, prompt string) (string, error) {
	var (
		raw []byte
		err error
	)
	if fromStdin {
		raw, err = io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxStdinSecret))
		raw = bytes.TrimSuffix(raw, []byte("\n"))
		raw = bytes.TrimSuffix(raw, []byte("\r"))
	} else {
		raw, err = a.readSecret(prompt)
	}
	defer crypto.Wipe(raw)

	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	if len(raw) == 0 {
		return "", ErrEmptySecret
	}
	return string(raw), nil
}
