// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/kasa/internal/utils"
)

type rootOptions struct {
	json bool
}

func (a *App) newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "kasa",
		Short: "Store and recover named secrets on a kasa server",
		Long: `kasa talks to a kasa server over HTTP. Secrets are encrypted on the
server with a key derived from its master key and a stored salt.

The server address comes from ADAPTER_SERVER_URL (default http://localhost:8080).`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(utils.WithTraceID(cmd.Context(), a.traceIDs.Generate()))
		},
	}

	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print results as JSON")

	root.AddCommand(
		a.newSaltCommand(opts),
		a.newCipherCommand(opts),
		a.newCacheCommand(opts),
		a.newBackupCommand(opts),
		a.newHealthCommand(opts),
		a.newVersionCommand(),
		a.newShellCommand(),
	)

	return root
}
