// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/kasa/internal/tui"
	"github.com/MKhiriev/kasa/models"
)

func (a *App) newCacheCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Resync or flush the server cache",
	}

	cacheAction := func(use, short, verb string, call func(context.Context) (models.CacheSyncResult, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				res, err := call(cmd.Context())
				if err != nil {
					return err
				}
				if opts.json {
					return writeJSON(cmd.OutOrStdout(), res)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d salts and %d ciphers\n", verb, res.Salts, res.Ciphers)
				return nil
			},
		}
	}

	cmd.AddCommand(
		cacheAction("sync", "Copy every stored record into the cache", "synced", a.adapter.SyncCache),
		cacheAction("flush", "Empty the cache", "flushed", a.adapter.FlushCache),
	)
	return cmd
}

func (a *App) newBackupCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Export a ciphertext-only snapshot to object storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.adapter.Backup(cmd.Context())
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "backup %s written: %d salts, %d ciphers, %d bytes\n",
				res.Object, res.Salts, res.Ciphers, res.Size)
			return nil
		},
	}
}

func (a *App) newHealthCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.adapter.Health(cmd.Context())
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), status)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", status.Status)
			names := make([]string, 0, len(status.Checks))
			for name := range status.Checks {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", name, status.Checks[name])
			}
			return nil
		},
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "client: %s\n", a.buildInfo)

			serverVersion, err := a.adapter.Version(cmd.Context())
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "server: unavailable (%v)\n", err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "server: %s\n", serverVersion)
			return nil
		},
	}
}

func (a *App) newShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.shell.Run(cmd.Context())
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		},
	}
}
