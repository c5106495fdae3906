// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/kasa/models"
)

func (a *App) newSaltCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salt",
		Short: "Manage salts",
		Long:  "Create, list and delete salts. The salt with id 1 is the first salt, used by default for new ciphers.",
	}

	cmd.AddCommand(
		a.newSaltCreateCommand(opts),
		a.newSaltListCommand(opts),
		a.newSaltGetCommand(opts),
		a.newSaltFirstCommand(opts),
		a.newSaltDeleteCommand(),
		a.newSaltMethodsCommand(opts),
		a.newGenerateKeyCommand(opts),
	)
	return cmd
}

func (a *App) newSaltCreateCommand(opts *rootOptions) *cobra.Command {
	var method, value string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a salt",
		Long:  "Create a salt. Without --value the server generates a random one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := models.CreateSaltRequest{Method: models.ParseSaltMethod(method)}
			if value != "" {
				raw, err := hex.DecodeString(value)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrInvalidHexSalt, err)
				}
				req.Value = raw
			}

			salt, err := a.adapter.CreateSalt(cmd.Context(), req)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), salt)
			}
			return printSalts(cmd.OutOrStdout(), []models.SaltInfo{salt})
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "salt method: sha256, sha512, md5, argon2 (server default if empty)")
	cmd.Flags().StringVar(&value, "value", "", "salt value, hex encoded")
	return cmd
}

func (a *App) newSaltListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List salts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			salts, err := a.adapter.ListSalts(cmd.Context())
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), salts)
			}
			return printSalts(cmd.OutOrStdout(), salts)
		},
	}
}

func (a *App) newSaltGetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a salt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saltID, err := parseID(args[0])
			if err != nil {
				return err
			}
			salt, err := a.adapter.GetSalt(cmd.Context(), saltID)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), salt)
			}
			return printSalts(cmd.OutOrStdout(), []models.SaltInfo{salt})
		},
	}
}

func (a *App) newSaltFirstCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "first",
		Short: "Show the first salt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			salt, err := a.adapter.FirstSalt(cmd.Context())
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), salt)
			}
			return printSalts(cmd.OutOrStdout(), []models.SaltInfo{salt})
		},
	}
}

func (a *App) newSaltDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a salt no cipher uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saltID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err = a.adapter.DeleteSalt(cmd.Context(), saltID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "salt %d deleted\n", saltID)
			return nil
		},
	}
}

func (a *App) newSaltMethodsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List supported salt methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			methods, err := a.adapter.SaltMethods(cmd.Context())
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), methods)
			}
			for _, m := range methods {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}

func (a *App) newGenerateKeyCommand(opts *rootOptions) *cobra.Command {
	var (
		method, cipher string
		fromStdin      bool
	)

	cmd := &cobra.Command{
		Use:   "generate-key",
		Short: "Create a salt and derive a key from your own secret",
		Long: `Create a salt and derive a key from a secret you type. The derived key is
printed hex encoded; the secret itself is never stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := a.readSecretText(cmd, fromStdin, "Secret: ")
			if err != nil {
				return err
			}

			key, err := a.adapter.GenerateKey(cmd.Context(), models.GenerateKeyRequest{
				Secret: secret,
				Method: models.ParseSaltMethod(method),
				Cipher: models.ParseCipherMethod(cipher),
			})
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), key)
			}

			tw := newTable(cmd.OutOrStdout(), "SALT", "METHOD", "CIPHER", "KEY")
			row(tw, id(key.SaltID), key.Method.String(), key.Cipher.String(), key.DerivedKey)
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "salt method (server default if empty)")
	cmd.Flags().StringVar(&cipher, "cipher", "", "cipher method the key is sized for (server default if empty)")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the secret from stdin")
	return cmd
}
