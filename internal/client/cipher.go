// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/kasa/internal/adapter"
	"github.com/MKhiriev/kasa/models"
)

func (a *App) newCipherCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cipher",
		Aliases: []string{"ciphers"},
		Short:   "Store, recover and manage named secrets",
	}

	cmd.AddCommand(
		a.newCipherCreateCommand(opts),
		a.newCipherListCommand(opts),
		a.newCipherSearchCommand(opts),
		a.newCipherGetCommand(opts),
		a.newCipherDecryptCommand(opts),
		a.newCipherUpdateCommand(opts),
		a.newCipherDeleteCommand(opts),
		a.newCipherMethodsCommand(opts),
	)
	return cmd
}

func (a *App) newCipherCreateCommand(opts *rootOptions) *cobra.Command {
	var (
		method    string
		saltID    int64
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Encrypt and store a secret under NAME",
		Long: `Encrypt a secret and store it under NAME. The secret is read from a hidden
prompt, or from stdin with --stdin. Without --salt-id the first salt is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := a.readSecretText(cmd, fromStdin, "Secret: ")
			if err != nil {
				return err
			}

			req := models.CreateCipherRequest{
				Name:      args[0],
				Plaintext: plaintext,
				Method:    models.ParseCipherMethod(method),
			}
			if cmd.Flags().Changed("salt-id") {
				req.SaltID = &saltID
			}

			res, err := a.adapter.CreateCipher(cmd.Context(), req)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cipher %q stored with id %d (%s, salt %d)\n",
				res.Name, res.CipherID, res.Method, res.SaltIDUsed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "cipher method: aes128, aes256, chacha20 (server default if empty)")
	cmd.Flags().Int64Var(&saltID, "salt-id", 0, "salt to derive the key from (first salt if unset)")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the secret from stdin")
	return cmd
}

func (a *App) newCipherListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List ciphers without decrypting them",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.listCiphers(cmd, opts, "")
		},
	}
}

func (a *App) newCipherSearchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search TEXT",
		Short: "List ciphers whose name contains TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listCiphers(cmd, opts, args[0])
		},
	}
}

func (a *App) listCiphers(cmd *cobra.Command, opts *rootOptions, search string) error {
	ciphers, err := a.adapter.ListCiphers(cmd.Context(), search)
	if err != nil {
		return err
	}
	if opts.json {
		return writeJSON(cmd.OutOrStdout(), ciphers)
	}
	return printCiphers(cmd.OutOrStdout(), ciphers)
}

func (a *App) newCipherGetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show cipher metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cipherID, err := parseID(args[0])
			if err != nil {
				return err
			}
			info, err := a.adapter.GetCipher(cmd.Context(), cipherID)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			return printCiphers(cmd.OutOrStdout(), []models.CipherInfo{info})
		},
	}
}

func (a *App) newCipherDecryptCommand(opts *rootOptions) *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:   "decrypt NAME",
		Short: "Decrypt a secret by name, or by id with --id",
		Long: `Decrypt the secret stored under NAME and print it. When several ciphers share
the name, the candidates are listed instead; decrypt one of them with --id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				res models.DecryptResult
				err error
			)
			if byID {
				cipherID, parseErr := parseID(args[0])
				if parseErr != nil {
					return parseErr
				}
				res, err = a.adapter.DecryptByID(cmd.Context(), cipherID)
			} else {
				res, err = a.adapter.DecryptByName(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			if res.Ambiguous() {
				if opts.json {
					if err = writeJSON(cmd.OutOrStdout(), res); err != nil {
						return err
					}
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "%d ciphers are named %q, pick one with --id:\n", res.MatchesFound, args[0])
					if err = printSuggestions(cmd.OutOrStdout(), res.Suggestions); err != nil {
						return err
					}
				}
				return fmt.Errorf("%w: %q", adapter.ErrAmbiguousName, args[0])
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			if res.DecryptedText != nil {
				fmt.Fprintln(cmd.OutOrStdout(), *res.DecryptedText)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byID, "id", false, "treat the argument as a cipher id")
	return cmd
}

func (a *App) newCipherUpdateCommand(opts *rootOptions) *cobra.Command {
	var (
		name, method      string
		secret, fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename, re-encrypt or replace a secret",
		Long: `Update a cipher. --name renames it, --method re-encrypts it with another
cipher method and --secret replaces the secret, read like for create.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cipherID, err := parseID(args[0])
			if err != nil {
				return err
			}

			req := models.UpdateCipherRequest{ID: cipherID}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("method") {
				m := models.ParseCipherMethod(method)
				req.Method = &m
			}
			if secret || fromStdin {
				plaintext, err := a.readSecretText(cmd, fromStdin, "New secret: ")
				if err != nil {
					return err
				}
				req.Plaintext = &plaintext
			}
			if req.Name == nil && req.Method == nil && req.Plaintext == nil {
				return ErrNothingToDo
			}

			info, err := a.adapter.UpdateCipher(cmd.Context(), req)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			return printCiphers(cmd.OutOrStdout(), []models.CipherInfo{info})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVarP(&method, "method", "m", "", "new cipher method")
	cmd.Flags().BoolVar(&secret, "secret", false, "prompt for a new secret")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the new secret from stdin")
	return cmd
}

func (a *App) newCipherDeleteCommand(opts *rootOptions) *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a cipher by name, or by id with --id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				res models.DeleteCipherResult
				err error
			)
			if byID {
				cipherID, parseErr := parseID(args[0])
				if parseErr != nil {
					return parseErr
				}
				res, err = a.adapter.DeleteCipher(cmd.Context(), cipherID)
			} else {
				res, err = a.adapter.DeleteCipherByName(cmd.Context(), args[0])
			}
			if err != nil {
				var apiErr *adapter.APIError
				if errors.As(err, &apiErr) && len(apiErr.Suggestions) > 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "several ciphers are named %q, delete one with --id:\n", args[0])
					_ = printSuggestions(cmd.OutOrStdout(), apiErr.Suggestions)
				}
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cipher %q (id %d) deleted\n", res.Name, res.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&byID, "id", false, "treat the argument as a cipher id")
	return cmd
}

func (a *App) newCipherMethodsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List supported cipher methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			methods, err := a.adapter.CipherMethods(cmd.Context())
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
