// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
	"os"

	"github.com/howeyc/gopass"

	"github.com/MKhiriev/kasa/internal/adapter"
	"github.com/MKhiriev/kasa/internal/logger"
	"github.com/MKhiriev/kasa/internal/utils"
	"github.com/MKhiriev/kasa/models"
)

type App struct {
	adapter   adapter.ServerAdapter
	shell     Shell
	buildInfo models.AppBuildInfo

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// readSecret prompts on the terminal without echo.
	readSecret func(prompt string) ([]byte, error)
	traceIDs   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, shell Shell, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		adapter:    serverAdapter,
		shell:      shell,
		buildInfo:  buildInfo,
		in:         os.Stdin,
		out:        os.Stdout,
		errOut:     os.Stderr,
		readSecret: promptSecret,
		traceIDs:   utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Strs("args", commandPath(args)).Msg("command failed")
		return err
	}
	return nil
}

func promptSecret(prompt string) ([]byte, error) {
	return gopass.GetPasswdPrompt(prompt, true, os.Stdin, os.Stderr)
}

// commandPath keeps the leading subcommand words of args for logging.
// Positional values may be cipher names and flags may carry secrets, so
// both are dropped.
func commandPath(args []string) []string {
	out := make([]string, 0, 2)
	for _, arg := range args {
		if len(out) == 2 || len(arg) == 0 || arg[0] == '-' {
			break
		}
		out = append(out, arg)
	}
	return out
}
