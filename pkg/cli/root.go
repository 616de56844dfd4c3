/*
Copyright (c) 2026, the aza-pg authors. All rights reserved.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/azadata/aza-pg/pkg/errors"
	"github.com/azadata/aza-pg/pkg/logging"
)

const (
	name           = "azapg"
	versionDefault = "dev"
)

// Exit codes. Drift is distinct from fatal errors so CI can tell
// "regenerate and commit" apart from "the tool is broken".
const (
	exitOK    = 0
	exitError = 1
	exitDrift = 3
)

// overridden during build with ldflags
var (
	version = versionDefault
	commit  = "unknown"
)

// Root assembles the azapg command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Manifest-driven generation pipeline for the aza-pg PostgreSQL image",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars(logging.LevelEnvVar),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCmd(),
			checkCmd(),
			validateCmd(),
			statsCmd(),
			publishCmd(),
		},
	}
}

// Execute runs the CLI and exits the process with the mapped exit code.
// Called by main.main().
func Execute() {
	// Env-driven default so anything logged before flag parsing is already
	// structured; Before reinstalls the logger with the parsed level.
	logging.SetDefaultStructuredLogger(name, version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Root().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.HasCode(err, errors.ErrCodeDriftDetected) {
			os.Exit(exitDrift)
		}
		os.Exit(exitError)
	}
	os.Exit(exitOK)
}
