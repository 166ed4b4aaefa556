/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/semver/pkg/logging"
	"github.com/mchmarny/semver/pkg/serializer"
)

const (
	name           = "semver"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   string(serializer.FormatTable),
		Usage:   "Output format: json, yaml, table",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Value: "info",
		Usage: "Log level: debug, info, warn, error",
	}
)

// New assembles the root command with all subcommands.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:   "Parse, validate, sort, and inspect semantic versions",
		Description: `semver treats every positional argument as a semantic version string
(MAJOR.MINOR.PATCH with optional -prerelease and +build identifiers),
parses the whole batch, and runs one operation over it. A single
malformed version fails the entire invocation with exit code 1.`,
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(),
			sortCmd(),
			descendCmd(),
			fieldCmd("major"),
			fieldCmd("minor"),
			fieldCmd("patch"),
			identifiersCmd("prerelease"),
			identifiersCmd("build"),
			classifyCmd("public"),
			classifyCmd("development"),
			compatCmd(true),
			compatCmd(false),
		},
	}
}

// Execute runs the root command with a signal-aware context.
// This is called by main.main(); a non-nil command error exits 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		slog.Debug("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
