/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Parse version strings and emit their canonical forms",
		ArgsUsage:             "VERSION [VERSION...]",
		Description: `Parse every argument as a semantic version and emit the canonical
rendering for each. Identifiers are lower-cased, so the canonical form
may differ from the input.

A version must be MAJOR.MINOR.PATCH with optional -prerelease and
+build identifier sequences. Pre-release and build identifiers are
dot-separated, non-empty, ASCII alphanumeric or hyphen, and must not
start with 0.

# Examples

Validate a single version:
  semver validate 1.0.0-rc.1

Validate a batch (any invalid version fails the whole batch):
  semver validate 1.0.0 2.1.0-alpha.1+sha.5114f85 0.9.12`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			versions, raw, err := parseArgs(cmd, 1)
			if err != nil {
				return err
			}

			slog.Debug("validated versions", "count", len(versions))

			result := ValidateResult{Versions: make([]VersionItem, len(versions))}
			for i, v := range versions {
				result.Versions[i] = VersionItem{
					Input:     raw[i],
					Canonical: v.String(),
				}
			}
			return writeResult(cmd, result)
		},
	}
}
