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

func compatCmd(compatible bool) *cli.Command {
	name := "compatible"
	usage := "Report whether each version shares its major number with the first"
	if !compatible {
		name = "incompatible"
		usage = "Report whether each version differs in major number from the first"
	}

	return &cli.Command{
		Name:                  name,
		EnableShellCompletion: true,
		Usage:                 usage,
		ArgsUsage:             "REFERENCE VERSION [VERSION...]",
		Description: `Scan versions 2..n against the first (the reference). Two versions are
considered compatible when they share the same major version number;
pre-release, build, minor, and patch play no part in the scan.

# Examples

  semver compatible 1.0.0 1.2.3 1.9.0-rc.1 2.0.0
  semver incompatible 2.0.0 1.9.9 2.1.0`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			versions, _, err := parseArgs(cmd, 2)
			if err != nil {
				return err
			}

			reference := versions[0]
			slog.Debug("scanning versions against reference",
				"reference", reference.String(),
				"count", len(versions)-1)

			result := CompatibilityResult{
				Query:     name,
				Reference: reference.String(),
				Versions:  make([]CompatibilityItem, 0, len(versions)-1),
			}
			for _, v := range versions[1:] {
				same := v.Major() == reference.Major()
				result.Versions = append(result.Versions, CompatibilityItem{
					Version: v.String(),
					Result:  same == compatible,
				})
			}
			return writeResult(cmd, result)
		},
	}
}
