/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/semver/pkg/semver"
)

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		Aliases:               []string{"ascend"},
		EnableShellCompletion: true,
		Usage:                 "Sort versions in ascending precedence order",
		ArgsUsage:             "VERSION [VERSION...]",
		Description: `Sort the given versions by semantic version precedence, lowest first.
Build identifiers do not participate in precedence, so versions that
differ only in build metadata keep their argument order.

# Examples

  semver sort 1.0.0 1.0.0-rc.1 1.0.0-alpha
  semver ascend 2.0.0 0.1.0 1.0.0-beta.11 1.0.0-beta.2`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runSort(cmd, "ascending")
		},
	}
}

func descendCmd() *cli.Command {
	return &cli.Command{
		Name:                  "descend",
		EnableShellCompletion: true,
		Usage:                 "Sort versions in descending precedence order",
		ArgsUsage:             "VERSION [VERSION...]",
		Description: `Sort the given versions by semantic version precedence, highest first.

# Examples

  semver descend 1.0.0 1.0.0-rc.1 2.0.0`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runSort(cmd, "descending")
		},
	}
}

func runSort(cmd *cli.Command, order string) error {
	versions, _, err := parseArgs(cmd, 1)
	if err != nil {
		return err
	}

	slices.SortStableFunc(versions, func(a, b semver.Version) int {
		if order == "descending" {
			return b.Compare(a)
		}
		return a.Compare(b)
	})

	slog.Debug("sorted versions", "order", order, "count", len(versions))

	result := SortResult{
		Order:    order,
		Versions: make([]string, len(versions)),
	}
	for i, v := range versions {
		result.Versions[i] = v.String()
	}
	return writeResult(cmd, result)
}
