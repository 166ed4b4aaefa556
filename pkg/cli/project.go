/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/semver/pkg/semver"
)

func fieldCmd(field string) *cli.Command {
	return &cli.Command{
		Name:                  field,
		EnableShellCompletion: true,
		Usage:                 fmt.Sprintf("Print the %s version number of each version", field),
		ArgsUsage:             "VERSION [VERSION...]",
		Description: fmt.Sprintf(`Project the %s field of every given version.

# Examples

  semver %s 1.2.3 10.20.30-rc.1`, field, field),
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			versions, _, err := parseArgs(cmd, 1)
			if err != nil {
				return err
			}

			result := FieldResult{
				Field:    field,
				Versions: make([]FieldItem, len(versions)),
			}
			for i, v := range versions {
				result.Versions[i] = FieldItem{
					Version: v.String(),
					Value:   fieldValue(v, field),
				}
			}
			return writeResult(cmd, result)
		},
	}
}

func fieldValue(v semver.Version, field string) uint64 {
	switch field {
	case "minor":
		return v.Minor()
	case "patch":
		return v.Patch()
	default:
		return v.Major()
	}
}

func identifiersCmd(kind string) *cli.Command {
	usage := "Print the pre-release identifiers of each version"
	if kind == "build" {
		usage = "Print the build identifiers of each version"
	}

	return &cli.Command{
		Name:                  kind,
		EnableShellCompletion: true,
		Usage:                 usage,
		ArgsUsage:             "VERSION [VERSION...]",
		Description: fmt.Sprintf(`Project the ordered %s identifier sequence of every given version.
Versions without %s identifiers produce an empty sequence.

# Examples

  semver %s 1.0.0-rc.1+sha.5114f85 2.0.0`, kind, kind, kind),
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			versions, _, err := parseArgs(cmd, 1)
			if err != nil {
				return err
			}

			result := IdentifierResult{
				Kind:     kind,
				Versions: make([]IdentifierItem, len(versions)),
			}
			for i, v := range versions {
				ids := v.PreRelease()
				if kind == "build" {
					ids = v.Build()
				}
				result.Versions[i] = IdentifierItem{
					Version:     v.String(),
					Identifiers: ids,
				}
			}
			return writeResult(cmd, result)
		},
	}
}
