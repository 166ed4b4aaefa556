/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func classifyCmd(query string) *cli.Command {
	usage := "Report whether each version declares a public API (major > 0)"
	if query == "development" {
		usage = "Report whether each version is in initial development (major == 0)"
	}

	return &cli.Command{
		Name:                  query,
		EnableShellCompletion: true,
		Usage:                 usage,
		ArgsUsage:             "VERSION [VERSION...]",
		Description: fmt.Sprintf(`Classify every given version. A version with major 0 is in initial
development and implies no stability guarantee; a version with major 1
or higher declares a public API. The two queries are exact negations.

# Examples

  semver %s 0.9.0 1.0.0 2.1.3-rc.1`, query),
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			versions, _, err := parseArgs(cmd, 1)
			if err != nil {
				return err
			}

			result := ClassificationResult{
				Query:    query,
				Versions: make([]ClassificationItem, len(versions)),
			}
			for i, v := range versions {
				answer := v.IsPublic()
				if query == "development" {
					answer = v.IsInitialDevelopment()
				}
				result.Versions[i] = ClassificationItem{
					Version: v.String(),
					Result:  answer,
				}
			}
			return writeResult(cmd, result)
		},
	}
}
