/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/semver/pkg/errors"
	"github.com/mchmarny/semver/pkg/semver"
	"github.com/mchmarny/semver/pkg/serializer"
)

// parseArgs parses every positional argument as a version. The whole
// batch fails on the first malformed argument, so a command never
// operates on a partial input set.
func parseArgs(cmd *cli.Command, minArgs int) ([]semver.Version, []string, error) {
	raw := cmd.Args().Slice()
	if len(raw) < minArgs {
		return nil, nil, errors.New(errors.ErrCodeUsage,
			fmt.Sprintf("%s requires at least %d version argument(s), got %d",
				cmd.Name, minArgs, len(raw)))
	}

	versions := make([]semver.Version, len(raw))
	for i, arg := range raw {
		v, err := semver.Parse(arg)
		if err != nil {
			return nil, nil, errors.WrapWithContext(errors.ErrCodeInvalidVersion,
				"failed to parse version argument", err,
				map[string]any{"argument": arg})
		}
		versions[i] = v
	}
	return versions, raw, nil
}

// parseOutputFormat resolves the format flag into a serializer.Format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", errors.New(errors.ErrCodeUsage,
			fmt.Sprintf("unknown output format: %q", format))
	}
	return format, nil
}

// writeResult serializes a command result to the configured destination.
func writeResult(cmd *cli.Command, result any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		_ = ser.Close()
	}()

	if err := ser.Serialize(result); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to serialize result", err)
	}
	return nil
}
