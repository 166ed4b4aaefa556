/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the semver tool.
//
// # Overview
//
// Every subcommand takes one or more raw version strings as positional
// arguments, parses the whole batch through pkg/semver, and runs a single
// operation over it. One malformed version fails the entire invocation.
//
// # Commands
//
// validate - parse versions and emit canonical forms:
//
//	semver validate 1.0.0-RC.1
//
// sort (alias ascend) / descend - precedence ordering:
//
//	semver sort 1.0.0 1.0.0-rc.1 1.0.0-alpha
//	semver descend 2.0.0 1.0.0
//
// major / minor / patch - numeric field projection:
//
//	semver major 1.2.3 10.20.30
//
// prerelease / build - identifier sequence projection:
//
//	semver prerelease 1.0.0-rc.1+sha.5114f85
//
// public / development - classification queries:
//
//	semver public 0.9.0 1.0.0
//
// compatible / incompatible - major-field scan against the first version:
//
//	semver compatible 1.0.0 1.2.3 2.0.0
//
// # Global Flags
//
//	--output, -o    Output file path (default: stdout)
//	--format, -f    Output format: json, yaml, table (default: table)
//	--log-level     Log verbosity: debug, info, warn, error
//
// # Exit Codes
//
//	0  Success
//	1  Usage error or parse failure
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to:
//   - pkg/semver - version parsing, comparison, rendering
//   - pkg/serializer - output formatting
//   - pkg/errors - structured boundary errors
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/semver/pkg/cli.version=1.0.0'"
package cli
