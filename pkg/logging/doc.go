/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging for the semver CLI.
//
// It wraps the standard library slog package with project defaults:
// JSON output to stderr, module/version context on every record, source
// location at debug level, and level configuration via the LOG_LEVEL
// environment variable (debug, info, warn, error; case-insensitive,
// WARNING accepted as an alias for WARN, info when unset).
//
// Set the default logger early in main:
//
//	logging.SetDefaultStructuredLogger("semver", version)
//	slog.Info("starting", "args", len(os.Args))
package logging
