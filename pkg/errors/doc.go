/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types for the CLI boundary,
// classifying failures for programmatic handling while preserving the
// underlying cause for errors.Is and errors.As.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidVersion,
//	    "failed to parse version argument",
//	    parseErr,
//	    map[string]any{"argument": raw},
//	)
package errors
