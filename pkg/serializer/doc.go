/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer formats command results as JSON, YAML, or tables.
//
// A Writer is bound to a Format and an io.Writer (stdout or a file).
// JSON and YAML encode the result via its struct tags; the table format
// asks the result to render itself through the Tabular interface and
// falls back to YAML for results that are not row-shaped.
package serializer
