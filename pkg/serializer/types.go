/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

// Format represents the output format type.
type Format string

const (
	// FormatJSON outputs results in JSON format.
	FormatJSON Format = "json"
	// FormatYAML outputs results in YAML format.
	FormatYAML Format = "yaml"
	// FormatTable outputs results in table format.
	FormatTable Format = "table"
)

// IsUnknown returns true if the format is not one of the supported ones.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// Serializer writes a result to its configured destination.
type Serializer interface {
	Serialize(result any) error
}

// Tabular is implemented by result types that know how to render
// themselves as table rows. The table format requires it; JSON and YAML
// use the type's struct tags instead.
type Tabular interface {
	Headers() []string
	Rows() [][]string
}
