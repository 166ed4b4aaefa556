/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"strconv"
	"strings"
)

// VersionItem pairs a raw input with its canonical rendering.
type VersionItem struct {
	Input     string `json:"input" yaml:"input"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

// ValidateResult is the output of the validate command.
type ValidateResult struct {
	Versions []VersionItem `json:"versions" yaml:"versions"`
}

// Headers implements serializer.Tabular.
func (r ValidateResult) Headers() []string { return []string{"INPUT", "CANONICAL"} }

// Rows implements serializer.Tabular.
func (r ValidateResult) Rows() [][]string {
	rows := make([][]string, len(r.Versions))
	for i, v := range r.Versions {
		rows[i] = []string{v.Input, v.Canonical}
	}
	return rows
}

// SortResult is the output of the sort and descend commands: canonical
// versions in precedence order.
type SortResult struct {
	Order    string   `json:"order" yaml:"order"`
	Versions []string `json:"versions" yaml:"versions"`
}

// Headers implements serializer.Tabular.
func (r SortResult) Headers() []string { return []string{"VERSION"} }

// Rows implements serializer.Tabular.
func (r SortResult) Rows() [][]string {
	rows := make([][]string, len(r.Versions))
	for i, v := range r.Versions {
		rows[i] = []string{v}
	}
	return rows
}

// FieldItem carries one numeric field projection.
type FieldItem struct {
	Version string `json:"version" yaml:"version"`
	Value   uint64 `json:"value" yaml:"value"`
}

// FieldResult is the output of the major, minor, and patch commands.
type FieldResult struct {
	Field    string      `json:"field" yaml:"field"`
	Versions []FieldItem `json:"versions" yaml:"versions"`
}

// Headers implements serializer.Tabular.
func (r FieldResult) Headers() []string { return []string{"VERSION", "VALUE"} }

// Rows implements serializer.Tabular.
func (r FieldResult) Rows() [][]string {
	rows := make([][]string, len(r.Versions))
	for i, v := range r.Versions {
		rows[i] = []string{v.Version, strconv.FormatUint(v.Value, 10)}
	}
	return rows
}

// IdentifierItem carries one identifier sequence projection.
type IdentifierItem struct {
	Version     string   `json:"version" yaml:"version"`
	Identifiers []string `json:"identifiers" yaml:"identifiers"`
}

// IdentifierResult is the output of the prerelease and build commands.
type IdentifierResult struct {
	Kind     string           `json:"kind" yaml:"kind"`
	Versions []IdentifierItem `json:"versions" yaml:"versions"`
}

// Headers implements serializer.Tabular.
func (r IdentifierResult) Headers() []string { return []string{"VERSION", "IDENTIFIERS"} }

// Rows implements serializer.Tabular.
func (r IdentifierResult) Rows() [][]string {
	rows := make([][]string, len(r.Versions))
	for i, v := range r.Versions {
		rows[i] = []string{v.Version, strings.Join(v.Identifiers, ".")}
	}
	return rows
}

// ClassificationItem carries one classification query answer.
type ClassificationItem struct {
	Version string `json:"version" yaml:"version"`
	Result  bool   `json:"result" yaml:"result"`
}

// ClassificationResult is the output of the public and development
// commands.
type ClassificationResult struct {
	Query    string               `json:"query" yaml:"query"`
	Versions []ClassificationItem `json:"versions" yaml:"versions"`
}

// Headers implements serializer.Tabular.
func (r ClassificationResult) Headers() []string { return []string{"VERSION", "RESULT"} }

// Rows implements serializer.Tabular.
func (r ClassificationResult) Rows() [][]string {
	rows := make([][]string, len(r.Versions))
	for i, v := range r.Versions {
		rows[i] = []string{v.Version, strconv.FormatBool(v.Result)}
	}
	return rows
}

// CompatibilityItem reports whether one version shares its major number
// with the reference.
type CompatibilityItem struct {
	Version string `json:"version" yaml:"version"`
	Result  bool   `json:"result" yaml:"result"`
}

// CompatibilityResult is the output of the compatible and incompatible
// commands: versions 2..n scanned against the first.
type CompatibilityResult struct {
	Query     string              `json:"query" yaml:"query"`
	Reference string              `json:"reference" yaml:"reference"`
	Versions  []CompatibilityItem `json:"versions" yaml:"versions"`
}

// Headers implements serializer.Tabular.
func (r CompatibilityResult) Headers() []string { return []string{"VERSION", "RESULT"} }

// Rows implements serializer.Tabular.
func (r CompatibilityResult) Rows() [][]string {
	rows := make([][]string, len(r.Versions))
	for i, v := range r.Versions {
		rows[i] = []string{v.Version, strconv.FormatBool(v.Result)}
	}
	return rows
}
