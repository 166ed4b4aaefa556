/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/

// Package semver implements a strongly-typed Semantic Versioning 2.0
// value: parsing, validation, total-order precedence comparison, and
// canonical rendering.
//
// # Overview
//
// A Version holds a major.minor.patch triple plus ordered pre-release and
// build identifier sequences. Identifiers are validated against the
// semver grammar and lower-cased on ingestion, so every live Version is
// well-formed. Construction either fully succeeds or fails with a
// wrapped sentinel error; there is no partially-constructed state.
//
//	v, err := semver.Parse("1.0.0-rc.1+build.5")
//	if err != nil { ... }
//	fmt.Println(v.String())          // 1.0.0-rc.1+build.5
//	fmt.Println(v.Compare(semver.New(1, 0, 0))) // -1, release outranks rc
//
// # Precedence
//
// Compare implements semver precedence: the numeric triple first, then
// release-over-pre-release, then identifier-by-identifier comparison
// where numeric identifiers compare by magnitude and sort below
// alphanumeric ones. Build identifiers never participate in Equals,
// Compare, or Hash; they affect rendering only.
//
// # Deviations
//
// The leading-zero rule is stricter than the published grammar: any
// identifier whose first character is '0' is rejected, including the bare
// identifier "0". See validIdentifier.
package semver
