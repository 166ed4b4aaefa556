/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a version string into a Version. The string is split on
// the first "+" (build identifiers), then the remaining prefix on the
// first "-" (pre-release identifiers), and the numeric prefix on "." into
// exactly three base-10 unsigned fields. A wrong field count, a
// non-numeric field, an overflowing field, or an invalid identifier fails
// the whole parse.
//
// Parsing is strict: no "v" prefix, no partial versions like "1.2".
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	rest, build, _ := strings.Cut(s, "+")
	core, preRelease, _ := strings.Cut(rest, "-")

	fields := strings.Split(core, ".")
	if len(fields) != 3 {
		return Version{}, fmt.Errorf("%w: %q has %d", ErrFieldCount, core, len(fields))
	}

	var nums [3]uint64
	for i, field := range fields {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, field)
		}
		nums[i] = n
	}

	return NewFull(nums[0], nums[1], nums[2], preRelease, build)
}

// MustParse parses a version string and panics if parsing fails. Only use
// this for hardcoded strings or in tests; for user input or runtime data,
// use Parse and handle the error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}
