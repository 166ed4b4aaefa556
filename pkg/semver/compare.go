/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package semver

import "strings"

// Comparison results returned by Compare.
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

// Compare returns the precedence order of v relative to other:
// -1 if v < other, 0 if v == other, 1 if v > other.
// Build identifiers are ignored entirely, so Compare == 0 agrees with
// Equals. Fields are compared, never subtracted, so large values cannot
// wrap the result.
//
// Precedence follows Semantic Versioning 2.0: the numeric triple decides
// first; at an equal triple a release outranks any pre-release; otherwise
// pre-release identifiers are compared left to right, with a longer
// sequence winning after an equal prefix.
func (v Version) Compare(other Version) int {
	if c := compareUint(v.major, other.major); c != Equal {
		return c
	}
	if c := compareUint(v.minor, other.minor); c != Equal {
		return c
	}
	if c := compareUint(v.patch, other.patch); c != Equal {
		return c
	}

	// Release outranks pre-release at the same triple.
	switch {
	case len(v.preRelease) == 0 && len(other.preRelease) == 0:
		return Equal
	case len(v.preRelease) == 0:
		return Greater
	case len(other.preRelease) == 0:
		return Less
	}

	n := min(len(v.preRelease), len(other.preRelease))
	for i := 0; i < n; i++ {
		if c := compareIdentifier(v.preRelease[i], other.preRelease[i]); c != Equal {
			return c
		}
	}

	// Equal prefix: the longer sequence has higher precedence,
	// e.g. 1.0.0-alpha < 1.0.0-alpha.1.
	return compareUint(uint64(len(v.preRelease)), uint64(len(other.preRelease)))
}

// Less returns true if v has lower precedence than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) == Less
}

// compareIdentifier orders a single pre-release identifier pair: two
// numeric identifiers compare by magnitude, a numeric identifier sorts
// below an alphanumeric one, and two alphanumeric identifiers compare
// bytewise with a strict prefix sorting lower.
func compareIdentifier(a, b string) int {
	aNum, bNum := isNumeric(a), isNumeric(b)
	switch {
	case aNum && bNum:
		// Validation forbids leading zeros, so digit count is a faithful
		// magnitude proxy and no integer parse is needed.
		if c := compareUint(uint64(len(a)), uint64(len(b))); c != Equal {
			return c
		}
		return strings.Compare(a, b)
	case aNum:
		return Less
	case bNum:
		return Greater
	default:
		return strings.Compare(a, b)
	}
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// isNumeric reports whether the identifier consists entirely of ASCII
// digits.
func isNumeric(id string) bool {
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return len(id) > 0
}
