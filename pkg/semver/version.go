/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package semver

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"slices"
	"strings"
)

// Error types for version parsing and identifier validation failures
var (
	ErrEmptyVersion     = errors.New("version string is empty")
	ErrFieldCount       = errors.New("version must have exactly 3 numeric fields")
	ErrNonNumeric       = errors.New("version field is not an unsigned number")
	ErrEmptyIdentifier  = errors.New("identifier is empty")
	ErrLeadingZero      = errors.New("identifier starts with 0")
	ErrIllegalCharacter = errors.New("identifier contains a character outside [0-9a-z-]")
)

// Version is a Semantic Versioning 2.0 value: a major.minor.patch triple
// plus ordered pre-release and build identifier sequences. Identifiers are
// validated and lower-cased on ingestion, so a live Version always holds a
// renderable, well-formed value. The zero Version is valid and renders as
// "0.0.0".
//
// Build identifiers affect rendering only; they are excluded from Equals,
// Compare, and Hash.
type Version struct {
	major uint64
	minor uint64
	patch uint64

	preRelease []string
	build      []string
}

// New creates a Version from its numeric triple with no pre-release or
// build identifiers. It cannot fail.
func New(major, minor, patch uint64) Version {
	return Version{
		major: major,
		minor: minor,
		patch: patch,
	}
}

// NewFull creates a Version from its numeric triple plus raw pre-release
// and build strings, each split on ".". An empty input string means no
// identifiers, not a single empty identifier. Every identifier is
// lower-cased and validated; the first invalid one fails the whole
// construction and no value is produced.
func NewFull(major, minor, patch uint64, preRelease, build string) (Version, error) {
	pre, err := splitIdentifiers(preRelease)
	if err != nil {
		return Version{}, err
	}
	bld, err := splitIdentifiers(build)
	if err != nil {
		return Version{}, err
	}

	v := New(major, minor, patch)
	v.preRelease = pre
	v.build = bld
	return v, nil
}

// Major returns the major version number.
func (v Version) Major() uint64 { return v.major }

// Minor returns the minor version number.
func (v Version) Minor() uint64 { return v.minor }

// Patch returns the patch version number.
func (v Version) Patch() uint64 { return v.patch }

// PreRelease returns a copy of the ordered pre-release identifiers.
func (v Version) PreRelease() []string { return slices.Clone(v.preRelease) }

// Build returns a copy of the ordered build identifiers.
func (v Version) Build() []string { return slices.Clone(v.build) }

// SetPreRelease replaces the whole pre-release sequence after lower-casing
// and validating every identifier. On failure the prior sequence is left
// unchanged. Calling it with no arguments clears the sequence.
func (v *Version) SetPreRelease(identifiers ...string) error {
	ids, err := normalizeIdentifiers(identifiers)
	if err != nil {
		return err
	}
	v.preRelease = ids
	return nil
}

// SetBuild replaces the whole build sequence after lower-casing and
// validating every identifier. On failure the prior sequence is left
// unchanged. Calling it with no arguments clears the sequence.
func (v *Version) SetBuild(identifiers ...string) error {
	ids, err := normalizeIdentifiers(identifiers)
	if err != nil {
		return err
	}
	v.build = ids
	return nil
}

// IncrementMajor bumps major and resets minor, patch, pre-release, and
// build.
func (v *Version) IncrementMajor() {
	v.major++
	v.minor = 0
	v.patch = 0
	v.preRelease = nil
	v.build = nil
}

// IncrementMinor bumps minor and resets patch, pre-release, and build.
func (v *Version) IncrementMinor() {
	v.minor++
	v.patch = 0
	v.preRelease = nil
	v.build = nil
}

// IncrementPatch bumps patch and resets pre-release and build.
func (v *Version) IncrementPatch() {
	v.patch++
	v.preRelease = nil
	v.build = nil
}

// IsInitialDevelopment returns true if the version is in initial
// development (major version 0, anything may change at any time).
func (v Version) IsInitialDevelopment() bool { return v.major == 0 }

// IsPublic returns true if the version declares a public API
// (major version 1 or higher).
func (v Version) IsPublic() bool { return v.major != 0 }

// Equals returns true if v and other have the same numeric triple and the
// same ordered pre-release identifiers. Build identifiers are ignored:
// two versions differing only in build metadata are equal.
func (v Version) Equals(other Version) bool {
	return v.major == other.major &&
		v.minor == other.minor &&
		v.patch == other.patch &&
		slices.Equal(v.preRelease, other.preRelease)
}

// Hash returns a structural hash over (major, minor, patch, preRelease),
// consistent with Equals: build identifiers are excluded, and equal
// versions hash equal.
func (v Version) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d.%d.%d", v.major, v.minor, v.patch)
	for _, id := range v.preRelease {
		_, _ = io.WriteString(h, "-")
		_, _ = io.WriteString(h, id)
	}
	return h.Sum64()
}

// String returns the canonical rendering: MAJOR.MINOR.PATCH, then "-" and
// the dot-joined pre-release identifiers if any, then "+" and the
// dot-joined build identifiers if any.
func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.major, v.minor, v.patch)
	if len(v.preRelease) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.preRelease, "."))
	}
	if len(v.build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.build, "."))
	}
	return b.String()
}

// splitIdentifiers turns a raw dot-separated identifier string into a
// validated, lower-cased sequence. An empty input means no identifiers.
func splitIdentifiers(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	return normalizeIdentifiers(strings.Split(s, "."))
}

// normalizeIdentifiers lower-cases and validates every identifier,
// returning a fresh slice so the Version owns its sequence outright.
func normalizeIdentifiers(identifiers []string) ([]string, error) {
	if len(identifiers) == 0 {
		return nil, nil
	}
	ids := make([]string, len(identifiers))
	for i, id := range identifiers {
		id = strings.ToLower(id)
		if err := validIdentifier(id); err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// validIdentifier enforces the identifier grammar: non-empty, first byte
// not '0', every byte ASCII alphanumeric or hyphen. The leading-zero rule
// is strict: the bare identifier "0" is rejected too, not just multi-digit
// zero-prefixed ones.
func validIdentifier(id string) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	if id[0] == '0' {
		return fmt.Errorf("%w: %q", ErrLeadingZero, id)
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c == '-' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') {
			continue
		}
		return fmt.Errorf("%w: %q", ErrIllegalCharacter, id)
	}
	return nil
}
