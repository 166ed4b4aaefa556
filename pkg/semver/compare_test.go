/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package semver

import (
	"testing"

	masterminds "github.com/Masterminds/semver/v3"
)

// precedenceChain is the worked example from the Semantic Versioning
// spec, in ascending order.
var precedenceChain = []string{
	"1.0.0-alpha",
	"1.0.0-alpha.1",
	"1.0.0-alpha.beta",
	"1.0.0-beta",
	"1.0.0-beta.2",
	"1.0.0-beta.11",
	"1.0.0-rc.1",
	"1.0.0",
}

func TestComparePrecedenceChain(t *testing.T) {
	for i, low := range precedenceChain {
		for j, high := range precedenceChain {
			a, b := MustParse(low), MustParse(high)
			want := Equal
			switch {
			case i < j:
				want = Less
			case i > j:
				want = Greater
			}
			if got := a.Compare(b); got != want {
				t.Errorf("Compare(%q, %q) = %d, want %d", low, high, got, want)
			}
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "major decides", a: "2.0.0", b: "1.9.9", want: Greater},
		{name: "minor decides", a: "1.2.0", b: "1.10.0", want: Less},
		{name: "patch decides", a: "1.0.10", b: "1.0.2", want: Greater},
		{name: "equal triples", a: "1.2.3", b: "1.2.3", want: Equal},
		{name: "release outranks pre-release", a: "1.0.0", b: "1.0.0-rc.9", want: Greater},
		{name: "pre-release below release", a: "1.0.0-alpha", b: "1.0.0", want: Less},
		{name: "numeric below alphanumeric", a: "1.0.0-1", b: "1.0.0-alpha", want: Less},
		{name: "numeric by magnitude not lexically", a: "1.0.0-11", b: "1.0.0-9", want: Greater},
		{name: "alphanumeric bytewise", a: "1.0.0-alpha", b: "1.0.0-beta", want: Less},
		{name: "strict prefix sorts lower", a: "1.0.0-rc", b: "1.0.0-rcx", want: Less},
		{name: "longer sequence wins on equal prefix", a: "1.0.0-alpha", b: "1.0.0-alpha.1", want: Less},
		{name: "build ignored", a: "1.0.0+x", b: "1.0.0+y.z", want: Equal},
		{name: "build ignored with pre-release", a: "1.0.0-rc.1+a", b: "1.0.0-rc.1+b", want: Equal},
		{name: "large fields compared not subtracted", a: "18446744073709551615.0.0", b: "1.0.0", want: Greater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestCompareTotalOrder(t *testing.T) {
	corpus := []string{
		"0.0.0", "0.0.1", "0.1.0", "1.0.0-alpha", "1.0.0-alpha.1",
		"1.0.0-alpha.beta", "1.0.0-beta.11", "1.0.0-rc.1", "1.0.0",
		"1.0.0+build", "1.2.3", "2.0.0-1", "2.0.0",
	}

	versions := make([]Version, len(corpus))
	for i, s := range corpus {
		versions[i] = MustParse(s)
	}

	// Exactly one of <, ==, > holds for every pair, antisymmetrically.
	for _, a := range versions {
		for _, b := range versions {
			ab, ba := a.Compare(b), b.Compare(a)
			if ab != -ba {
				t.Errorf("Compare(%q, %q) = %d but Compare(%q, %q) = %d", a, b, ab, b, a, ba)
			}
			if ab == Equal && !a.Equals(b) {
				t.Errorf("Compare says %q == %q but Equals disagrees", a, b)
			}
		}
	}

	// Transitivity across every ordered triple.
	for _, a := range versions {
		for _, b := range versions {
			for _, c := range versions {
				if a.Compare(b) <= Equal && b.Compare(c) <= Equal && a.Compare(c) > Equal {
					t.Errorf("transitivity violated: %q <= %q <= %q but %q > %q", a, b, c, a, c)
				}
			}
		}
	}
}

func TestLess(t *testing.T) {
	a, b := MustParse("1.0.0-alpha"), MustParse("1.0.0")
	if !a.Less(b) {
		t.Errorf("%q should be less than %q", a, b)
	}
	if b.Less(a) || a.Less(a) {
		t.Errorf("Less is not a strict order for %q, %q", a, b)
	}
}

// TestCompareAgainstMasterminds cross-checks precedence against the
// Masterminds semver implementation on inputs both accept. The strict
// leading-zero rule makes this implementation reject some versions
// Masterminds allows, so the corpus stays inside the intersection.
func TestCompareAgainstMasterminds(t *testing.T) {
	corpus := []string{
		"0.0.1", "0.1.0", "0.10.0", "1.0.0-alpha", "1.0.0-alpha.1",
		"1.0.0-alpha.beta", "1.0.0-beta", "1.0.0-beta.2", "1.0.0-beta.11",
		"1.0.0-rc.1", "1.0.0", "1.0.1", "1.1.0", "1.2.3-x-y-z.1",
		"2.0.0", "10.2.3",
	}

	for _, sa := range corpus {
		for _, sb := range corpus {
			a, b := MustParse(sa), MustParse(sb)
			ma, err := masterminds.StrictNewVersion(sa)
			if err != nil {
				t.Fatalf("oracle rejected %q: %v", sa, err)
			}
			mb, err := masterminds.StrictNewVersion(sb)
			if err != nil {
				t.Fatalf("oracle rejected %q: %v", sb, err)
			}
			if got, want := a.Compare(b), ma.Compare(mb); got != want {
				t.Errorf("Compare(%q, %q) = %d, oracle says %d", sa, sb, got, want)
			}
		}
	}
}
