/*
Copyright © 2026 semver authors
SPDX-License-Identifier: Apache-2.0
*/
package semver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New(1, 2, 3)

	assert.Equal(t, uint64(1), v.Major())
	assert.Equal(t, uint64(2), v.Minor())
	assert.Equal(t, uint64(3), v.Patch())
	assert.Empty(t, v.PreRelease())
	assert.Empty(t, v.Build())
	assert.Equal(t, "1.2.3", v.String())
}

func TestNewFull(t *testing.T) {
	tests := []struct {
		name       string
		preRelease string
		build      string
		wantPre    []string
		wantBuild  []string
		wantErr    error
	}{
		{
			name:       "pre-release and build",
			preRelease: "alpha.1",
			build:      "sha.5114f85",
			wantPre:    []string{"alpha", "1"},
			wantBuild:  []string{"sha", "5114f85"},
		},
		{
			name:       "empty strings mean no identifiers",
			preRelease: "",
			build:      "",
		},
		{
			name:       "identifiers lower-cased",
			preRelease: "RC.X",
			build:      "SHA",
			wantPre:    []string{"rc", "x"},
			wantBuild:  []string{"sha"},
		},
		{
			name:       "hyphen allowed",
			preRelease: "x-y-z.-",
			wantPre:    []string{"x-y-z", "-"},
		},
		{
			name:       "leading zero rejected",
			preRelease: "01",
			wantErr:    ErrLeadingZero,
		},
		{
			name:       "bare zero rejected by the strict rule",
			preRelease: "0",
			wantErr:    ErrLeadingZero,
		},
		{
			name:       "illegal character rejected",
			preRelease: "a/b",
			wantErr:    ErrIllegalCharacter,
		},
		{
			name:       "empty identifier between dots rejected",
			preRelease: "alpha..beta",
			wantErr:    ErrEmptyIdentifier,
		},
		{
			name:    "invalid build identifier rejected",
			build:   "meta data",
			wantErr: ErrIllegalCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewFull(1, 2, 3, tt.preRelease, tt.build)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPre, v.PreRelease())
			assert.Equal(t, tt.wantBuild, v.Build())
		})
	}
}

func TestSetPreRelease(t *testing.T) {
	v := MustParse("1.2.3-alpha")

	require.NoError(t, v.SetPreRelease("Beta", "2"))
	assert.Equal(t, []string{"beta", "2"}, v.PreRelease())

	// Validate-before-commit: a failed replacement leaves the prior
	// sequence untouched.
	err := v.SetPreRelease("rc", "01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLeadingZero))
	assert.Equal(t, []string{"beta", "2"}, v.PreRelease())

	require.NoError(t, v.SetPreRelease())
	assert.Empty(t, v.PreRelease())
}

func TestSetBuild(t *testing.T) {
	v := New(1, 0, 0)

	require.NoError(t, v.SetBuild("SHA", "5114f85"))
	assert.Equal(t, []string{"sha", "5114f85"}, v.Build())
	assert.Equal(t, "1.0.0+sha.5114f85", v.String())

	err := v.SetBuild("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyIdentifier))
	assert.Equal(t, []string{"sha", "5114f85"}, v.Build())
}

func TestIncrements(t *testing.T) {
	tests := []struct {
		name      string
		increment func(*Version)
		want      string
	}{
		{name: "major", increment: (*Version).IncrementMajor, want: "2.0.0"},
		{name: "minor", increment: (*Version).IncrementMinor, want: "1.3.0"},
		{name: "patch", increment: (*Version).IncrementPatch, want: "1.2.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MustParse("1.2.3-rc.1+build.7")
			tt.increment(&v)
			if got := v.String(); got != tt.want {
				t.Errorf("increment %s = %q, want %q", tt.name, got, tt.want)
			}
			if len(v.PreRelease()) != 0 || len(v.Build()) != 0 {
				t.Errorf("increment %s did not reset identifiers: %q", tt.name, v.String())
			}
		})
	}
}

func TestClassification(t *testing.T) {
	dev := New(0, 0, 0)
	assert.True(t, dev.IsInitialDevelopment())
	assert.False(t, dev.IsPublic())

	pub := New(1, 0, 0)
	assert.True(t, pub.IsPublic())
	assert.False(t, pub.IsInitialDevelopment())
}

func TestEquals(t *testing.T) {
	a, err := NewFull(1, 0, 0, "alpha", "x")
	require.NoError(t, err)
	b, err := NewFull(1, 0, 0, "alpha", "y")
	require.NoError(t, err)

	// Build metadata is excluded from equality and precedence.
	assert.True(t, a.Equals(b))
	assert.Equal(t, Equal, a.Compare(b))

	c := MustParse("1.0.0-alpha.1")
	assert.False(t, a.Equals(c))

	d := MustParse("1.0.0")
	assert.False(t, a.Equals(d))
}

func TestHash(t *testing.T) {
	a := MustParse("1.0.0-alpha+x")
	b := MustParse("1.0.0-alpha+y")
	c := MustParse("1.0.0-beta")

	if a.Hash() != b.Hash() {
		t.Errorf("equal versions must hash equal: %d != %d", a.Hash(), b.Hash())
	}
	if a.Hash() == c.Hash() {
		t.Errorf("distinct pre-release unexpectedly collided: %q vs %q", a, c)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    Version
		want string
	}{
		{name: "triple only", v: New(1, 2, 3), want: "1.2.3"},
		{name: "zero value", v: Version{}, want: "0.0.0"},
		{name: "pre-release", v: MustParse("1.2.3-rc.1"), want: "1.2.3-rc.1"},
		{name: "build", v: MustParse("1.2.3+build.11"), want: "1.2.3+build.11"},
		{name: "both", v: MustParse("1.2.3-rc.1+build.11"), want: "1.2.3-rc.1+build.11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOwnership(t *testing.T) {
	v := MustParse("1.0.0-alpha.1")

	// Mutating an accessor result must not alias the value's sequence.
	ids := v.PreRelease()
	ids[0] = "mutated"
	assert.Equal(t, []string{"alpha", "1"}, v.PreRelease())
}
