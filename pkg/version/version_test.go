// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"testing"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		suffix      string
		expected    Info
		expectedErr error
	}{
		{
			name:     "bundle download location",
			input:    "https://download.geogebra.org/installers/5.0/geogebra-math-apps-bundle-5-0-587-0.zip",
			suffix:   ".zip",
			expected: Info{Major: 5, Minor: 0, Patch: 587, Subpatch: 0},
		},
		{
			name:     "default suffix when empty",
			input:    "bundle-5-0-545-0.zip",
			expected: Info{Major: 5, Minor: 0, Patch: 545, Subpatch: 0},
		},
		{
			name:     "dot delimited groups",
			input:    "bundle-6.1.2.3.zip",
			suffix:   ".zip",
			expected: Info{Major: 6, Minor: 1, Patch: 2, Subpatch: 3},
		},
		{
			name:     "last match anchored to suffix",
			input:    "1-2-3-4/bundle-5-0-545-0.zip",
			suffix:   ".zip",
			expected: Info{Major: 5, Minor: 0, Patch: 545, Subpatch: 0},
		},
		{
			name:     "custom suffix",
			input:    "apps-7-1-0-12.tar.gz",
			suffix:   ".tar.gz",
			expected: Info{Major: 7, Minor: 1, Patch: 0, Subpatch: 12},
		},
		{
			name:        "empty input",
			input:       "",
			expectedErr: ErrEmptyVersion,
		},
		{
			name:        "no version groups",
			input:       "https://download.geogebra.org/package/geogebra-math-apps-bundle",
			suffix:      ".zip",
			expectedErr: ErrPatternNotFound,
		},
		{
			name:        "suffix not at end",
			input:       "bundle-5-0-545-0.zip?download=1",
			suffix:      ".zip",
			expectedErr: ErrPatternNotFound,
		},
		{
			name:        "three groups only",
			input:       "bundle-5-0-545.zip",
			suffix:      ".zip",
			expectedErr: ErrPatternNotFound,
		},
		{
			name:        "wrong suffix",
			input:       "bundle-5-0-545-0.exe",
			suffix:      ".zip",
			expectedErr: ErrPatternNotFound,
		},
		{
			name:        "component overflow",
			input:       "bundle-5-0-99999999999999999999999-0.zip",
			suffix:      ".zip",
			expectedErr: ErrNonNumeric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIdentifier(tt.input, tt.suffix)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("ParseIdentifier(%q) error = %v, want %v", tt.input, err, tt.expectedErr)
				}
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("ParseIdentifier(%q) error type = %T, want *ParseError", tt.input, err)
				}
				if pe.Input != tt.input {
					t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIdentifier(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseIdentifier(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIdentifierRoundTrip(t *testing.T) {
	versions := []Info{
		New(0, 0, 0, 0),
		New(5, 0, 545, 0),
		New(5, 0, 587, 0),
		New(12, 34, 56, 78),
	}
	suffixes := []string{"", ".zip", ".tar.gz"}

	for _, v := range versions {
		for _, s := range suffixes {
			id := Identifier(v, "geogebra-math-apps-bundle-", s)
			got, err := ParseIdentifier(id, s)
			if err != nil {
				t.Fatalf("ParseIdentifier(%q) unexpected error: %v", id, err)
			}
			if got != v {
				t.Errorf("round trip of %q = %+v, want %+v", id, got, v)
			}
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Info
		expectedErr error
	}{
		{name: "full", input: "5.0.545.0", expected: New(5, 0, 545, 0)},
		{name: "v prefix", input: "v5.0.587.0", expected: New(5, 0, 587, 0)},
		{name: "zeros", input: "0.0.0.0", expected: New(0, 0, 0, 0)},
		{name: "empty", input: "", expectedErr: ErrEmptyVersion},
		{name: "two components", input: "5.0", expectedErr: ErrComponentCount},
		{name: "five components", input: "1.2.3.4.5", expectedErr: ErrComponentCount},
		{name: "non numeric", input: "5.0.x.0", expectedErr: ErrNonNumeric},
		{name: "empty component", input: "5..545.0", expectedErr: ErrNonNumeric},
		{name: "negative", input: "5.0.-1.0", expectedErr: ErrNegativeComponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.expectedErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	_ = MustParse("not-a-version")
}

func TestRender(t *testing.T) {
	v := New(5, 0, 545, 0)

	tests := []struct {
		precision Precision
		expected  string
	}{
		{PrecisionMinor, "5.0"},
		{PrecisionPatch, "5.0.545.0"},
	}

	for _, tt := range tests {
		t.Run(string(tt.precision), func(t *testing.T) {
			if got := v.Render(tt.precision); got != tt.expected {
				t.Errorf("Render(%s) = %q, want %q", tt.precision, got, tt.expected)
			}
		})
	}

	if got := v.String(); got != "5.0.545.0" {
		t.Errorf("String() = %q, want %q", got, "5.0.545.0")
	}
}

func TestCompare(t *testing.T) {
	used := New(5, 0, 545, 0)
	latest := New(5, 0, 587, 0)

	tests := []struct {
		name      string
		a, b      Info
		precision Precision
		op        Operator
		expected  bool
	}{
		{"equal at minor", used, latest, PrecisionMinor, OpEqual, true},
		{"not equal at patch", used, latest, PrecisionPatch, OpEqual, false},
		{"less at patch", used, latest, PrecisionPatch, OpLess, true},
		{"less or equal at minor", used, latest, PrecisionMinor, OpLessEqual, true},
		{"greater at patch", latest, used, PrecisionPatch, OpGreater, true},
		{"not greater at minor", latest, used, PrecisionMinor, OpGreater, false},
		{"greater or equal same", used, used, PrecisionPatch, OpGreaterEqual, true},
		{"reflexive", used, used, PrecisionPatch, OpEqual, true},
		{"major dominates", New(6, 0, 0, 0), New(5, 99, 999, 9), PrecisionPatch, OpGreater, true},
		{"subpatch counts at patch", New(5, 0, 545, 1), used, PrecisionPatch, OpGreater, true},
		{"subpatch ignored at minor", New(5, 0, 545, 1), used, PrecisionMinor, OpEqual, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b, tt.precision, tt.op)
			if err != nil {
				t.Fatalf("Compare() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Compare(%s, %s, %s, %s) = %v, want %v", tt.a, tt.b, tt.precision, tt.op, got, tt.expected)
			}
		})
	}
}

func TestCompareInvalidFlags(t *testing.T) {
	v := New(1, 2, 3, 4)

	if _, err := Compare(v, v, Precision("major"), OpEqual); !errors.Is(err, ErrInvalidPrecision) {
		t.Errorf("Compare() with unknown precision error = %v, want %v", err, ErrInvalidPrecision)
	}
	if _, err := Compare(v, v, PrecisionPatch, Operator("!=")); !errors.Is(err, ErrInvalidOperator) {
		t.Errorf("Compare() with unknown operator error = %v, want %v", err, ErrInvalidOperator)
	}
}

func TestCmpTotalPreorder(t *testing.T) {
	vs := []Info{
		New(5, 0, 545, 0),
		New(5, 0, 587, 0),
		New(5, 1, 0, 0),
		New(4, 9, 999, 9),
		New(5, 0, 545, 3),
	}

	for _, p := range []Precision{PrecisionMinor, PrecisionPatch} {
		for _, a := range vs {
			for _, b := range vs {
				ab, ba := a.Cmp(b, p), b.Cmp(a, p)
				if ab != -ba {
					t.Errorf("Cmp not antisymmetric at %s: %s vs %s = %d, %d", p, a, b, ab, ba)
				}
				for _, c := range vs {
					if ab <= 0 && b.Cmp(c, p) <= 0 && a.Cmp(c, p) > 0 {
						t.Errorf("Cmp not transitive at %s: %s <= %s <= %s", p, a, b, c)
					}
				}
			}
		}
	}
}

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		input    string
		expected Precision
		wantErr  bool
	}{
		{"", DefaultPrecision, false},
		{"minor", PrecisionMinor, false},
		{"PATCH", PrecisionPatch, false},
		{"major", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePrecision(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePrecision(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParsePrecision(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected Operator
		wantErr  bool
	}{
		{"<", OpLess, false},
		{"<=", OpLessEqual, false},
		{"=", OpEqual, false},
		{"==", OpEqual, false},
		{">=", OpGreaterEqual, false},
		{">", OpGreater, false},
		{"!=", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOperator(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOperator(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseOperator(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	if !New(5, 0, 545, 0).IsValid() {
		t.Error("New(5, 0, 545, 0).IsValid() = false, want true")
	}
	if (Info{Major: 1, Minor: -1}).IsValid() {
		t.Error("negative component reported as valid")
	}
}
