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

package interpolation

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/polyfit/interpolator/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		opts     []Option
		wantCode errors.ErrorCode
	}{
		{
			name:     "empty",
			points:   nil,
			wantCode: errors.ErrCodeInsufficientPoints,
		},
		{
			name:     "single point",
			points:   []Point{{X: 1, Y: 1}},
			wantCode: errors.ErrCodeInsufficientPoints,
		},
		{
			name:   "two distinct points",
			points: []Point{{X: 0, Y: 0}, {X: 1, Y: 2}},
		},
		{
			name:     "abscissae within default tolerance",
			points:   []Point{{X: 1, Y: 1}, {X: 1 + 1e-9, Y: 5}},
			wantCode: errors.ErrCodeConflictingAbscissa,
		},
		{
			name:   "abscissae outside default tolerance",
			points: []Point{{X: 1, Y: 1}, {X: 1.1, Y: 5}},
		},
		{
			name:     "exact duplicate abscissa",
			points:   []Point{{X: 2, Y: 1}, {X: 2, Y: 1}},
			wantCode: errors.ErrCodeConflictingAbscissa,
		},
		{
			name:     "conflict between non-adjacent points",
			points:   []Point{{X: 3, Y: 0}, {X: 0, Y: 1}, {X: 5, Y: 2}, {X: 3, Y: 9}},
			wantCode: errors.ErrCodeConflictingAbscissa,
		},
		{
			name:     "custom tolerance widens conflict",
			points:   []Point{{X: 1, Y: 1}, {X: 1.05, Y: 2}},
			opts:     []Option{WithTolerance(0.1)},
			wantCode: errors.ErrCodeConflictingAbscissa,
		},
		{
			name:   "zero tolerance only rejects exact matches",
			points: []Point{{X: 1, Y: 1}, {X: 1 + 1e-12, Y: 2}},
			opts:   []Option{WithTolerance(0)},
		},
		{
			name:     "tolerance boundary is inclusive",
			points:   []Point{{X: 0, Y: 1}, {X: 0.5, Y: 2}},
			opts:     []Option{WithTolerance(0.5)},
			wantCode: errors.ErrCodeConflictingAbscissa,
		},
		{
			name:   "same ordinate is fine",
			points: []Point{{X: -1, Y: 4}, {X: 1, Y: 4}},
		},
		{
			name:     "repeated infinite abscissa",
			points:   []Point{{X: math.Inf(1), Y: 1}, {X: math.Inf(1), Y: 2}},
			wantCode: errors.ErrCodeMalformedData,
		},
		{
			name:     "NaN abscissa",
			points:   []Point{{X: 0, Y: 1}, {X: math.NaN(), Y: 2}},
			wantCode: errors.ErrCodeMalformedData,
		},
		{
			name:     "infinite ordinate",
			points:   []Point{{X: 0, Y: math.Inf(-1)}, {X: 1, Y: 2}},
			wantCode: errors.ErrCodeMalformedData,
		},
		{
			name:     "count is checked before finiteness",
			points:   []Point{{X: math.NaN(), Y: 1}},
			wantCode: errors.ErrCodeInsufficientPoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.points, tt.opts...)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if got := errors.CodeOf(err); got != tt.wantCode {
				t.Fatalf("Validate() code = %s, want %s (err: %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestBuildRejectsNonFinite(t *testing.T) {
	points := []Point{{X: math.Inf(1), Y: 1}, {X: math.Inf(1), Y: 2}, {X: math.NaN(), Y: 3}}

	req, err := NewBuilder().Build(points)
	if req != nil {
		t.Errorf("expected no request, got %q", req.Command)
	}
	if !stderrors.Is(err, ErrNonFiniteCoordinate) {
		t.Fatalf("expected ErrNonFiniteCoordinate in chain, got %v", err)
	}
}

func TestValidateErrorDetails(t *testing.T) {
	err := Validate([]Point{{X: 7, Y: 0}})
	if !stderrors.Is(err, ErrInsufficientPoints) {
		t.Errorf("expected ErrInsufficientPoints in chain, got %v", err)
	}

	err = Validate([]Point{{X: 3, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: 2}})
	if !stderrors.Is(err, ErrConflictingAbscissa) {
		t.Fatalf("expected ErrConflictingAbscissa in chain, got %v", err)
	}
	var se *errors.StructuredError
	if !stderrors.As(err, &se) {
		t.Fatalf("expected *StructuredError, got %T", err)
	}
	if se.Context["first"] != 0 || se.Context["second"] != 2 {
		t.Errorf("expected indices 0 and 2, got %v and %v", se.Context["first"], se.Context["second"])
	}
}

func TestValidateOrderIndependent(t *testing.T) {
	points := []Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1 + 1e-8, Y: 0}}
	reversed := []Point{points[2], points[1], points[0]}

	if errors.CodeOf(Validate(points)) != errors.CodeOf(Validate(reversed)) {
		t.Error("validation outcome depends on order")
	}
}

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		fn       string
		expected string
	}{
		{
			name:     "basic",
			points:   []Point{{X: 0, Y: 0}, {X: 1, Y: 2}},
			fn:       "f",
			expected: "f(x) = Polynomial({(0,0),(1,2)})",
		},
		{
			name:     "default name",
			points:   []Point{{X: 0, Y: 0}, {X: 1, Y: 2}},
			expected: "f(x) = Polynomial({(0,0),(1,2)})",
		},
		{
			name:     "custom name",
			points:   []Point{{X: -1.5, Y: 2.25}, {X: 3, Y: -4}},
			fn:       "g",
			expected: "g(x) = Polynomial({(-1.5,2.25),(3,-4)})",
		},
		{
			name:     "order preserved",
			points:   []Point{{X: 3, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 2}},
			fn:       "f",
			expected: "f(x) = Polynomial({(3,1),(1,3),(2,2)})",
		},
		{
			name:     "shortest decimal",
			points:   []Point{{X: 0.1, Y: 1.0 / 3}, {X: 3.44, Y: -4.68}},
			fn:       "f",
			expected: "f(x) = Polynomial({(0.1,0.3333333333333333),(3.44,-4.68)})",
		},
		{
			name:     "negative zero",
			points:   []Point{{X: math.Copysign(0, -1), Y: 1}, {X: 1, Y: math.Copysign(0, -1)}},
			fn:       "f",
			expected: "f(x) = Polynomial({(0,1),(1,0)})",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildCommand(tt.points, tt.fn); got != tt.expected {
				t.Errorf("BuildCommand() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuilderBuild(t *testing.T) {
	b := NewBuilder(WithFunctionName("p"), WithTolerance(0.01))
	if b.FunctionName() != "p" || b.Tolerance() != 0.01 {
		t.Fatalf("options not applied: name=%q tolerance=%v", b.FunctionName(), b.Tolerance())
	}

	points := []Point{{X: 0, Y: 1}, {X: 2, Y: 5}}
	req, err := b.Build(points)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if req.Command != "p(x) = Polynomial({(0,1),(2,5)})" {
		t.Errorf("unexpected command %q", req.Command)
	}

	points[0].X = 99
	if req.Points[0].X != 0 {
		t.Error("request must not alias the caller's slice")
	}

	req, err = b.Build([]Point{{X: 0, Y: 1}, {X: 0.005, Y: 2}})
	if err == nil {
		t.Fatal("expected conflicting abscissa error")
	}
	if req != nil {
		t.Error("no request may be returned on failure")
	}
}

func TestBuilderDefaults(t *testing.T) {
	b := NewBuilder(WithFunctionName("  "), WithTolerance(-1))
	if b.FunctionName() != DefaultFunctionName {
		t.Errorf("expected default name, got %q", b.FunctionName())
	}
	if b.Tolerance() != DefaultTolerance {
		t.Errorf("expected default tolerance, got %v", b.Tolerance())
	}
}

func TestPointCommand(t *testing.T) {
	tests := []struct {
		point    Point
		expected string
	}{
		{Point{X: 3.44, Y: -4.68}, "(3.44, -4.68)"},
		{Point{X: 0, Y: 0}, "(0, 0)"},
		{Point{X: 1e-7, Y: 1e21}, "(0.0000001, 1000000000000000000000)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := PointCommand(tt.point); got != tt.expected {
				t.Errorf("PointCommand() = %q, want %q", got, tt.expected)
			}
			if got := tt.point.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
