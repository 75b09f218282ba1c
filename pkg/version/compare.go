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
	"fmt"
	"strings"
)

var (
	ErrInvalidPrecision = errors.New("version precision must be minor or patch")
	ErrInvalidOperator  = errors.New("version operator must be one of <, <=, =, >=, >")
)

// Precision selects how many leading components take part in rendering and comparison.
type Precision string

const (
	// PrecisionMinor covers Major and Minor.
	PrecisionMinor Precision = "minor"
	// PrecisionPatch covers all four components.
	PrecisionPatch Precision = "patch"

	// DefaultPrecision is used when no precision is given.
	DefaultPrecision = PrecisionPatch
)

// Components returns the number of significant components, or 0 for an unknown precision.
func (p Precision) Components() int {
	switch p {
	case PrecisionMinor:
		return 2
	case PrecisionPatch:
		return componentCount
	default:
		return 0
	}
}

// IsValid reports whether p is a known precision.
func (p Precision) IsValid() bool {
	return p.Components() > 0
}

// ParsePrecision converts user input into a Precision.
// An empty string yields DefaultPrecision.
func ParsePrecision(s string) (Precision, error) {
	if s == "" {
		return DefaultPrecision, nil
	}
	p := Precision(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPrecision, s)
	}
	return p, nil
}

// Operator is an ordering relation between two versions.
type Operator string

const (
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpEqual        Operator = "="
	OpGreaterEqual Operator = ">="
	OpGreater      Operator = ">"
)

// ParseOperator converts user input into an Operator. "==" is accepted as "=".
func ParseOperator(s string) (Operator, error) {
	op := Operator(strings.TrimSpace(s))
	if op == "==" {
		op = OpEqual
	}
	switch op {
	case OpLess, OpLessEqual, OpEqual, OpGreaterEqual, OpGreater:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOperator, s)
	}
}

// Cmp compares v with other over the components selected by p, major first.
// It returns -1 if v < other, 0 if they are equal at p, and 1 if v > other.
// An unknown precision compares all components.
func (v Info) Cmp(other Info, p Precision) int {
	n := p.Components()
	if n == 0 {
		n = componentCount
	}

	a, b := v.components(), other.components()
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// Compare reports whether a op b holds at precision p.
// For example Compare(5.0.545.0, 5.0.587.0, minor, =) is true while the same
// call at patch precision is false.
func Compare(a, b Info, p Precision, op Operator) (bool, error) {
	if !p.IsValid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidPrecision, p)
	}

	c := a.Cmp(b, p)
	switch op {
	case OpLess:
		return c < 0, nil
	case OpLessEqual:
		return c <= 0, nil
	case OpEqual:
		return c == 0, nil
	case OpGreaterEqual:
		return c >= 0, nil
	case OpGreater:
		return c > 0, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidOperator, op)
	}
}
