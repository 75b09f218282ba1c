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
	"regexp"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrPatternNotFound   = errors.New("version pattern not found")
	ErrComponentCount    = errors.New("version must have exactly 4 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// DefaultIdentifierSuffix is the suffix that terminates the version groups
// in a bundle identifier such as "geogebra-math-apps-bundle-5-0-545-0.zip".
const DefaultIdentifierSuffix = ".zip"

// componentCount is the number of components in a full version.
const componentCount = 4

// ParseError reports a version string that could not be turned into an Info.
// Reason is one of the Err* sentinels above, so errors.Is works on the result.
type ParseError struct {
	Input  string
	Reason error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version %q: %v", e.Input, e.Reason)
}

// Unwrap returns the reason for errors.Is and errors.As support.
func (e *ParseError) Unwrap() error {
	return e.Reason
}

// Info is a four level version: Major.Minor.Patch.Subpatch.
// Values are immutable once constructed; all components are non-negative.
type Info struct {
	Major    int `json:"major" yaml:"major"`
	Minor    int `json:"minor" yaml:"minor"`
	Patch    int `json:"patch" yaml:"patch"`
	Subpatch int `json:"subpatch" yaml:"subpatch"`
}

// New creates an Info from its four components.
func New(major, minor, patch, subpatch int) Info {
	return Info{
		Major:    major,
		Minor:    minor,
		Patch:    patch,
		Subpatch: subpatch,
	}
}

// String renders the version at the default (patch) precision.
func (v Info) String() string {
	return v.Render(DefaultPrecision)
}

// Render returns the version at the given precision: "Major.Minor" for
// PrecisionMinor and "Major.Minor.Patch.Subpatch" for PrecisionPatch.
// Unknown precisions render all components.
func (v Info) Render(p Precision) string {
	if p == PrecisionMinor {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Subpatch)
}

// IsValid returns true if all components are non-negative.
func (v Info) IsValid() bool {
	return v.Major >= 0 && v.Minor >= 0 && v.Patch >= 0 && v.Subpatch >= 0
}

func (v Info) components() [componentCount]int {
	return [componentCount]int{v.Major, v.Minor, v.Patch, v.Subpatch}
}

var identifierGroups = `(\d+)[-.](\d+)[-.](\d+)[-.](\d+)`

// ParseIdentifier extracts a version from an identifier that contains four
// dash or dot delimited integer groups immediately followed by suffix at the
// end of the string, e.g. ".../geogebra-math-apps-bundle-5-0-545-0.zip".
// An empty suffix means DefaultIdentifierSuffix.
func ParseIdentifier(s, suffix string) (Info, error) {
	if s == "" {
		return Info{}, &ParseError{Input: s, Reason: ErrEmptyVersion}
	}
	if suffix == "" {
		suffix = DefaultIdentifierSuffix
	}

	re, err := regexp.Compile(identifierGroups + regexp.QuoteMeta(suffix) + `$`)
	if err != nil {
		return Info{}, &ParseError{Input: s, Reason: err}
	}

	m := re.FindStringSubmatch(s)
	if m == nil {
		return Info{}, &ParseError{Input: s, Reason: ErrPatternNotFound}
	}

	return fromTokens(s, m[1:])
}

// MustParseIdentifier is like ParseIdentifier with the default suffix but panics on error.
func MustParseIdentifier(s string) Info {
	v, err := ParseIdentifier(s, DefaultIdentifierSuffix)
	if err != nil {
		panic(fmt.Sprintf("MustParseIdentifier: %v", err))
	}
	return v
}

// Identifier builds an identifier that ParseIdentifier accepts:
// prefix + "Major-Minor-Patch-Subpatch" + suffix.
// An empty suffix means DefaultIdentifierSuffix.
func Identifier(v Info, prefix, suffix string) string {
	if suffix == "" {
		suffix = DefaultIdentifierSuffix
	}
	return fmt.Sprintf("%s%d-%d-%d-%d%s", prefix, v.Major, v.Minor, v.Patch, v.Subpatch, suffix)
}

// Parse parses the dotted rendering of a version, e.g. "5.0.545.0" or "v5.0.545.0".
// Exactly four components are required.
func Parse(s string) (Info, error) {
	if s == "" {
		return Info{}, &ParseError{Input: s, Reason: ErrEmptyVersion}
	}

	parts := strings.Split(strings.TrimPrefix(s, "v"), ".")
	if len(parts) != componentCount {
		return Info{}, &ParseError{Input: s, Reason: ErrComponentCount}
	}

	return fromTokens(s, parts)
}

// MustParse parses a version string and panics if parsing fails.
//
// Only use this for hardcoded strings or in tests. For runtime data,
// always use Parse and handle errors explicitly.
func MustParse(s string) Info {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// fromTokens converts exactly four tokens to an Info. Conversion failures are
// always reported, never coerced to zero.
func fromTokens(input string, tokens []string) (Info, error) {
	if len(tokens) != componentCount {
		return Info{}, &ParseError{Input: input, Reason: ErrComponentCount}
	}

	var c [componentCount]int
	for i, tok := range tokens {
		if tok == "" {
			return Info{}, &ParseError{Input: input, Reason: fmt.Errorf("%w: empty component", ErrNonNumeric)}
		}
		num, err := strconv.Atoi(tok)
		if err != nil {
			return Info{}, &ParseError{Input: input, Reason: fmt.Errorf("%w: %q", ErrNonNumeric, tok)}
		}
		if num < 0 {
			return Info{}, &ParseError{Input: input, Reason: fmt.Errorf("%w: %d", ErrNegativeComponent, num)}
		}
		c[i] = num
	}

	return New(c[0], c[1], c[2], c[3]), nil
}
