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
	"strconv"
	"strings"
)

// DefaultFunctionName names the interpolating function when none is given.
const DefaultFunctionName = "f"

// Option configures validation and command construction.
type Option func(*config)

type config struct {
	tolerance float64
	name      string
}

func newConfig(opts []Option) config {
	c := config{
		tolerance: DefaultTolerance,
		name:      DefaultFunctionName,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithTolerance sets the abscissa tolerance. Negative values are ignored.
func WithTolerance(tolerance float64) Option {
	return func(c *config) {
		if tolerance >= 0 {
			c.tolerance = tolerance
		}
	}
}

// WithFunctionName sets the name of the interpolating function.
// An empty name keeps DefaultFunctionName.
func WithFunctionName(name string) Option {
	return func(c *config) {
		if name = strings.TrimSpace(name); name != "" {
			c.name = name
		}
	}
}

// Request is a validated point set together with its engine command.
type Request struct {
	FunctionName string  `json:"functionName" yaml:"functionName"`
	Points       []Point `json:"points" yaml:"points"`
	Command      string  `json:"command" yaml:"command"`
}

// Builder validates point sets and builds interpolation commands.
type Builder struct {
	cfg config
}

// NewBuilder returns a Builder with the given options applied over the defaults.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{cfg: newConfig(opts)}
}

// Tolerance returns the abscissa tolerance in use.
func (b *Builder) Tolerance() float64 {
	return b.cfg.tolerance
}

// FunctionName returns the function name in use.
func (b *Builder) FunctionName() string {
	return b.cfg.name
}

// Build validates points and returns the request. On failure no command is
// produced.
func (b *Builder) Build(points []Point) (*Request, error) {
	if err := validate(points, b.cfg.tolerance); err != nil {
		return nil, err
	}

	cp := make([]Point, len(points))
	copy(cp, points)

	return &Request{
		FunctionName: b.cfg.name,
		Points:       cp,
		Command:      BuildCommand(cp, b.cfg.name),
	}, nil
}

// BuildCommand returns <name>(x) = Polynomial({(x1,y1),...}) in input order.
// It does not validate; use Validate or Builder.Build for checked input.
// An empty name means DefaultFunctionName.
func BuildCommand(points []Point, name string) string {
	if name = strings.TrimSpace(name); name == "" {
		name = DefaultFunctionName
	}

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("(x) = Polynomial({")
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('(')
		sb.WriteString(FormatCoordinate(p.X))
		sb.WriteByte(',')
		sb.WriteString(FormatCoordinate(p.Y))
		sb.WriteByte(')')
	}
	sb.WriteString("})")
	return sb.String()
}

// PointCommand returns the engine command that creates p: "(x, y)".
func PointCommand(p Point) string {
	return "(" + FormatCoordinate(p.X) + ", " + FormatCoordinate(p.Y) + ")"
}

// FormatCoordinate renders v as the shortest decimal literal that round-trips,
// without an exponent. Negative zero is rendered as "0".
func FormatCoordinate(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
