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
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Point is a 2D point placed by the user.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// rawPoint distinguishes a missing coordinate from a zero one.
type rawPoint struct {
	X *float64 `json:"x" yaml:"x"`
	Y *float64 `json:"y" yaml:"y"`
}

func (r rawPoint) point() (Point, error) {
	switch {
	case r.X == nil && r.Y == nil:
		return Point{}, fmt.Errorf("point is missing x and y")
	case r.X == nil:
		return Point{}, fmt.Errorf("point is missing x")
	case r.Y == nil:
		return Point{}, fmt.Errorf("point is missing y")
	}
	p := Point{X: *r.X, Y: *r.Y}
	if !p.IsFinite() {
		return Point{}, fmt.Errorf("point %v has a non-finite coordinate", p)
	}
	return p, nil
}

// UnmarshalJSON requires both coordinates to be present.
func (p *Point) UnmarshalJSON(data []byte) error {
	var r rawPoint
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := r.point()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalYAML requires both coordinates to be present.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: point must be a mapping", node.Line)
	}
	var r rawPoint
	if err := node.Decode(&r); err != nil {
		return err
	}
	v, err := r.point()
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = v
	return nil
}

// IsFinite reports whether both coordinates are finite real numbers.
func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

// String renders the point as the engine command that creates it.
func (p Point) String() string {
	return PointCommand(p)
}
