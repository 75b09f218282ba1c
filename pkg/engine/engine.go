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

package engine

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/polyfit/interpolator/pkg/errors"
	"github.com/polyfit/interpolator/pkg/interpolation"
)

// Object types reported by the engine.
const (
	TypePoint    = "point"
	TypeFunction = "function"
)

var (
	// ErrFunctionNotFound means no function object has the requested name.
	ErrFunctionNotFound = stderrors.New("no function found")
	// ErrAmbiguousFunction means more than one function object has the requested name.
	ErrAmbiguousFunction = stderrors.New("more than one function found")
	// ErrUnreadablePoint means a point value string could not be parsed.
	ErrUnreadablePoint = stderrors.New("unreadable point value")
)

// Object is a named object held by the engine. Value is the engine's display
// string, e.g. "P = (3.44, -4.68)" or "f(x) = 2x".
type Object struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// Engine evaluates commands and exposes the resulting objects.
type Engine interface {
	// Eval evaluates a single command.
	Eval(ctx context.Context, command string) error
	// Objects lists all objects in creation order.
	Objects(ctx context.Context) ([]Object, error)
	// Delete removes the named object.
	Delete(ctx context.Context, name string) error
}

// ObjectsOfType returns the objects of type typ, preserving order.
func ObjectsOfType(ctx context.Context, e Engine, typ string) ([]Object, error) {
	all, err := e.Objects(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Object, 0, len(all))
	for _, o := range all {
		if o.Type == typ {
			out = append(out, o)
		}
	}
	return out, nil
}

var pointValue = regexp.MustCompile(`\((-?[\d.]+(?:[eE][-+]?\d+)?), (-?[\d.]+(?:[eE][-+]?\d+)?)\)`)

// ParsePointValue extracts the coordinates from a point value string such as
// "P = (3.44, -4.68)".
func ParsePointValue(s string) (interpolation.Point, error) {
	m := pointValue.FindStringSubmatch(s)
	if m == nil {
		return interpolation.Point{}, fmt.Errorf("%w: %q", ErrUnreadablePoint, s)
	}
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return interpolation.Point{}, fmt.Errorf("%w: %q: %w", ErrUnreadablePoint, s, err)
	}
	y, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return interpolation.Point{}, fmt.Errorf("%w: %q: %w", ErrUnreadablePoint, s, err)
	}
	return interpolation.Point{X: x, Y: y}, nil
}

// ReadPoints returns every point object as a Point, in engine order.
func ReadPoints(ctx context.Context, e Engine) ([]interpolation.Point, error) {
	objs, err := ObjectsOfType(ctx, e, TypePoint)
	if err != nil {
		return nil, err
	}
	points := make([]interpolation.Point, 0, len(objs))
	for _, o := range objs {
		p, err := ParsePointValue(o.Value)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeEngine, "failed to read point", err,
				map[string]any{"object": o.Name})
		}
		points = append(points, p)
	}
	return points, nil
}

// FunctionFormula returns the value string of the single function named name.
func FunctionFormula(ctx context.Context, e Engine, name string) (string, error) {
	objs, err := ObjectsOfType(ctx, e, TypeFunction)
	if err != nil {
		return "", err
	}

	var matches []Object
	for _, o := range objs {
		if o.Name == name {
			matches = append(matches, o)
		}
	}

	switch len(matches) {
	case 0:
		return "", errors.WrapWithContext(errors.ErrCodeEngine, "failed to read formula", ErrFunctionNotFound,
			map[string]any{"function": name})
	case 1:
		return matches[0].Value, nil
	default:
		return "", errors.WrapWithContext(errors.ErrCodeEngine, "failed to read formula", ErrAmbiguousFunction,
			map[string]any{"function": name, "count": len(matches)})
	}
}

// DeleteAll removes every object from the engine.
func DeleteAll(ctx context.Context, e Engine) error {
	objs, err := e.Objects(ctx)
	if err != nil {
		return err
	}
	for _, o := range objs {
		if err := e.Delete(ctx, o.Name); err != nil {
			return err
		}
	}
	return nil
}

// ReplacePoints clears the engine and recreates points in order.
func ReplacePoints(ctx context.Context, e Engine, points []interpolation.Point) error {
	if err := DeleteAll(ctx, e); err != nil {
		return err
	}
	for _, p := range points {
		if err := e.Eval(ctx, interpolation.PointCommand(p)); err != nil {
			return err
		}
	}
	return nil
}
