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

package session

import (
	"context"
	"io"
	"log/slog"

	"github.com/polyfit/interpolator/pkg/engine"
	"github.com/polyfit/interpolator/pkg/errors"
	"github.com/polyfit/interpolator/pkg/interpolation"
	"github.com/polyfit/interpolator/pkg/serializer"
)

// Result is the outcome of a successful interpolation.
type Result struct {
	Command string `json:"command" yaml:"command"`
	Formula string `json:"formula" yaml:"formula"`
	Link    string `json:"link" yaml:"link"`
}

// Option configures a Session.
type Option func(*Session)

// WithBuilderOptions configures the interpolation builder.
func WithBuilderOptions(opts ...interpolation.Option) Option {
	return func(s *Session) {
		s.builder = interpolation.NewBuilder(opts...)
	}
}

// WithDeepLinkBase sets the query service base URL used for Result.Link.
func WithDeepLinkBase(base string) Option {
	return func(s *Session) {
		s.linkBase = base
	}
}

// WithPoints seeds the session with an initial point set.
func WithPoints(points []interpolation.Point) Option {
	return func(s *Session) {
		s.points = clone(points)
	}
}

// Session is an ordered point set bound to an engine.
type Session struct {
	engine   engine.Engine
	builder  *interpolation.Builder
	linkBase string
	points   []interpolation.Point
}

// New creates a session backed by e. A nil engine is allowed for sessions
// that only build commands; Interpolate then fails with SERVICE_UNAVAILABLE.
func New(e engine.Engine, opts ...Option) *Session {
	s := &Session{
		engine:   e,
		builder:  interpolation.NewBuilder(),
		linkBase: interpolation.DefaultDeepLinkBase,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func clone(points []interpolation.Point) []interpolation.Point {
	out := make([]interpolation.Point, len(points))
	copy(out, points)
	return out
}

// Points returns a copy of the current point set.
func (s *Session) Points() []interpolation.Point {
	return clone(s.points)
}

// Len returns the number of points.
func (s *Session) Len() int {
	return len(s.points)
}

// Add appends a point.
func (s *Session) Add(p interpolation.Point) {
	s.points = append(s.points, p)
}

// Remove deletes the point at index i and reports whether it existed.
func (s *Session) Remove(i int) bool {
	if i < 0 || i >= len(s.points) {
		return false
	}
	s.points = append(s.points[:i], s.points[i+1:]...)
	return true
}

// Replace swaps the whole point set.
func (s *Session) Replace(points []interpolation.Point) {
	s.points = clone(points)
}

// Command validates the point set and returns the interpolation command.
func (s *Session) Command() (*interpolation.Request, error) {
	return s.builder.Build(s.points)
}

// Save writes the point set in the persisted format.
func (s *Session) Save(w io.Writer) error {
	data, err := interpolation.MarshalPoints(s.points)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to write points", err)
	}
	return nil
}

// Load replaces the point set with one decoded from r. The input is fully
// decoded before anything changes; on failure the current set is kept and
// a MALFORMED_DATA error is returned.
func (s *Session) Load(r io.Reader, format serializer.Format) error {
	points, err := interpolation.DecodePoints(r, format)
	if err != nil {
		slog.Warn("rejected point set", "error", err)
		return err
	}
	s.points = points
	return nil
}

// Sync clears the engine and recreates the session's points in it.
func (s *Session) Sync(ctx context.Context) error {
	if s.engine == nil {
		return errors.New(errors.ErrCodeUnavailable, "no engine configured")
	}
	return engine.ReplacePoints(ctx, s.engine, s.points)
}

// Interpolate validates the point set, evaluates the command on the engine,
// and reads back the resulting formula.
func (s *Session) Interpolate(ctx context.Context) (*Result, error) {
	req, err := s.builder.Build(s.points)
	if err != nil {
		return nil, err
	}

	if s.engine == nil {
		return nil, errors.New(errors.ErrCodeUnavailable, "no engine configured")
	}

	if err := s.engine.Eval(ctx, req.Command); err != nil {
		return nil, err
	}

	formula, err := engine.FunctionFormula(ctx, s.engine, req.FunctionName)
	if err != nil {
		return nil, err
	}

	slog.Debug("interpolated",
		"points", len(req.Points),
		"function", req.FunctionName,
		"formula", formula,
	)

	return &Result{
		Command: req.Command,
		Formula: formula,
		Link:    interpolation.DeepLink(s.linkBase, formula),
	}, nil
}
