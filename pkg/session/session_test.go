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
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfit/interpolator/pkg/engine"
	"github.com/polyfit/interpolator/pkg/errors"
	"github.com/polyfit/interpolator/pkg/interpolation"
	"github.com/polyfit/interpolator/pkg/serializer"
)

// fakeEngine answers every interpolation command with a fixed formula.
type fakeEngine struct {
	formula string
	evalErr error
	evals   []string
	objects []engine.Object
}

func (f *fakeEngine) Eval(_ context.Context, command string) error {
	if f.evalErr != nil {
		return f.evalErr
	}
	f.evals = append(f.evals, command)
	if name, _, ok := strings.Cut(command, "(x) = "); ok {
		f.objects = append(f.objects, engine.Object{Name: name, Type: engine.TypeFunction, Value: f.formula})
	} else {
		f.objects = append(f.objects, engine.Object{Name: "P", Type: engine.TypePoint, Value: "P = " + command})
	}
	return nil
}

func (f *fakeEngine) Objects(_ context.Context) ([]engine.Object, error) {
	out := make([]engine.Object, len(f.objects))
	copy(out, f.objects)
	return out, nil
}

func (f *fakeEngine) Delete(_ context.Context, name string) error {
	for i, o := range f.objects {
		if o.Name == name {
			f.objects = append(f.objects[:i], f.objects[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestInterpolate(t *testing.T) {
	eng := &fakeEngine{formula: "f(x) = 2x"}
	s := New(eng)
	s.Add(interpolation.Point{X: 0, Y: 0})
	s.Add(interpolation.Point{X: 1, Y: 2})

	res, err := s.Interpolate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "f(x) = Polynomial({(0,0),(1,2)})", res.Command)
	assert.Equal(t, "f(x) = 2x", res.Formula)
	assert.Equal(t, "https://www.wolframalpha.com/input/?i=f%28x%29%20%3D%202x", res.Link)
	assert.Equal(t, []string{res.Command}, eng.evals)
}

func TestInterpolateValidationNeverReachesEngine(t *testing.T) {
	tests := []struct {
		name   string
		points []interpolation.Point
		code   errors.ErrorCode
	}{
		{"no points", nil, errors.ErrCodeInsufficientPoints},
		{"one point", []interpolation.Point{{X: 1, Y: 1}}, errors.ErrCodeInsufficientPoints},
		{"shared abscissa", []interpolation.Point{{X: 1, Y: 1}, {X: 1, Y: 3}}, errors.ErrCodeConflictingAbscissa},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := &fakeEngine{formula: "unused"}
			s := New(eng, WithPoints(tt.points))

			_, err := s.Interpolate(context.Background())
			assert.Equal(t, tt.code, errors.CodeOf(err))
			assert.Empty(t, eng.evals)
		})
	}
}

func TestInterpolateCustomName(t *testing.T) {
	eng := &fakeEngine{formula: "g(x) = 3"}
	s := New(eng,
		WithBuilderOptions(interpolation.WithFunctionName("g")),
		WithDeepLinkBase("https://example.com/q"),
		WithPoints([]interpolation.Point{{X: 0, Y: 3}, {X: 1, Y: 3}}),
	)

	res, err := s.Interpolate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "g(x) = Polynomial({(0,3),(1,3)})", res.Command)
	assert.Equal(t, "https://example.com/q?i=g%28x%29%20%3D%203", res.Link)
}

func TestInterpolateEngineErrors(t *testing.T) {
	points := []interpolation.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}

	_, err := New(nil, WithPoints(points)).Interpolate(context.Background())
	assert.Equal(t, errors.ErrCodeUnavailable, errors.CodeOf(err))

	cause := errors.New(errors.ErrCodeEngine, "bridge down")
	_, err = New(&fakeEngine{evalErr: cause}, WithPoints(points)).Interpolate(context.Background())
	assert.ErrorIs(t, err, cause)
}

func TestPointsMutation(t *testing.T) {
	s := New(nil)
	s.Add(interpolation.Point{X: 1, Y: 1})
	s.Add(interpolation.Point{X: 2, Y: 2})
	s.Add(interpolation.Point{X: 3, Y: 3})

	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(5))
	assert.False(t, s.Remove(-1))
	assert.Equal(t, []interpolation.Point{{X: 1, Y: 1}, {X: 3, Y: 3}}, s.Points())

	got := s.Points()
	got[0].X = 42
	assert.Equal(t, 1.0, s.Points()[0].X, "Points must return a copy")

	s.Replace([]interpolation.Point{{X: 9, Y: 9}})
	assert.Equal(t, 1, s.Len())
}

func TestSaveLoad(t *testing.T) {
	src := New(nil, WithPoints([]interpolation.Point{{X: 3.44, Y: -4.68}, {X: 0, Y: 1}}))

	var buf bytes.Buffer
	require.NoError(t, src.Save(&buf))
	assert.Contains(t, buf.String(), "\n\t{\n\t\t\"x\": 3.44")

	dst := New(nil)
	require.NoError(t, dst.Load(&buf, serializer.FormatJSON))
	assert.Equal(t, src.Points(), dst.Points())
}

func TestLoadFailureKeepsPoints(t *testing.T) {
	original := []interpolation.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	s := New(nil, WithPoints(original))

	inputs := []string{
		`not json`,
		`[{"x": 1}]`,
		`{"x": 1, "y": 2}`,
	}
	for _, in := range inputs {
		err := s.Load(strings.NewReader(in), serializer.FormatJSON)
		var se *errors.StructuredError
		require.True(t, stderrors.As(err, &se), "input %q", in)
		assert.Equal(t, errors.ErrCodeMalformedData, se.Code)
		assert.Equal(t, original, s.Points())
	}
}

func TestSync(t *testing.T) {
	eng := &fakeEngine{objects: []engine.Object{{Name: "stale", Type: engine.TypePoint, Value: "stale = (5, 5)"}}}
	s := New(eng, WithPoints([]interpolation.Point{{X: 0, Y: 1}, {X: 2, Y: 3}}))

	require.NoError(t, s.Sync(context.Background()))
	assert.Equal(t, []string{"(0, 1)", "(2, 3)"}, eng.evals)

	points, err := engine.ReadPoints(context.Background(), eng)
	require.NoError(t, err)
	assert.Equal(t, s.Points(), points)

	assert.Equal(t, errors.ErrCodeUnavailable, errors.CodeOf(New(nil).Sync(context.Background())))
}
