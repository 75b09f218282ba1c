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

	"github.com/polyfit/interpolator/pkg/errors"
)

// DefaultTolerance is the distance at or below which two abscissae are
// considered equal.
const DefaultTolerance = 1e-6

// EnvTolerance names the environment variable that overrides DefaultTolerance
// in the CLI and the API server.
const EnvTolerance = "INTERPOLATION_TOLERANCE"

// MinPoints is the smallest point set that defines an interpolating polynomial.
const MinPoints = 2

var (
	// ErrInsufficientPoints is the cause of every insufficient-points failure.
	ErrInsufficientPoints = stderrors.New("need more than one point")
	// ErrConflictingAbscissa is the cause of every conflicting-abscissa failure.
	ErrConflictingAbscissa = stderrors.New("points share an x-coordinate")
	// ErrNonFiniteCoordinate is the cause when a coordinate is infinite or NaN.
	ErrNonFiniteCoordinate = stderrors.New("coordinates must be finite")
)

// Validate checks that points can define a single-valued function of x.
//
// The count check runs first, so an empty or single point set always fails
// with ErrCodeInsufficientPoints. Then every unordered pair is compared and
// the first pair whose x-coordinates are within the tolerance fails with
// ErrCodeConflictingAbscissa; its indices are in the error context under
// "first" and "second". Infinite or NaN coordinates fail with
// ErrCodeMalformedData before the pairwise check.
func Validate(points []Point, opts ...Option) error {
	return validate(points, newConfig(opts).tolerance)
}

func validate(points []Point, tolerance float64) error {
	if len(points) < MinPoints {
		return errors.WrapWithContext(errors.ErrCodeInsufficientPoints,
			"please add more than one point", ErrInsufficientPoints,
			map[string]any{"count": len(points), "minimum": MinPoints})
	}

	for i, p := range points {
		if !p.IsFinite() {
			return errors.WrapWithContext(errors.ErrCodeMalformedData,
				"point has a non-finite coordinate", ErrNonFiniteCoordinate,
				map[string]any{"index": i})
		}
	}

	for i := 0; i < len(points)-1; i++ {
		for j := i + 1; j < len(points); j++ {
			if math.Abs(points[i].X-points[j].X) <= tolerance {
				return errors.WrapWithContext(errors.ErrCodeConflictingAbscissa,
					"points cannot be interpolated by a function of x", ErrConflictingAbscissa,
					map[string]any{
						"first":     i,
						"second":    j,
						"x":         points[i].X,
						"tolerance": tolerance,
					})
			}
		}
	}
	return nil
}
