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

// Package interpolation validates point sets and builds the polynomial
// interpolation command sent to an external math engine.
//
// # Overview
//
// The package is pure: nothing here logs, performs I/O, or keeps state
// between calls. A point set is valid when it has at least two points and no
// two points share an x-coordinate within a tolerance (DefaultTolerance).
//
//	cmd, err := interpolation.NewBuilder().Build(points)
//	if err != nil {
//	    // errors.HasCode(err, errors.ErrCodeInsufficientPoints) etc.
//	}
//	fmt.Println(cmd.Command) // f(x) = Polynomial({(0,0),(1,2)})
//
// # Command Format
//
// The command has the form <name>(x) = Polynomial({(x1,y1),(x2,y2),...}):
// comma-separated, no spaces inside the point list, input order preserved,
// and each coordinate written as its shortest round-trip decimal literal.
//
// # Persisted Format
//
// Point sets are stored as a JSON array of {"x": ..., "y": ...} objects,
// indented with tabs. Decoding rejects anything that is not such an array,
// including objects missing either coordinate.
package interpolation
