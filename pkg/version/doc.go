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

// Package version provides four level version parsing, rendering, and
// precision-aware comparison.
//
// # Overview
//
// A version is Major.Minor.Patch.Subpatch. Two precisions are supported:
//
//   - minor: Major.Minor (e.g., "5.0")
//   - patch: Major.Minor.Patch.Subpatch (e.g., "5.0.545.0")
//
// Comparison only looks at the components covered by the precision, so
// 5.0.545.0 and 5.0.587.0 are equal at minor precision and differ at patch.
//
// # Usage
//
// Extract a version from a download identifier:
//
//	v, err := version.ParseIdentifier(location, version.DefaultIdentifierSuffix)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.Render(version.PrecisionMinor)) // Output: 5.0
//
// Compare versions:
//
//	ok, err := version.Compare(used, latest, version.PrecisionMinor, version.OpEqual)
//
// Parse the dotted rendering:
//
//	v := version.MustParse("5.0.545.0")
//
// # Errors
//
// All parse failures are *ParseError values carrying the input and a sentinel
// reason (ErrEmptyVersion, ErrPatternNotFound, ErrComponentCount,
// ErrNonNumeric, ErrNegativeComponent). Use errors.Is against the sentinels:
//
//	if errors.Is(err, version.ErrPatternNotFound) {
//	    // identifier did not carry a version
//	}
//
// Components that do not fit in an int are rejected with ErrNonNumeric,
// never coerced to zero.
package version
