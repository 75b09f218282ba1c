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

// Package cli implements the interpolator command-line interface on
// github.com/urfave/cli/v3.
//
// # Commands
//
// check - Freshness of the pinned GeoGebra Apps version:
//
//	interpolator check
//
// Prints the used and the latest version and a verdict. Exits 0 when the
// pinned version is current at minor precision and 1 when it is outdated or
// the lookup fails. The outdated verdict and errors go to stderr.
//
// command - Build the interpolation command for a point set:
//
//	echo '[{"x":0,"y":0},{"x":1,"y":2}]' | interpolator command
//	f(x) = Polynomial({(0,0),(1,2)})
//
// interpolate - Evaluate the command on the math engine:
//
//	interpolator interpolate --points points.yaml --engine http://localhost:8765 --format json
//
// Prints the command, the resulting formula, and a deep link for the formula.
//
// compare - Compare two four-part versions for scripting:
//
//	interpolator compare --precision minor --op = 5.0.545.0 5.0.587.0
//
// # Global Flags
//
//	--log-level    debug, info, warn, error (default: info, env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Point sets are JSON or YAML arrays of {x, y} objects, read from --points
// (file or http(s) URL) or from stdin.
package cli
