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

// Package api wires the interpolation HTTP API onto pkg/server.
//
// Serve configures structured logging, reads the environment, registers the
// API routes, and blocks until shutdown:
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
//   - POST /v1/command: validate a point set and return the interpolation command
//   - POST /v1/interpolate: evaluate the command on the engine and return the formula and a deep link
//   - GET /v1/version: the pinned engine version; ?check=true also looks up the latest release,
//     otherwise the last scheduled check is included when FRESHNESS_SCHEDULE is set
//
// System endpoints (/health, /ready, /metrics) come from pkg/server.
//
// Request bodies are JSON, or YAML when Content-Type names yaml:
//
//	{"points": [{"x": 0, "y": 0}, {"x": 1, "y": 2}], "name": "f", "tolerance": 1e-6}
//
// Example:
//
//	curl -s -X POST localhost:8080/v1/command \
//	  -d '{"points":[{"x":0,"y":0},{"x":1,"y":2}]}'
//	{"command":"f(x) = Polynomial({(0,0),(1,2)})","functionName":"f","pointCount":2}
//
// # Configuration
//
//   - ENGINE_URL: base URL of the engine bridge; without it /v1/interpolate returns 503
//   - INTERPOLATION_TOLERANCE: default abscissa tolerance (non-negative float)
//   - FRESHNESS_SCHEDULE: cron expression (e.g. "@every 6h") for background
//     freshness checks, exported as interpolator_engine_bundle_current
//   - PORT, SHUTDOWN_TIMEOUT_SECONDS: see pkg/server
//   - LOG_LEVEL: see pkg/logging
package api
