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

// Package server provides the HTTP server shared by the interpolator API.
//
// A Server registers system endpoints and caller-supplied API handlers:
//
//   - GET /health: liveness probe
//   - GET /ready: readiness probe, 503 until the listener is serving
//   - GET /metrics: Prometheus exposition
//   - GET /: index of the registered API routes
//
// API handlers run behind a middleware chain providing Prometheus RED
// metrics, API version negotiation, request IDs, panic recovery, token
// bucket rate limiting (golang.org/x/time/rate), and request logging.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("interpolatord"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "POST /v1/command": h.HandleCommand,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run stops on context cancellation, SIGINT, or SIGTERM and drains in-flight
// requests within Config.ShutdownTimeout.
//
// # Configuration
//
// NewConfig reads PORT and SHUTDOWN_TIMEOUT_SECONDS from the environment.
// Timeouts default to the values in pkg/defaults.
//
// # Errors
//
// Failed requests return ErrorResponse. WriteErrorFromErr maps structured
// errors from pkg/errors onto HTTP statuses with HTTPStatusFromCode:
//
//	INVALID_REQUEST, INSUFFICIENT_POINTS,
//	CONFLICTING_ABSCISSA, MALFORMED_DATA   400
//	PARSE_ERROR                            422
//	LOOKUP_FAILED, ENGINE_ERROR            502
//	SERVICE_UNAVAILABLE                    503
//	TIMEOUT                                504
//
// # API Versioning
//
// Clients may request a version with
// Accept: application/vnd.polyfit.interpolator.v1+json. The negotiated
// version is echoed in X-API-Version.
package server
