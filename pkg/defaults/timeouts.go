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

package defaults

import "time"

// Lookup timeouts for the latest version check.
const (
	// LookupTimeout bounds the whole redirect lookup, including every hop.
	LookupTimeout = 15 * time.Second

	// LookupMaxRedirects is the number of redirect hops followed before giving up.
	LookupMaxRedirects = 10
)

// Engine timeouts for calls to the external math engine.
const (
	// EngineEvalTimeout is the timeout for a single command evaluation.
	EngineEvalTimeout = 20 * time.Second

	// EngineReadTimeout is the timeout for listing or deleting engine objects.
	EngineReadTimeout = 10 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// CommandHandlerTimeout is the timeout for command build requests.
	// Building is pure and bounded by the request body limit.
	CommandHandlerTimeout = 5 * time.Second

	// InterpolateHandlerTimeout is the timeout for interpolate requests.
	// Must exceed EngineEvalTimeout plus EngineReadTimeout.
	InterpolateHandlerTimeout = 45 * time.Second

	// MaxRequestBodyBytes limits JSON request bodies.
	MaxRequestBodyBytes = 1 << 20
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 60 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIInterpolateTimeout bounds the interpolate command end to end.
	CLIInterpolateTimeout = 2 * time.Minute
)
