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

// Package serializer provides encoding and decoding of command results and
// point sets, plus the outbound HTTP client shared by the freshness check and
// the engine bridge.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Used for API responses and the persisted point-set format
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE rows for terminal viewing
//   - Write-only (no deserialization support)
//
// # Usage
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// Reading with format detection:
//
//	points, err := serializer.FromFile[[]interpolation.Point](ctx, "points.json")
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// # HTTP Client
//
// HTTPClient wraps a tuned *http.Transport (TLS 1.2 minimum, bounded dial and
// header timeouts from pkg/defaults) and a redirect limit:
//
//	c := serializer.NewHTTPClient(serializer.WithTotalTimeout(10 * time.Second))
//	resp, err := c.Head(ctx, url) // resp.Request.URL is the final location
package serializer
