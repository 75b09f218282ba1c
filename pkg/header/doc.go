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

// Package header provides the Kubernetes-style document header (kind,
// apiVersion, metadata) embedded in documents the toolkit writes, such as
// interpolation results.
//
//	type Report struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    ...
//	}
//
//	r.Init(header.KindInterpolation, header.APIGroup+"/v1", version)
package header
