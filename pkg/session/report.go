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
	"github.com/polyfit/interpolator/pkg/header"
)

// ReportAPIVersion is the schema version of interpolation reports.
const ReportAPIVersion = header.APIGroup + "/v1"

// Report is a self-describing interpolation result document.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Points int    `json:"points" yaml:"points"`
	Result Result `json:"result" yaml:"result"`
}

// NewReport wraps res in a document header stamped with the tool version.
func NewReport(res *Result, points int, toolVersion string) *Report {
	r := &Report{Points: points}
	if res != nil {
		r.Result = *res
	}
	r.Init(header.KindInterpolation, ReportAPIVersion, toolVersion)
	return r
}
