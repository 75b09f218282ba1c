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

// Package freshness checks whether the pinned engine bundle version is still
// the latest one published.
//
// The latest version is discovered with a single HEAD request to a well-known
// location that redirects to the current bundle download, e.g.
//
//	https://download.geogebra.org/installers/5.0/geogebra-math-apps-bundle-5-0-587-0.zip
//
// The version is parsed from the redirect target and compared with InUse at
// DefaultPrecision (minor), so patch-level releases do not mark the pin stale.
//
//	res, err := freshness.NewChecker().Check(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, line := range res.Lines() {
//	    fmt.Println(line)
//	}
//
// There is no retry: a failed request or a response that did not redirect is
// a terminal LOOKUP_FAILED error for that check.
package freshness
