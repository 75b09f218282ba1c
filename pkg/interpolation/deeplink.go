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

package interpolation

import (
	"net/url"
	"strings"
)

// DefaultDeepLinkBase is the query service the formula is linked to.
const DefaultDeepLinkBase = "https://www.wolframalpha.com/input/"

// DeepLink returns a link that opens formula in the query service at base.
// The formula is percent-encoded into the "i" query parameter with spaces as
// %20. An empty base means DefaultDeepLinkBase.
func DeepLink(base, formula string) string {
	if base == "" {
		base = DefaultDeepLinkBase
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "i=" + EncodeQueryComponent(formula)
}

// EncodeQueryComponent percent-encodes s for use as a query value.
// QueryEscape already escapes a literal '+', so any '+' left marks a space.
func EncodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
