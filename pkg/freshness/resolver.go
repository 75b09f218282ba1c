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

package freshness

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/url"

	"github.com/polyfit/interpolator/pkg/errors"
	"github.com/polyfit/interpolator/pkg/serializer"
)

// ErrNoRedirect is the cause of a lookup whose response did not redirect.
var ErrNoRedirect = stderrors.New("lookup did not redirect")

// Redirect is the outcome of a lookup: the requested location and the final
// location after following redirects.
type Redirect struct {
	Source *url.URL
	Target *url.URL
}

// Present reports whether the lookup ended somewhere other than where it started.
func (r Redirect) Present() bool {
	return r.Source != nil && r.Target != nil && r.Target.String() != r.Source.String()
}

// Resolver discovers where a location redirects to.
type Resolver interface {
	Resolve(ctx context.Context, rawURL string) (Redirect, error)
}

// HTTPResolver resolves redirects with one HEAD request.
type HTTPResolver struct {
	client *serializer.HTTPClient
}

// NewHTTPResolver returns a resolver backed by a serializer.HTTPClient
// configured with opts.
func NewHTTPResolver(opts ...serializer.HTTPClientOption) *HTTPResolver {
	return &HTTPResolver{client: serializer.NewHTTPClient(opts...)}
}

// Resolve issues a HEAD request to rawURL and follows redirects. Transport
// failures and non-2xx final statuses are LOOKUP_FAILED errors. An absent
// redirect is not an error here; callers check Redirect.Present.
func (r *HTTPResolver) Resolve(ctx context.Context, rawURL string) (Redirect, error) {
	src, err := url.Parse(rawURL)
	if err != nil {
		return Redirect{}, errors.WrapWithContext(errors.ErrCodeLookup, "invalid lookup location", err,
			map[string]any{"url": rawURL})
	}

	resp, err := r.client.Head(ctx, rawURL)
	if err != nil {
		return Redirect{}, errors.WrapWithContext(errors.ErrCodeLookup, "latest version lookup failed", err,
			map[string]any{"url": rawURL})
	}

	target := src
	if resp.Request != nil && resp.Request.URL != nil {
		target = resp.Request.URL
	}

	slog.Debug("lookup resolved",
		"source", src.String(),
		"target", target.String(),
		"status", resp.StatusCode,
	)

	return Redirect{Source: src, Target: target}, nil
}
