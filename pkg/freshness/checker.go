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
	"fmt"
	"log/slog"

	"github.com/polyfit/interpolator/pkg/defaults"
	"github.com/polyfit/interpolator/pkg/errors"
	"github.com/polyfit/interpolator/pkg/version"
)

// LatestBundleURL redirects to the download of the latest bundle.
const LatestBundleURL = "https://download.geogebra.org/package/geogebra-math-apps-bundle"

// DefaultPrecision is the precision at which the pinned version must equal
// the latest one to count as current.
const DefaultPrecision = version.PrecisionMinor

// InUse is the bundle version the applet is built against.
var InUse = version.New(5, 0, 545, 0)

// Result is the outcome of a freshness check.
type Result struct {
	Used      version.Info      `json:"used" yaml:"used"`
	Latest    version.Info      `json:"latest" yaml:"latest"`
	Location  string            `json:"location" yaml:"location"`
	Precision version.Precision `json:"precision" yaml:"precision"`
	Current   bool              `json:"current" yaml:"current"`
}

// Lines returns the human-readable report: the used version, the latest
// version, and the verdict.
func (r *Result) Lines() []string {
	return []string{
		"Used version: " + r.Used.String(),
		"Latest version: " + r.Latest.String(),
		r.Verdict(),
	}
}

// Verdict returns the single line summarising the comparison.
func (r *Result) Verdict() string {
	if r.Current {
		return "You use the latest GeoGebra Apps version. Everything is fine!"
	}
	return fmt.Sprintf("Outdated GeoGebra Apps version in use (%s), latest is %s.", r.Used, r.Latest)
}

// Option configures a Checker.
type Option func(*Checker)

// WithResolver sets the resolver used for the lookup.
func WithResolver(r Resolver) Option {
	return func(c *Checker) {
		if r != nil {
			c.Resolver = r
		}
	}
}

// WithUsed sets the pinned version to check.
func WithUsed(v version.Info) Option {
	return func(c *Checker) {
		c.Used = v
	}
}

// WithPrecision sets the comparison precision.
func WithPrecision(p version.Precision) Option {
	return func(c *Checker) {
		c.Precision = p
	}
}

// WithURL sets the redirecting lookup location.
func WithURL(u string) Option {
	return func(c *Checker) {
		if u != "" {
			c.URL = u
		}
	}
}

// WithSuffix sets the suffix that terminates the version in the redirect target.
func WithSuffix(s string) Option {
	return func(c *Checker) {
		if s != "" {
			c.Suffix = s
		}
	}
}

// Checker compares a pinned version with the latest published one.
type Checker struct {
	Resolver  Resolver
	Used      version.Info
	Precision version.Precision
	URL       string
	Suffix    string
}

// NewChecker returns a Checker for InUse against LatestBundleURL at
// DefaultPrecision, with opts applied.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		Used:      InUse,
		Precision: DefaultPrecision,
		URL:       LatestBundleURL,
		Suffix:    version.DefaultIdentifierSuffix,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Resolver == nil {
		c.Resolver = NewHTTPResolver()
	}
	return c
}

// Check performs one lookup and compares the result with the pinned version.
// A stale pin is not an error; it is reported through Result.Current.
func (c *Checker) Check(ctx context.Context) (*Result, error) {
	if !c.Precision.IsValid() {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid precision", version.ErrInvalidPrecision)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaults.LookupTimeout)
		defer cancel()
	}

	redirect, err := c.Resolver.Resolve(ctx, c.URL)
	if err != nil {
		return nil, err
	}
	if !redirect.Present() {
		return nil, errors.WrapWithContext(errors.ErrCodeLookup, "latest version lookup failed", ErrNoRedirect,
			map[string]any{"url": c.URL})
	}

	location := redirect.Target.String()
	latest, err := version.ParseIdentifier(redirect.Target.Path, c.Suffix)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeParse, "no version in redirect target", err,
			map[string]any{"location": location})
	}

	current, err := version.Compare(c.Used, latest, c.Precision, version.OpEqual)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "version comparison failed", err)
	}

	slog.Debug("freshness check complete",
		"used", c.Used.String(),
		"latest", latest.String(),
		"precision", string(c.Precision),
		"current", current,
	)

	return &Result{
		Used:      c.Used,
		Latest:    latest,
		Location:  location,
		Precision: c.Precision,
		Current:   current,
	}, nil
}
