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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/polyfit/interpolator/pkg/engine"
	"github.com/polyfit/interpolator/pkg/errors"
	"github.com/polyfit/interpolator/pkg/freshness"
	"github.com/polyfit/interpolator/pkg/interpolation"
	"github.com/polyfit/interpolator/pkg/logging"
	"github.com/polyfit/interpolator/pkg/server"
)

const (
	name           = "interpolatord"
	versionDefault = "dev"

	// EnvTolerance overrides the abscissa tolerance used by the API.
	EnvTolerance = interpolation.EnvTolerance
)

var (
	// overridden during build with ldflags, e.g.
	// -X "github.com/polyfit/interpolator/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
func Serve() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	opts, err := optionsFromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	watcher, err := watcherFromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}
	if watcher != nil {
		opts = append(opts, WithWatcher(watcher))
		go watcher.Run(ctx)
	}

	h := NewHandler(opts...)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// optionsFromEnv reads ENGINE_URL and INTERPOLATION_TOLERANCE.
func optionsFromEnv() ([]Option, error) {
	var opts []Option

	if v := os.Getenv(EnvTolerance); v != "" {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil || tol < 0 {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"tolerance must be a non-negative number", map[string]any{"env": EnvTolerance, "value": v})
		}
		opts = append(opts, WithTolerance(tol))
	}

	if v := os.Getenv(engine.EnvEngineURL); v != "" {
		c, err := engine.NewClient(v)
		if err != nil {
			return nil, err
		}
		slog.Info("engine configured", "url", c.BaseURL())
		opts = append(opts, WithEngine(c))
	} else {
		slog.Warn("no engine configured, interpolate requests will be rejected", "env", engine.EnvEngineURL)
	}

	return opts, nil
}

// watcherFromEnv returns a scheduled freshness watcher when
// FRESHNESS_SCHEDULE is set, and nil otherwise.
func watcherFromEnv() (*freshness.Watcher, error) {
	spec := os.Getenv(freshness.EnvSchedule)
	if spec == "" {
		return nil, nil
	}
	return freshness.NewWatcher(freshness.NewChecker(), spec, freshness.WithObserver(observeFreshness))
}

// Routes returns the API routes keyed by ServeMux pattern.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"POST /v1/command":     h.HandleCommand,
		"POST /v1/interpolate": h.HandleInterpolate,
		"GET /v1/version":      h.HandleVersion,
	}
}
