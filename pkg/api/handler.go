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
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/polyfit/interpolator/pkg/defaults"
	"github.com/polyfit/interpolator/pkg/engine"
	"github.com/polyfit/interpolator/pkg/errors"
	"github.com/polyfit/interpolator/pkg/freshness"
	"github.com/polyfit/interpolator/pkg/interpolation"
	"github.com/polyfit/interpolator/pkg/serializer"
	"github.com/polyfit/interpolator/pkg/server"
	"github.com/polyfit/interpolator/pkg/session"
	appversion "github.com/polyfit/interpolator/pkg/version"
)

// CommandRequest is the body of POST /v1/command and POST /v1/interpolate.
type CommandRequest struct {
	Points    []interpolation.Point `json:"points" yaml:"points"`
	Name      string                `json:"name,omitempty" yaml:"name,omitempty"`
	Tolerance *float64              `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
}

// CommandResponse is the body returned by POST /v1/command.
type CommandResponse struct {
	Command      string `json:"command" yaml:"command"`
	FunctionName string `json:"functionName" yaml:"functionName"`
	PointCount   int    `json:"pointCount" yaml:"pointCount"`
}

// VersionResponse is the body returned by GET /v1/version.
type VersionResponse struct {
	InUse     VersionRenderings    `json:"inUse" yaml:"inUse"`
	Precision appversion.Precision `json:"precision" yaml:"precision"`
	Latest    *LatestVersion       `json:"latest,omitempty" yaml:"latest,omitempty"`
}

// VersionRenderings holds a version at both precisions.
type VersionRenderings struct {
	Minor string `json:"minor" yaml:"minor"`
	Patch string `json:"patch" yaml:"patch"`
}

// LatestVersion is the outcome of a freshness check, either on demand or
// the last scheduled one.
type LatestVersion struct {
	Version   VersionRenderings `json:"version" yaml:"version"`
	Location  string            `json:"location" yaml:"location"`
	Current   bool              `json:"current" yaml:"current"`
	Verdict   string            `json:"verdict" yaml:"verdict"`
	CheckedAt string            `json:"checkedAt,omitempty" yaml:"checkedAt,omitempty"`
}

func latestFrom(res *freshness.Result) *LatestVersion {
	return &LatestVersion{
		Version:  renderings(res.Latest),
		Location: res.Location,
		Current:  res.Current,
		Verdict:  res.Verdict(),
	}
}

func renderings(v appversion.Info) VersionRenderings {
	return VersionRenderings{
		Minor: v.Render(appversion.PrecisionMinor),
		Patch: v.Render(appversion.PrecisionPatch),
	}
}

// Option configures a Handler.
type Option func(*Handler)

// WithEngine sets the engine used by POST /v1/interpolate.
func WithEngine(e engine.Engine) Option {
	return func(h *Handler) {
		h.engine = e
	}
}

// WithTolerance sets the default abscissa tolerance.
func WithTolerance(tol float64) Option {
	return func(h *Handler) {
		if tol >= 0 {
			h.tolerance = tol
		}
	}
}

// WithChecker sets the freshness checker used by GET /v1/version?check=true.
func WithChecker(c *freshness.Checker) Option {
	return func(h *Handler) {
		if c != nil {
			h.checker = c
		}
	}
}

// WithWatcher exposes the last scheduled freshness check on GET /v1/version.
func WithWatcher(w *freshness.Watcher) Option {
	return func(h *Handler) {
		h.watcher = w
	}
}

// WithDeepLinkBase sets the base URL of links returned by interpolate.
func WithDeepLinkBase(base string) Option {
	return func(h *Handler) {
		h.linkBase = base
	}
}

// Handler serves the interpolation API.
type Handler struct {
	engine    engine.Engine
	tolerance float64
	checker   *freshness.Checker
	watcher   *freshness.Watcher
	linkBase  string

	// the engine holds one shared workspace
	engineMu sync.Mutex
}

// NewHandler returns a Handler with opts applied over the defaults.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		tolerance: interpolation.DefaultTolerance,
		checker:   freshness.NewChecker(),
		linkBase:  interpolation.DefaultDeepLinkBase,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) builderOptions(req *CommandRequest) ([]interpolation.Option, error) {
	tol := h.tolerance
	if req.Tolerance != nil {
		if *req.Tolerance < 0 {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"tolerance must not be negative", map[string]any{"tolerance": *req.Tolerance})
		}
		tol = *req.Tolerance
	}
	return []interpolation.Option{
		interpolation.WithTolerance(tol),
		interpolation.WithFunctionName(req.Name),
	}, nil
}

// decodeCommandRequest reads a JSON or YAML body, chosen by Content-Type.
func decodeCommandRequest(r *http.Request) (*CommandRequest, error) {
	var req CommandRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	body := io.LimitReader(r.Body, defaults.MaxRequestBodyBytes)

	var err error
	if strings.Contains(mediaType, "yaml") {
		var reader *serializer.Reader
		reader, err = serializer.NewReader(serializer.FormatYAML, body)
		if err == nil {
			err = reader.Deserialize(&req)
		}
	} else {
		err = serializer.DecodeJSON(body, defaults.MaxRequestBodyBytes, &req)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedData, "malformed request body", err)
	}

	return &req, nil
}

// HandleCommand handles POST /v1/command.
func (h *Handler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.CommandHandlerTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	req, err := decodeCommandRequest(r)
	if err != nil {
		commandsTotal.WithLabelValues(resultLabel(err)).Inc()
		server.WriteErrorFromErr(w, r, err, "", nil)
		return
	}
	pointsPerRequest.Observe(float64(len(req.Points)))

	opts, err := h.builderOptions(req)
	if err != nil {
		commandsTotal.WithLabelValues(resultLabel(err)).Inc()
		server.WriteErrorFromErr(w, r, err, "", nil)
		return
	}

	built, err := interpolation.NewBuilder(opts...).Build(req.Points)
	commandsTotal.WithLabelValues(resultLabel(err)).Inc()
	if err != nil {
		slog.Debug("command rejected", "requestID", server.RequestID(ctx), "error", err)
		server.WriteErrorFromErr(w, r, err, "", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, CommandResponse{
		Command:      built.Command,
		FunctionName: built.FunctionName,
		PointCount:   len(built.Points),
	})
}

// HandleInterpolate handles POST /v1/interpolate.
func (h *Handler) HandleInterpolate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.InterpolateHandlerTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	req, err := decodeCommandRequest(r)
	if err != nil {
		interpolationsTotal.WithLabelValues(resultLabel(err)).Inc()
		server.WriteErrorFromErr(w, r, err, "", nil)
		return
	}
	pointsPerRequest.Observe(float64(len(req.Points)))

	opts, err := h.builderOptions(req)
	if err != nil {
		interpolationsTotal.WithLabelValues(resultLabel(err)).Inc()
		server.WriteErrorFromErr(w, r, err, "", nil)
		return
	}

	s := session.New(h.engine,
		session.WithBuilderOptions(opts...),
		session.WithDeepLinkBase(h.linkBase),
		session.WithPoints(req.Points),
	)

	res, err := h.interpolate(ctx, s)
	interpolationsTotal.WithLabelValues(resultLabel(err)).Inc()
	if err != nil {
		slog.Warn("interpolation failed", "requestID", server.RequestID(ctx), "error", err)
		server.WriteErrorFromErr(w, r, err, "interpolation failed", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, res)
}

func (h *Handler) interpolate(ctx context.Context, s *session.Session) (*session.Result, error) {
	// validation failures never wait on the engine lock
	if _, err := s.Command(); err != nil {
		return nil, err
	}
	if h.engine == nil {
		return nil, errors.New(errors.ErrCodeUnavailable, "no engine configured")
	}

	h.engineMu.Lock()
	defer h.engineMu.Unlock()

	// start from a clean workspace holding only this request's points
	if err := s.Sync(ctx); err != nil {
		return nil, err
	}
	return s.Interpolate(ctx)
}

// HandleVersion handles GET /v1/version. With check=true the latest
// published version is looked up as well; otherwise the last scheduled
// check is reported when a watcher is configured.
func (h *Handler) HandleVersion(w http.ResponseWriter, r *http.Request) {
	resp := VersionResponse{
		InUse:     renderings(h.checker.Used),
		Precision: h.checker.Precision,
	}

	if check := r.URL.Query().Get("check"); check == "true" || check == "1" {
		res, err := h.checker.Check(r.Context())
		freshnessChecksTotal.WithLabelValues(freshnessLabel(res, err)).Inc()
		if err != nil {
			slog.Warn("freshness check failed", "requestID", server.RequestID(r.Context()), "error", err)
			server.WriteErrorFromErr(w, r, err, "freshness check failed", nil)
			return
		}
		resp.Latest = latestFrom(res)
	} else if h.watcher != nil {
		if last := h.watcher.Last(); last.Result != nil {
			resp.Latest = latestFrom(last.Result)
			resp.Latest.CheckedAt = last.CheckedAt.Format(time.RFC3339)
		}
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// observeFreshness records a scheduled check in the metrics.
func observeFreshness(res *freshness.Result, err error) {
	freshnessChecksTotal.WithLabelValues(freshnessLabel(res, err)).Inc()
	if err != nil {
		return
	}
	if res.Current {
		engineBundleCurrent.Set(1)
	} else {
		engineBundleCurrent.Set(0)
	}
}

func freshnessLabel(res *freshness.Result, err error) string {
	switch {
	case err != nil:
		return resultLabel(err)
	case res.Current:
		return "current"
	default:
		return "stale"
	}
}
