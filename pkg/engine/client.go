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

package engine

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/polyfit/interpolator/pkg/defaults"
	"github.com/polyfit/interpolator/pkg/errors"
	"github.com/polyfit/interpolator/pkg/serializer"
)

// EnvEngineURL names the environment variable holding the bridge base URL.
const EnvEngineURL = "ENGINE_URL"

type evalRequest struct {
	Command string `json:"command"`
}

type objectsResponse struct {
	Objects []Object `json:"objects"`
}

// Client is an Engine backed by an HTTP engine bridge.
type Client struct {
	base *url.URL
	http *serializer.HTTPClient
}

var _ Engine = (*Client)(nil)

// NewClient returns a Client for the bridge at baseURL.
func NewClient(baseURL string, opts ...serializer.HTTPClientOption) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "engine URL is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid engine URL", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "engine URL must be http or https",
			map[string]any{"url": baseURL})
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	return &Client{
		base: u,
		http: serializer.NewHTTPClient(opts...),
	}, nil
}

// BaseURL returns the bridge base URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// endpoint joins unescaped path segments onto the base URL.
func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	u := *c.base
	u.RawPath = c.base.EscapedPath() + "/" + strings.Join(escaped, "/")
	u.Path = c.base.Path + "/" + strings.Join(segments, "/")
	return u.String()
}

// Eval implements Engine.
func (c *Client) Eval(ctx context.Context, command string) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.EngineEvalTimeout)
	defer cancel()

	slog.Debug("engine eval", "command", command)

	err := c.http.DoJSON(ctx, http.MethodPost, c.endpoint("eval"), evalRequest{Command: command}, nil)
	if err != nil {
		return wrapBridgeError("command evaluation failed", err, map[string]any{"command": command})
	}
	return nil
}

// Objects implements Engine.
func (c *Client) Objects(ctx context.Context) ([]Object, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.EngineReadTimeout)
	defer cancel()

	var resp objectsResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, c.endpoint("objects"), nil, &resp); err != nil {
		return nil, wrapBridgeError("failed to list objects", err, nil)
	}
	return resp.Objects, nil
}

// Delete implements Engine.
func (c *Client) Delete(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.EngineReadTimeout)
	defer cancel()

	err := c.http.DoJSON(ctx, http.MethodDelete, c.endpoint("objects", name), nil, nil)
	if err != nil {
		return wrapBridgeError("failed to delete object", err, map[string]any{"object": name})
	}
	return nil
}

func wrapBridgeError(msg string, err error, ctx map[string]any) error {
	if ctx == nil {
		ctx = map[string]any{}
	}
	code := errors.ErrCodeEngine

	var se *serializer.StatusError
	switch {
	case stderrors.As(err, &se):
		ctx["status"] = se.StatusCode
		if body := strings.TrimSpace(string(se.Body)); body != "" {
			ctx["detail"] = body
		}
		if se.StatusCode == http.StatusServiceUnavailable {
			code = errors.ErrCodeUnavailable
		}
	case stderrors.Is(err, context.DeadlineExceeded):
		code = errors.ErrCodeTimeout
	}

	return errors.WrapWithContext(code, fmt.Sprintf("engine: %s", msg), err, ctx)
}
