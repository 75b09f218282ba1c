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

package serializer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/polyfit/interpolator/pkg/defaults"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

// DecodeJSON decodes a single JSON document from r into v, reading at most
// limit bytes. Unknown fields and trailing data are rejected. A non-positive limit means
// defaults.MaxRequestBodyBytes.
func DecodeJSON(r io.Reader, limit int64, v any) error {
	if limit <= 0 {
		limit = defaults.MaxRequestBodyBytes
	}
	dec := json.NewDecoder(io.LimitReader(r, limit))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

const (
	HTTPClientUserAgent = "interpolator/1.0"
)

var (
	HTTPClientDefaultTimeout               = defaults.HTTPClientTimeout
	HTTPClientDefaultKeepAlive             = defaults.HTTPKeepAlive
	HTTPClientDefaultConnectTimeout        = defaults.HTTPConnectTimeout
	HTTPClientDefaultTLSHandshakeTimeout   = defaults.HTTPTLSHandshakeTimeout
	HTTPClientDefaultResponseHeaderTimeout = defaults.HTTPResponseHeaderTimeout
	HTTPClientDefaultIdleConnTimeout       = defaults.HTTPIdleConnTimeout
	HTTPClientDefaultMaxIdleConns          = 100
	HTTPClientDefaultMaxIdleConnsPerHost   = 10
)

// ErrTooManyRedirects is returned when a request exceeds the redirect limit.
var ErrTooManyRedirects = errors.New("stopped after too many redirects")

// StatusError is returned when the final response has a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %s", e.Method, e.URL, e.Status)
}

// HTTPClientOption defines a configuration option for HTTPClient.
type HTTPClientOption func(*HTTPClient)

// HTTPClient performs outbound requests over a tuned transport.
type HTTPClient struct {
	UserAgent    string
	MaxRedirects int
	Client       *http.Client

	customClient bool
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(userAgent string) HTTPClientOption {
	return func(c *HTTPClient) {
		c.UserAgent = userAgent
	}
}

// WithTotalTimeout bounds each request, including redirects and body reads.
func WithTotalTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.Client.Timeout = timeout
		}
	}
}

// WithConnectTimeout sets the dial timeout on the default transport.
func WithConnectTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *HTTPClient) {
		if tr, ok := c.Client.Transport.(*http.Transport); ok && timeout > 0 {
			tr.DialContext = (&net.Dialer{
				Timeout:   timeout,
				KeepAlive: HTTPClientDefaultKeepAlive,
			}).DialContext
		}
	}
}

// WithResponseHeaderTimeout sets the response header timeout on the default transport.
func WithResponseHeaderTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *HTTPClient) {
		if tr, ok := c.Client.Transport.(*http.Transport); ok && timeout > 0 {
			tr.ResponseHeaderTimeout = timeout
		}
	}
}

// WithMaxRedirects limits the number of redirects followed. With zero the
// first redirect response is returned as is.
func WithMaxRedirects(n int) HTTPClientOption {
	return func(c *HTTPClient) {
		c.MaxRedirects = n
	}
}

// WithClient replaces the underlying *http.Client. Its transport and timeout
// are used as is; redirect policy is still applied unless the client sets one.
func WithClient(client *http.Client) HTTPClientOption {
	return func(c *HTTPClient) {
		if client != nil {
			c.Client = client
			c.customClient = true
		}
	}
}

// NewHTTPClient creates a new HTTPClient with the specified options.
func NewHTTPClient(options ...HTTPClientOption) *HTTPClient {
	c := &HTTPClient{
		UserAgent:    HTTPClientUserAgent,
		MaxRedirects: defaults.LookupMaxRedirects,
		Client: &http.Client{
			Timeout:   HTTPClientDefaultTimeout,
			Transport: newDefaultHTTPTransport(),
		},
	}

	for _, opt := range options {
		opt(c)
	}

	if c.UserAgent == "" {
		c.UserAgent = HTTPClientUserAgent
	}
	if !c.customClient || c.Client.CheckRedirect == nil {
		maxRedirects := c.MaxRedirects
		c.Client.CheckRedirect = func(_ *http.Request, via []*http.Request) error {
			if maxRedirects == 0 {
				return http.ErrUseLastResponse
			}
			if len(via) > maxRedirects {
				return ErrTooManyRedirects
			}
			return nil
		}
	}
	return c
}

func newDefaultHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,

		// Connection pooling
		MaxIdleConns:        HTTPClientDefaultMaxIdleConns,
		MaxIdleConnsPerHost: HTTPClientDefaultMaxIdleConnsPerHost,

		// Timeouts
		DialContext: (&net.Dialer{
			Timeout:   HTTPClientDefaultConnectTimeout,
			KeepAlive: HTTPClientDefaultKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   HTTPClientDefaultTLSHandshakeTimeout,
		ResponseHeaderTimeout: HTTPClientDefaultResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,

		// Connection reuse
		IdleConnTimeout:   HTTPClientDefaultIdleConnTimeout,
		ForceAttemptHTTP2: true,

		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	if url == "" {
		return nil, fmt.Errorf("url is empty")
	}
	if c == nil || c.Client == nil {
		return nil, fmt.Errorf("http client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	return req, nil
}

// Head issues a HEAD request, following redirects up to MaxRedirects.
// The returned response has its body closed; resp.Request.URL is the final
// location after redirects. Non-2xx final statuses are returned as *StatusError.
func (c *HTTPClient) Head(ctx context.Context, url string) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, &StatusError{Method: http.MethodHead, URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return resp, nil
}

// ReadWithContext fetches the body at url with GET.
func (c *HTTPClient) ReadWithContext(ctx context.Context, url string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Method: http.MethodGet, URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}

// DoJSON sends in as a JSON body (when non-nil) and decodes a JSON response
// into out (when non-nil). Non-2xx statuses yield *StatusError carrying the body.
func (c *HTTPClient) DoJSON(ctx context.Context, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = buf
	}

	req, err := c.newRequest(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, defaults.MaxRequestBodyBytes))
		return &StatusError{Method: method, URL: url, StatusCode: resp.StatusCode, Status: resp.Status, Body: data}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}
