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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyfit/interpolator/pkg/errors"
)

// bridge is a minimal engine bridge: it records commands and serves a fixed object list.
type bridge struct {
	mu       sync.Mutex
	commands []string
	deleted  []string
	objects  []Object
	evalCode int
}

func (b *bridge) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/eval", func(w http.ResponseWriter, r *http.Request) {
		var req evalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.evalCode != 0 {
			http.Error(w, "syntax error in command", b.evalCode)
			return
		}
		b.commands = append(b.commands, req.Command)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/objects", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(objectsResponse{Objects: b.objects})
	})
	mux.HandleFunc("DELETE /api/objects/{name}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.deleted = append(b.deleted, r.PathValue("name"))
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func newBridge(t *testing.T, b *bridge) *Client {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL + "/api/")
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"http", "http://localhost:8081", false},
		{"https with path", "https://engine.example.com/bridge/", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"unsupported scheme", "ftp://engine", true},
		{"unparseable", "http://[::1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.url)
			if tt.wantErr {
				assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClientEval(t *testing.T) {
	b := &bridge{}
	c := newBridge(t, b)

	require.NoError(t, c.Eval(context.Background(), "f(x) = Polynomial({(0,0),(1,2)})"))
	assert.Equal(t, []string{"f(x) = Polynomial({(0,0),(1,2)})"}, b.commands)
}

func TestClientEvalRejected(t *testing.T) {
	c := newBridge(t, &bridge{evalCode: http.StatusUnprocessableEntity})

	err := c.Eval(context.Background(), "f(x) = ")
	require.Error(t, err)

	var se *errors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.ErrCodeEngine, se.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Context["status"])
	assert.Equal(t, "syntax error in command", se.Context["detail"])
}

func TestClientEvalUnavailable(t *testing.T) {
	c := newBridge(t, &bridge{evalCode: http.StatusServiceUnavailable})

	err := c.Eval(context.Background(), "(1, 1)")
	assert.Equal(t, errors.ErrCodeUnavailable, errors.CodeOf(err))
}

func TestClientObjectsAndFormula(t *testing.T) {
	b := &bridge{objects: []Object{
		{Name: "A", Type: TypePoint, Value: "A = (0, 0)"},
		{Name: "B", Type: TypePoint, Value: "B = (1, 2)"},
		{Name: "f", Type: TypeFunction, Value: "f(x) = 2x"},
	}}
	c := newBridge(t, b)

	objs, err := c.Objects(context.Background())
	require.NoError(t, err)
	assert.Len(t, objs, 3)

	points, err := ReadPoints(context.Background(), c)
	require.NoError(t, err)
	assert.Len(t, points, 2)

	formula, err := FunctionFormula(context.Background(), c, "f")
	require.NoError(t, err)
	assert.Equal(t, "f(x) = 2x", formula)
}

func TestClientDeleteAll(t *testing.T) {
	b := &bridge{objects: []Object{
		{Name: "A", Type: TypePoint},
		{Name: "a/b c", Type: TypePoint},
	}}
	c := newBridge(t, b)

	require.NoError(t, DeleteAll(context.Background(), c))
	assert.Equal(t, []string{"A", "a/b c"}, b.deleted)
}

func TestClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewClient(base)
	require.NoError(t, err)

	_, err = c.Objects(context.Background())
	assert.Equal(t, errors.ErrCodeEngine, errors.CodeOf(err))
}
