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
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/polyfit/interpolator/pkg/errors"
)

// EnvSchedule holds the cron expression for periodic checks in the API server.
const EnvSchedule = "FRESHNESS_SCHEDULE"

// Snapshot is the most recent outcome recorded by a Watcher.
type Snapshot struct {
	Result    *Result
	Err       error
	CheckedAt time.Time
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithObserver registers fn to be called after every check.
func WithObserver(fn func(*Result, error)) WatcherOption {
	return func(w *Watcher) {
		w.observer = fn
	}
}

// Watcher runs a Checker on a cron schedule and keeps the latest outcome.
type Watcher struct {
	checker  *Checker
	spec     string
	schedule cron.Schedule
	observer func(*Result, error)

	mu   sync.RWMutex
	last Snapshot
}

// NewWatcher parses spec (standard five-field cron or a descriptor such as
// "@every 6h") and returns a Watcher for c.
func NewWatcher(c *Checker, spec string, opts ...WatcherOption) (*Watcher, error) {
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "checker is required")
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid freshness schedule", err,
			map[string]any{"schedule": spec})
	}

	w := &Watcher{
		checker:  c,
		spec:     spec,
		schedule: schedule,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Schedule returns the cron expression the watcher was built with.
func (w *Watcher) Schedule() string {
	return w.spec
}

// Last returns the most recent outcome. CheckedAt is zero before the first check.
func (w *Watcher) Last() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.last
}

// Run checks once immediately, then on every scheduled tick until ctx is
// done. Overlapping ticks are skipped.
func (w *Watcher) Run(ctx context.Context) {
	w.check(ctx)

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(w.schedule, cron.FuncJob(func() { w.check(ctx) }))
	c.Start()
	slog.Info("freshness watcher started", "schedule", w.spec)

	<-ctx.Done()
	<-c.Stop().Done()
	slog.Info("freshness watcher stopped")
}

func (w *Watcher) check(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	res, err := w.checker.Check(ctx)
	if err != nil {
		slog.Warn("scheduled freshness check failed", "error", err)
	} else if !res.Current {
		slog.Warn("engine bundle is outdated", "used", res.Used.String(), "latest", res.Latest.String())
	}

	w.mu.Lock()
	w.last = Snapshot{Result: res, Err: err, CheckedAt: time.Now().UTC()}
	w.mu.Unlock()

	if w.observer != nil {
		w.observer(res, err)
	}
}
