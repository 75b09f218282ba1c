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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/polyfit/interpolator/pkg/errors"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interpolator_commands_total",
			Help: "Interpolation commands built, by result code",
		},
		[]string{"result"},
	)

	interpolationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interpolator_interpolations_total",
			Help: "Engine interpolations, by result code",
		},
		[]string{"result"},
	)

	pointsPerRequest = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "interpolator_points_per_request",
			Help:    "Number of points submitted per request",
			Buckets: prometheus.ExponentialBuckets(2, 2, 8),
		},
	)

	freshnessChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interpolator_freshness_checks_total",
			Help: "Latest version lookups, by result",
		},
		[]string{"result"},
	)

	engineBundleCurrent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "interpolator_engine_bundle_current",
			Help: "1 when the pinned engine bundle matched the latest at the last scheduled check, 0 when stale",
		},
	)
)

// resultLabel is "ok" for nil and the error code otherwise.
func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return string(errors.CodeOf(err))
}
