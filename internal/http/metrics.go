// Copyright 2024 The PGDL Authors. All rights reserved.
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

package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pgdl/pgdl/pgdl"
)

var (
	mConversions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pgdl_conversions_total",
		Help: "Number of conversions served, by direction and result.",
	}, []string{"direction", "result"})
	mConversionSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "pgdl_conversion_seconds",
		Help: "Time to parse, translate and render a document.",
	}, []string{"direction"})
	mDiagnostics = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pgdl_diagnostics_total",
		Help: "Number of diagnostics reported by conversions, by kind.",
	}, []string{"kind"})
	mInputBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pgdl_input_bytes",
		Help:    "Size of request bodies accepted for conversion.",
		Buckets: prometheus.ExponentialBuckets(64, 4, 8),
	})
)

func observeDiagnostics(diags pgdl.Diagnostics) {
	for _, d := range diags {
		mDiagnostics.WithLabelValues(d.Kind.String()).Inc()
	}
}

var (
	mCacheHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pgdl_cache_hits",
		Help: "Number of conversions served from the response cache.",
	})
	mCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pgdl_cache_miss",
		Help: "Number of conversions not found in the response cache.",
	})
)
