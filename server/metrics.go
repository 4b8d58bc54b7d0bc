// SPDX-License-Identifier: MIT

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// engineRuns counts engine calls.
	// Labels: method, outcome (a status name or an error kind)
	engineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "numlab",
		Subsystem: "engine",
		Name:      "runs_total",
		Help:      "Engine calls by method and outcome",
	}, []string{"method", "outcome"})

	// engineIterations tracks loop passes (or elimination stages) per call.
	engineIterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "numlab",
		Subsystem: "engine",
		Name:      "iterations",
		Help:      "Iterations performed per successful engine call",
		Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 500, 1000, 10000},
	}, []string{"method"})

	// engineDuration measures wall time per call, failures included.
	engineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "numlab",
		Subsystem: "engine",
		Name:      "duration_seconds",
		Help:      "Engine call latency in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"method"})
)

func observe(method, outcome string, iterations int, elapsed time.Duration) {
	engineRuns.WithLabelValues(method, outcome).Inc()
	engineDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	if iterations > 0 {
		engineIterations.WithLabelValues(method).Observe(float64(iterations))
	}
}
