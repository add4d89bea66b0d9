// Package metrics exposes the Prometheus counters and histograms emitted
// by the probe, cache, selector and dispatcher layers. These are
// observability only and are never consulted for selection decisions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProbeResultTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rpcproxy",
		Name:      "probe_result_total",
		Help:      "Total number of probe outcomes, by status.",
	}, []string{"status"})

	ProbeLatencySeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rpcproxy",
		Name:      "probe_latency_seconds",
		Help:      "Latency of a URL's probe round-trip, by resulting status.",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"status"})

	CacheHitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rpcproxy",
		Name:      "cache_hit_total",
		Help:      "Number of fresh-cache hits in the Selector, by outcome.",
	}, []string{"outcome"}) // fresh (misses are not counted)

	ProbeTriggeredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rpcproxy",
		Name:      "probe_triggered_total",
		Help:      "Number of times the Selector actually ran the Prober for a chain.",
	}, []string{"chainId"})

	DispatchAttemptTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rpcproxy",
		Name:      "dispatch_attempt_total",
		Help:      "Per-attempt outcome of Dispatcher.Send, by result.",
	}, []string{"chainId", "result"}) // success | failure

	DispatchOutcomeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rpcproxy",
		Name:      "dispatch_outcome_total",
		Help:      "Final outcome of Dispatcher.Send calls, by result.",
	}, []string{"chainId", "result"}) // success | no_endpoints | all_failed
)
