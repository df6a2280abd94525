// Package metrics declares the Prometheus instruments shared by the grid
// scheduler and executor. Everything registers on the default registerer and
// is exported through the API server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// JobsEnqueued counts jobs accepted into the grid queue.
	JobsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridscan_jobs_enqueued_total",
		Help: "Scan jobs accepted into the scheduler queue.",
	})

	// JobsCompleted counts jobs that reached a consensus result.
	JobsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridscan_jobs_completed_total",
		Help: "Scan jobs completed with a consensus result.",
	})

	// JobsFailed counts terminal failures by failure kind.
	JobsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridscan_jobs_failed_total",
		Help: "Scan jobs that reached a terminal failure, by kind.",
	}, []string{"kind"})

	// RateLimitDeferrals counts dispatches deferred by the domain rate limiter.
	RateLimitDeferrals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridscan_rate_limit_deferrals_total",
		Help: "Dispatch attempts deferred because the domain budget was spent.",
	})

	// ProxyUnavailable counts dispatches requeued for lack of a healthy proxy.
	ProxyUnavailable = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridscan_proxy_unavailable_total",
		Help: "Dispatch attempts requeued because no healthy proxy was available.",
	})

	// JobDuration observes end-to-end job duration from enqueue to terminal state.
	JobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridscan_job_duration_seconds",
		Help:    "End-to-end scan job duration including retries.",
		Buckets: []float64{.1, .5, 1, 5, 15, 30, 60, 120, 300, 600},
	})

	// EngineScanDuration observes per-engine scan call latency.
	EngineScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridscan_engine_scan_duration_seconds",
		Help:    "Latency of individual engine scan calls.",
		Buckets: DefaultBuckets,
	}, []string{"engine", "status"})
)
