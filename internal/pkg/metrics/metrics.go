package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeRateLimited = "rate_limited"
)

var (
	// RemoteCalls The total number of calls made to remote services (counter)
	RemoteCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "remote",
			Name:      "calls_total",
			Help:      "The total number of calls made to remote services",
		},
		[]string{"service", "outcome"},
	)

	// RemoteCallDuration Time spent waiting on remote services (histogram)
	RemoteCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "remote",
			Name:      "call_duration_seconds",
			Help:      "Time spent waiting on remote services",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	// SearchSessions The total number of finished search sessions by final state (counter)
	SearchSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "search",
			Name:      "sessions_total",
			Help:      "The total number of finished search sessions by final state",
		},
		[]string{"state"},
	)

	// ActiveSearches Number of search sessions currently running (gauge)
	ActiveSearches = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "search",
			Name:      "sessions_active",
			Help:      "Number of search sessions currently running",
		},
	)

	// HTTPRequests The total number of HTTP requests served (counter)
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "http",
			Name:      "requests_total",
			Help:      "The total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration Time spent serving HTTP requests (histogram)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "http",
			Name:      "request_duration_seconds",
			Help:      "Time spent serving HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
