// ABOUTME: Prometheus collectors for the capacity advisor service
// ABOUTME: HTTP traffic, simulation, and insight generation counters

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "capacity_advisor"

var (
	// HTTPRequestsTotal counts requests by method, path, and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests processed, labeled by method, path, and status code.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request latency by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds, labeled by method and path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	// SimulationsTotal counts capacity simulations by distribution strategy
	// and resource family.
	SimulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "simulations_total",
		Help:      "Total capacity simulations run, labeled by distribution strategy and resource family.",
	}, []string{"strategy", "family"})

	// InsightRequestsTotal counts insight generations by outcome.
	InsightRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insight_requests_total",
		Help:      "Total insight generation attempts, labeled by outcome.",
	}, []string{"outcome"})
)
