// ABOUTME: HTTP metrics middleware recording Prometheus counters
// ABOUTME: Observes request counts and latency per method and path

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/matan-gr/capacity-advisor1/metrics"
)

// Metrics records request count and latency for the wrapped handler.
// Routes use fixed paths, so r.URL.Path is safe as a label.
func Metrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(wrapped, r)

		metrics.HTTPRequestsTotal.WithLabelValues(
			r.Method, r.URL.Path, strconv.Itoa(wrapped.statusCode),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			r.Method, r.URL.Path,
		).Observe(time.Since(start).Seconds())
	}
}
