// ABOUTME: Test helpers for e2e tests
// ABOUTME: Assembles the full middleware chain the way main.go wires it

package e2e

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matan-gr/capacity-advisor1/cache"
	"github.com/matan-gr/capacity-advisor1/config"
	"github.com/matan-gr/capacity-advisor1/handlers"
	"github.com/matan-gr/capacity-advisor1/middleware"
	"github.com/matan-gr/capacity-advisor1/services"
)

// newTestServer starts an httptest server with the complete middleware
// chain from main.go: CORS outermost, then logging, metrics, rate
// limiting, and bearer auth for non-public routes.
func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	catalog, err := services.NewCatalogWithOverrides(cfg.CatalogOverrides)
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	c := cache.New(time.Duration(cfg.CacheTTL) * time.Second)
	h := handlers.NewHandler(cfg, c, catalog)

	var defaultLimiter, insightLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
		insightLimiter = middleware.NewRateLimiter(cfg.RateLimitInsights, time.Minute)
	}

	cors := middleware.CORS(cfg.CORSAllowedOrigins)
	auth := middleware.Auth(cfg.APIToken)

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		limiter := defaultLimiter
		if route.StrictLimit {
			limiter = insightLimiter
		}

		chain := []func(http.HandlerFunc) http.HandlerFunc{
			cors,
			middleware.LogRequest,
			middleware.Metrics,
			middleware.RateLimit(limiter, middleware.ClientIP),
		}
		if !route.Public {
			chain = append(chain, auth)
		}

		mux.HandleFunc(route.Path, middleware.Chain(route.Handler, chain...))
	}
	mux.Handle("/metrics", promhttp.Handler())

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// testConfig returns a config with sensible test defaults: no auth, no
// CORS origins, rate limiting off. Tests override the fields they exercise.
func testConfig() *config.Config {
	return &config.Config{
		Port:              "0",
		CacheTTL:          300,
		RateLimitDefault:  100,
		RateLimitInsights: 10,
		InsightsModel:     "claude-sonnet-4-5",
		InsightsTTL:       600,
	}
}

// withTestEnv sets environment variables, returning a cleanup function
// that restores all original values.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    t.Cleanup(withTestEnv(t, map[string]string{
//	        "CORS_ALLOWED_ORIGINS": "https://example.com",
//	    }))
//	}
func withTestEnv(t *testing.T, extra map[string]string) func() {
	t.Helper()

	originals := make(map[string]string, len(extra))
	for key := range extra {
		originals[key] = os.Getenv(key)
	}

	for key, value := range extra {
		os.Setenv(key, value)
	}

	return func() {
		for key, value := range originals {
			os.Setenv(key, value)
		}
	}
}
