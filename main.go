// ABOUTME: Entry point for the capacity advisor backend service
// ABOUTME: Provides HTTP API for spot capacity simulation and insights

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matan-gr/capacity-advisor1/cache"
	"github.com/matan-gr/capacity-advisor1/config"
	"github.com/matan-gr/capacity-advisor1/handlers"
	"github.com/matan-gr/capacity-advisor1/logger"
	"github.com/matan-gr/capacity-advisor1/middleware"
	"github.com/matan-gr/capacity-advisor1/services"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Capacity Advisor Backend")
	if cfg.InsightsConfigured() {
		slog.Info("Insights configured", "model", cfg.InsightsModel)
	} else {
		slog.Info("Insights not configured, summaries disabled")
	}
	if cfg.APIToken != "" {
		slog.Info("Bearer token auth enabled")
	} else {
		slog.Warn("Bearer token auth disabled, API is unauthenticated")
	}

	// Initialize cache
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	c := cache.New(cacheTTL)
	slog.Info("Cache initialized", "ttl", cacheTTL)

	// Load the zone and machine type catalog
	catalog, err := services.NewCatalogWithOverrides(cfg.CatalogOverrides)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog loaded",
		"regions", len(catalog.Regions()),
		"machine_types", len(catalog.MachineTypes("", "")),
	)

	// Initialize handlers
	h := handlers.NewHandler(cfg, c, catalog)

	// Rate limiters: one for general traffic, a stricter one for insight
	// endpoints that call the Claude API
	var defaultLimiter, insightLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
		insightLimiter = middleware.NewRateLimiter(cfg.RateLimitInsights, time.Minute)
	}

	cors := middleware.CORS(cfg.CORSAllowedOrigins)
	auth := middleware.Auth(cfg.APIToken)

	// Register routes; CORS runs outermost so preflight short-circuits
	// before auth and rate limiting
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

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
