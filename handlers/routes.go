// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method      string           // HTTP method (GET, POST, etc.)
	Path        string           // URL path (e.g., "/api/v1/health")
	Handler     http.HandlerFunc // Handler function
	Public      bool             // Skip bearer auth (health checks)
	StrictLimit bool             // Apply the stricter insights rate limit
}

// Routes returns all API routes for registration under /api/v1/.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health, Public: true},

		// Capacity simulation
		{Method: http.MethodPost, Path: "/api/v1/capacity/advise", Handler: h.Advise},
		{Method: http.MethodGet, Path: "/api/v1/capacity/score", Handler: h.ScoreZone},

		// Catalog
		{Method: http.MethodGet, Path: "/api/v1/catalog/regions", Handler: h.GetRegions},
		{Method: http.MethodGet, Path: "/api/v1/catalog/machine-types", Handler: h.GetMachineTypes},

		// Insights
		{Method: http.MethodPost, Path: "/api/v1/insights", Handler: h.GetInsights, StrictLimit: true},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec, Public: true},
	}
}
