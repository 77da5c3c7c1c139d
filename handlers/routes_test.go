// ABOUTME: Tests for route table definitions
// ABOUTME: Verifies all routes have required fields and no duplicates

package handlers

import (
	"strings"
	"testing"
)

func TestRoutes_AllRoutesHaveRequiredFields(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	routes := h.Routes()

	if len(routes) == 0 {
		t.Fatal("Routes() returned empty slice")
	}

	for i, route := range routes {
		if route.Method == "" {
			t.Errorf("Route %d: Method is empty", i)
		}
		if route.Path == "" {
			t.Errorf("Route %d: Path is empty", i)
		}
		if route.Handler == nil {
			t.Errorf("Route %d: Handler is nil", i)
		}
		if !strings.HasPrefix(route.Path, "/api/v1/") {
			t.Errorf("Route %d: Path %q must start with /api/v1/", i, route.Path)
		}
	}
}

func TestRoutes_NoDuplicatePaths(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	routes := h.Routes()

	seen := make(map[string]bool)
	for _, route := range routes {
		key := route.Method + " " + route.Path
		if seen[key] {
			t.Errorf("Duplicate route: %s", key)
		}
		seen[key] = true
	}
}

func TestRoutes_ExpectedEndpoints(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	routes := h.Routes()

	expected := map[string]bool{
		"GET /api/v1/health":                false,
		"POST /api/v1/capacity/advise":      false,
		"GET /api/v1/capacity/score":        false,
		"GET /api/v1/catalog/regions":       false,
		"GET /api/v1/catalog/machine-types": false,
		"POST /api/v1/insights":             false,
		"GET /api/v1/openapi.yaml":          false,
	}

	for _, route := range routes {
		key := route.Method + " " + route.Path
		if _, ok := expected[key]; ok {
			expected[key] = true
		}
	}

	for key, found := range expected {
		if !found {
			t.Errorf("Missing expected route: %s", key)
		}
	}
}

func TestRoutes_AccessFlags(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	for _, route := range h.Routes() {
		switch route.Path {
		case "/api/v1/health":
			if !route.Public {
				t.Error("Health route should be public")
			}
		case "/api/v1/openapi.yaml":
			if !route.Public {
				t.Error("OpenAPI route should be public")
			}
		case "/api/v1/insights":
			if !route.StrictLimit {
				t.Error("Insights route should use the strict rate limit")
			}
		default:
			if route.Public {
				t.Errorf("Route %s should not be public", route.Path)
			}
			if route.StrictLimit {
				t.Errorf("Route %s should not use the strict rate limit", route.Path)
			}
		}
	}
}
