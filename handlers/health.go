// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports service status, catalog size, and insights availability

package handlers

import (
	"net/http"
)

// Health returns API health status including catalog and insights state.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := map[string]interface{}{
		"status":   "ok",
		"insights": "not_configured",
	}

	if h.catalog != nil {
		resp["regions"] = len(h.catalog.Regions())
		resp["machine_types"] = len(h.catalog.MachineTypes("", ""))
	}

	if h.cache != nil {
		resp["cache_entries"] = h.cache.Len()
	}

	if h.insights != nil && h.insights.Enabled() {
		resp["insights"] = "ok"
	}

	h.writeJSON(w, http.StatusOK, resp)
}
