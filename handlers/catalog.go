// ABOUTME: HTTP handlers for catalog browsing endpoints
// ABOUTME: Lists regions and machine types with family and generation filters

package handlers

import (
	"net/http"
	"strings"

	"github.com/matan-gr/capacity-advisor1/models"
)

// GetRegions lists all regions and their zones.
func (h *Handler) GetRegions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, models.RegionsResponse{
		Regions: h.catalog.Regions(),
	})
}

// GetMachineTypes lists machine types, optionally filtered by family
// and generation query parameters.
func (h *Handler) GetMachineTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()

	var family models.ResourceFamily
	if raw := q.Get("family"); raw != "" {
		family = models.ResourceFamily(strings.ToLower(raw))
		if !family.IsValid() {
			h.writeErrorDetails(w, "Invalid family",
				"supported families: "+joinFamilies(models.SupportedFamilies()), http.StatusBadRequest)
			return
		}
	}

	var generation models.Generation
	if raw := q.Get("generation"); raw != "" {
		generation = models.Generation(strings.ToLower(raw))
		if !generation.IsValid() {
			h.writeErrorDetails(w, "Invalid generation",
				"supported generations: "+joinGenerations(models.SupportedGenerations()), http.StatusBadRequest)
			return
		}
	}

	machineTypes := h.catalog.MachineTypes(family, generation)
	h.writeJSON(w, http.StatusOK, models.MachineTypesResponse{
		MachineTypes: machineTypes,
		Count:        len(machineTypes),
	})
}

func joinFamilies(families []models.ResourceFamily) string {
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func joinGenerations(generations []models.Generation) string {
	names := make([]string, 0, len(generations))
	for _, g := range generations {
		names = append(names, g.String())
	}
	return strings.Join(names, ", ")
}
