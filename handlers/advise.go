// ABOUTME: HTTP handlers for capacity advise and zone score endpoints
// ABOUTME: Validates requests, runs the simulation engine, shapes responses

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matan-gr/capacity-advisor1/metrics"
	"github.com/matan-gr/capacity-advisor1/models"
	"github.com/matan-gr/capacity-advisor1/services"
)

// Advise runs a capacity simulation for the requested placement and
// returns recommendations sorted by obtainability.
func (h *Handler) Advise(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.AdviseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := services.ValidateRegion(req.Region); err != nil {
		h.writeErrorDetails(w, "Invalid region", err.Error(), http.StatusBadRequest)
		return
	}
	if err := services.ValidateMachineType(req.MachineType); err != nil {
		h.writeErrorDetails(w, "Invalid machine type", err.Error(), http.StatusBadRequest)
		return
	}
	if err := services.ValidateInstanceCount(req.InstanceCount); err != nil {
		h.writeErrorDetails(w, "Invalid instance count", err.Error(), http.StatusBadRequest)
		return
	}

	strategy, err := models.ParseDistributionStrategy(req.Distribution)
	if err != nil {
		h.writeErrorDetails(w, "Invalid distribution strategy", err.Error(), http.StatusBadRequest)
		return
	}

	zones, err := h.catalog.Zones(req.Region)
	if err != nil {
		if errors.Is(err, services.ErrRegionNotFound) {
			h.writeError(w, "Unknown region: "+req.Region, http.StatusNotFound)
			return
		}
		slog.Error("Zone lookup failed", "region", req.Region, "error", err)
		h.writeError(w, "Failed to resolve zones", http.StatusInternalServerError)
		return
	}

	result, err := h.advisor.Advise(req.Region, req.MachineType, req.InstanceCount, strategy, zones)
	if err != nil {
		if errors.Is(err, services.ErrInvalidConfiguration) {
			h.writeErrorDetails(w, "Invalid configuration", err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("Simulation failed", "region", req.Region, "machine_type", req.MachineType, "error", err)
		h.writeError(w, "Simulation failed", http.StatusInternalServerError)
		return
	}

	family, generation := services.Classify(req.MachineType)
	metrics.SimulationsTotal.WithLabelValues(string(strategy), family.String()).Inc()

	h.writeJSON(w, http.StatusOK, models.AdviseResponse{
		Recommendations: result.Recommendations,
		Context: models.AdviseContext{
			Region:        req.Region,
			MachineType:   req.MachineType,
			Family:        family,
			Generation:    generation,
			InstanceCount: req.InstanceCount,
			Distribution:  strategy,
			ZoneCount:     len(zones),
			Timestamp:     time.Now().UTC(),
		},
	})
}

// ScoreZone explains the score a single zone would receive, including
// the pool depth and scarcity inputs behind the metric pair.
func (h *Handler) ScoreZone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	region := q.Get("region")
	zone := q.Get("zone")
	machineType := q.Get("machine_type")

	if err := services.ValidateRegion(region); err != nil {
		h.writeErrorDetails(w, "Invalid region", err.Error(), http.StatusBadRequest)
		return
	}
	if err := services.ValidateZone(zone); err != nil {
		h.writeErrorDetails(w, "Invalid zone", err.Error(), http.StatusBadRequest)
		return
	}
	if err := services.ValidateMachineType(machineType); err != nil {
		h.writeErrorDetails(w, "Invalid machine type", err.Error(), http.StatusBadRequest)
		return
	}

	count := 1
	if raw := q.Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, "Invalid count: must be an integer", http.StatusBadRequest)
			return
		}
		if err := services.ValidateInstanceCount(parsed); err != nil {
			h.writeErrorDetails(w, "Invalid count", err.Error(), http.StatusBadRequest)
			return
		}
		count = parsed
	}

	zones, err := h.catalog.Zones(region)
	if err != nil {
		if errors.Is(err, services.ErrRegionNotFound) {
			h.writeError(w, "Unknown region: "+region, http.StatusNotFound)
			return
		}
		slog.Error("Zone lookup failed", "region", region, "error", err)
		h.writeError(w, "Failed to resolve zones", http.StatusInternalServerError)
		return
	}

	known := false
	for _, z := range zones {
		if strings.EqualFold(z, zone) {
			known = true
			break
		}
	}
	if !known {
		h.writeError(w, "Unknown zone: "+zone, http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, h.scores.Explain(machineType, region, zone, count))
}
