// ABOUTME: HTTP handler for AI-generated capacity insights
// ABOUTME: Runs a simulation and summarizes the result via the Claude API

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/matan-gr/capacity-advisor1/metrics"
	"github.com/matan-gr/capacity-advisor1/models"
	"github.com/matan-gr/capacity-advisor1/services"
)

// InsightResponse pairs a generated summary with the simulation it describes.
type InsightResponse struct {
	Summary         string                  `json:"summary"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Context         models.AdviseContext    `json:"context"`
}

// GetInsights runs a capacity simulation and returns a natural-language
// summary of the recommendations. Requires insight generation to be
// configured; responds 503 when it is not.
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.insights == nil || !h.insights.Enabled() {
		h.writeError(w, "Insights not configured. Set ANTHROPIC_API_KEY to enable.", http.StatusServiceUnavailable)
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
	context := models.AdviseContext{
		Region:        req.Region,
		MachineType:   req.MachineType,
		Family:        family,
		Generation:    generation,
		InstanceCount: req.InstanceCount,
		Distribution:  strategy,
		ZoneCount:     len(zones),
		Timestamp:     time.Now().UTC(),
	}

	summary, err := h.insights.Summarize(r.Context(), context, result)
	if err != nil {
		metrics.InsightRequestsTotal.WithLabelValues("error").Inc()
		slog.Error("Insight generation failed", "region", req.Region, "machine_type", req.MachineType, "error", err)
		h.writeError(w, "Insight generation failed", http.StatusBadGateway)
		return
	}
	metrics.InsightRequestsTotal.WithLabelValues("ok").Inc()

	h.writeJSON(w, http.StatusOK, InsightResponse{
		Summary:         summary,
		Recommendations: result.Recommendations,
		Context:         context,
	})
}
