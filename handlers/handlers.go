// ABOUTME: HTTP handlers for capacity advisor API endpoints
// ABOUTME: Handler wiring plus shared JSON response helpers

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/matan-gr/capacity-advisor1/cache"
	"github.com/matan-gr/capacity-advisor1/config"
	"github.com/matan-gr/capacity-advisor1/models"
	"github.com/matan-gr/capacity-advisor1/services"
)

type Handler struct {
	cfg      *config.Config
	cache    *cache.Cache
	catalog  *services.Catalog
	advisor  *services.Advisor
	scores   *services.ScoreCalculator
	insights *services.InsightGenerator
}

func NewHandler(cfg *config.Config, cache *cache.Cache, catalog *services.Catalog) *Handler {
	h := &Handler{
		cfg:     cfg,
		cache:   cache,
		catalog: catalog,
		advisor: services.NewAdvisor(),
		scores:  services.NewScoreCalculator(),
	}

	// Insight generation is optional; without an API key it reports disabled
	if cfg != nil {
		h.insights = services.NewInsightGenerator(
			cfg.AnthropicAPIKey,
			cfg.InsightsModel,
			cache,
			time.Duration(cfg.InsightsTTL)*time.Second,
		)
	}

	return h
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	writeError(w, message, code)
}

// writeErrorDetails includes the underlying error text in the response body.
func (h *Handler) writeErrorDetails(w http.ResponseWriter, message, details string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
