// ABOUTME: Data models for capacity advisor requests and responses
// ABOUTME: JSON-serializable structures matching frontend expectations

package models

import "time"

// ProvisioningModelSpot is the provisioning model for every shard this
// service emits; only preemptible capacity is simulated.
const ProvisioningModelSpot = "SPOT"

// Score names used in recommendation score lists.
const (
	ScoreObtainability = "obtainability"
	ScoreUptime        = "uptime"
)

// ZoneMetric is the per-zone scoring result. Both values are in [0,1].
type ZoneMetric struct {
	Obtainability float64 `json:"obtainability"`
	Uptime        float64 `json:"uptime"`
}

// Score is a single named metric attached to a recommendation.
type Score struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Shard is the portion of a request assigned to one zone.
type Shard struct {
	Location          string `json:"location"`
	MachineType       string `json:"machine_type"`
	Count             int    `json:"count"`
	ProvisioningModel string `json:"provisioning_model"`
}

// Recommendation is one placement option: a score pair plus the shards
// that realize it. Compare-mode recommendations carry a single shard;
// balanced-mode recommendations carry one shard per zone.
type Recommendation struct {
	Scores []Score `json:"scores"`
	Shards []Shard `json:"shards"`
}

// Obtainability returns the recommendation's obtainability score value,
// or 0 if the score list does not carry one.
func (r Recommendation) Obtainability() float64 {
	return r.scoreValue(ScoreObtainability)
}

// Uptime returns the recommendation's uptime score value, or 0 if the
// score list does not carry one.
func (r Recommendation) Uptime() float64 {
	return r.scoreValue(ScoreUptime)
}

func (r Recommendation) scoreValue(name string) float64 {
	for _, s := range r.Scores {
		if s.Name == name {
			return s.Value
		}
	}
	return 0
}

// CapacityAdvisorResponse is the engine's result: recommendations ordered
// by descending obtainability.
type CapacityAdvisorResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// AdviseRequest is the capacity advise API request body.
type AdviseRequest struct {
	Region        string `json:"region"`
	MachineType   string `json:"machine_type"`
	InstanceCount int    `json:"instance_count"`
	Distribution  string `json:"distribution"`
}

// AdviseContext echoes the resolved request back to the caller.
type AdviseContext struct {
	Region        string               `json:"region"`
	MachineType   string               `json:"machine_type"`
	Family        ResourceFamily       `json:"family"`
	Generation    Generation           `json:"generation"`
	InstanceCount int                  `json:"instance_count"`
	Distribution  DistributionStrategy `json:"distribution"`
	ZoneCount     int                  `json:"zone_count"`
	Timestamp     time.Time            `json:"timestamp"`
}

// AdviseResponse is the capacity advise API response body.
type AdviseResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	Context         AdviseContext    `json:"context"`
}

// ZoneScore is the single-zone explainability response: the metric pair
// plus the inputs that produced it.
type ZoneScore struct {
	Region        string         `json:"region"`
	Zone          string         `json:"zone"`
	MachineType   string         `json:"machine_type"`
	Family        ResourceFamily `json:"family"`
	Generation    Generation     `json:"generation"`
	Count         int            `json:"count"`
	PoolDepth     int            `json:"pool_depth"`
	Multiplier    float64        `json:"multiplier"`
	ScarcityRatio float64        `json:"scarcity_ratio"`
	Obtainability float64        `json:"obtainability"`
	Uptime        float64        `json:"uptime"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
