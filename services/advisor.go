// ABOUTME: Recommendation assembler for capacity advise requests
// ABOUTME: Builds compare-mode or balanced placements from per-zone scores

package services

import (
	"errors"
	"fmt"

	"github.com/matan-gr/capacity-advisor1/models"
)

// ErrInvalidConfiguration marks advise requests the engine refuses to
// score: empty zone lists, negative counts, unknown strategies. Callers
// match it with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Advisor assembles per-zone scores into placement recommendations.
type Advisor struct {
	scores *ScoreCalculator
}

// NewAdvisor creates a new advisor
func NewAdvisor() *Advisor {
	return &Advisor{scores: NewScoreCalculator()}
}

// Advise builds the capacity advisor response for one request. Compare
// strategies produce one recommendation per zone, each placing the full
// count in that zone; the balanced strategy produces a single
// recommendation splitting the count across all zones. Recommendations are
// returned sorted by descending obtainability.
func (a *Advisor) Advise(region, machineType string, count int, strategy models.DistributionStrategy, zones []string) (models.CapacityAdvisorResponse, error) {
	if len(zones) == 0 {
		return models.CapacityAdvisorResponse{}, fmt.Errorf("%w: zone list is empty", ErrInvalidConfiguration)
	}
	if count < 0 {
		return models.CapacityAdvisorResponse{}, fmt.Errorf("%w: instance count must not be negative, got %d", ErrInvalidConfiguration, count)
	}
	if !strategy.IsValid() {
		return models.CapacityAdvisorResponse{}, fmt.Errorf("%w: unknown distribution strategy %q", ErrInvalidConfiguration, strategy.String())
	}

	family, generation := Classify(machineType)

	var recs []models.Recommendation
	if strategy.IsCompare() {
		recs = a.compareZones(family, generation, machineType, region, zones, count)
	} else {
		recs = []models.Recommendation{
			a.balanceAcrossZones(family, generation, machineType, region, zones, count),
		}
	}

	return models.CapacityAdvisorResponse{
		Recommendations: models.SortRecommendations(recs),
	}, nil
}

// compareZones builds one recommendation per zone, each carrying the entire
// request in a single shard.
func (a *Advisor) compareZones(family models.ResourceFamily, generation models.Generation, machineType, region string, zones []string, count int) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(zones))

	for _, zone := range zones {
		metric := a.scores.ScoreZone(family, generation, machineType, region, zone, count)
		recs = append(recs, models.Recommendation{
			Scores: scorePair(metric.Obtainability, metric.Uptime),
			Shards: []models.Shard{{
				Location:          zone,
				MachineType:       machineType,
				Count:             count,
				ProvisioningModel: models.ProvisioningModelSpot,
			}},
		})
	}

	return recs
}

// balanceAcrossZones splits the count as evenly as possible: every zone
// receives count/len(zones), and the first count%len(zones) zones in
// supplied order receive one extra, so shard counts differ by at most one
// and sum to the requested total exactly. The recommendation's scores are
// the arithmetic mean of per-shard metrics; a zone holding zero instances
// contributes its true score of 1.
func (a *Advisor) balanceAcrossZones(family models.ResourceFamily, generation models.Generation, machineType, region string, zones []string, count int) models.Recommendation {
	base := count / len(zones)
	remainder := count % len(zones)

	shards := make([]models.Shard, 0, len(zones))
	var obtainabilitySum, uptimeSum float64

	for i, zone := range zones {
		zoneCount := base
		if i < remainder {
			zoneCount++
		}

		metric := a.scores.ScoreZone(family, generation, machineType, region, zone, zoneCount)
		obtainabilitySum += metric.Obtainability
		uptimeSum += metric.Uptime

		shards = append(shards, models.Shard{
			Location:          zone,
			MachineType:       machineType,
			Count:             zoneCount,
			ProvisioningModel: models.ProvisioningModelSpot,
		})
	}

	n := float64(len(zones))
	return models.Recommendation{
		Scores: scorePair(obtainabilitySum/n, uptimeSum/n),
		Shards: shards,
	}
}

func scorePair(obtainability, uptime float64) []models.Score {
	return []models.Score{
		{Name: models.ScoreObtainability, Value: obtainability},
		{Name: models.ScoreUptime, Value: uptime},
	}
}
