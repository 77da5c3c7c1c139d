// ABOUTME: Per-zone capacity scoring model with deterministic pool depths
// ABOUTME: Pure function of (family, generation, shape, region, zone, count)

package services

import (
	"math"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/samber/lo"

	"github.com/matan-gr/capacity-advisor1/models"
)

const (
	// AcceleratorDemandMultiplier inflates effective demand for GPU pools.
	AcceleratorDemandMultiplier = 1.55
	// ModernDemandMultiplier inflates effective demand for latest-generation series.
	ModernDemandMultiplier = 1.35
	// ObtainabilityDecayExponent shapes the scarcity decay curve.
	ObtainabilityDecayExponent = 1.6
	// UptimeDamping keeps uptime above obtainability while scarcity is low.
	UptimeDamping = 0.6
)

// depthMidpoint is the pool depth midpoint per family. Actual depth is
// selected within ±10% of the midpoint by a stable hash of the full input
// tuple; the band must stay narrower than the generation multiplier so the
// penalty orderings hold for every zone.
var depthMidpoint = map[models.ResourceFamily]int{
	models.FamilyGeneralPurpose:       520,
	models.FamilyComputeOptimized:     340,
	models.FamilyMemoryOptimized:      230,
	models.FamilyStorageOptimized:     160,
	models.FamilyAcceleratorOptimized: 42,
}

// poolKey is the hash input for pool depth derivation. Field values are
// normalized before hashing so equal requests hash equally.
type poolKey struct {
	Region      string
	Zone        string
	Family      string
	MachineType string
}

// ScoreCalculator computes per-zone obtainability and uptime metrics.
// It holds no state; every method is a pure function of its arguments.
type ScoreCalculator struct{}

// NewScoreCalculator creates a new calculator
func NewScoreCalculator() *ScoreCalculator {
	return &ScoreCalculator{}
}

// PoolDepth returns the simulated capacity pool depth for a machine type in
// one zone. The depth is a deterministic function of (region, zone, family,
// machineType): hundreds of instances for general purpose pools, tens for
// accelerator pools, never zero.
func (c *ScoreCalculator) PoolDepth(family models.ResourceFamily, machineType, region, zone string) int {
	mid, ok := depthMidpoint[family]
	if !ok {
		mid = depthMidpoint[models.FamilyGeneralPurpose]
	}
	spread := mid / 10

	seed := lo.Must(hashstructure.Hash(poolKey{
		Region:      strings.ToLower(region),
		Zone:        strings.ToLower(zone),
		Family:      family.String(),
		MachineType: strings.ToLower(machineType),
	}, hashstructure.FormatV2, nil))

	return mid - spread + int(seed%uint64(2*spread+1))
}

// DemandMultiplier returns the combined scarcity multiplier applied to
// effective demand: >1 for accelerator pools and modern-generation series,
// 1.0 for general purpose legacy shapes.
func (c *ScoreCalculator) DemandMultiplier(family models.ResourceFamily, generation models.Generation) float64 {
	m := 1.0
	if family == models.FamilyAcceleratorOptimized {
		m *= AcceleratorDemandMultiplier
	}
	if generation == models.GenerationModern {
		m *= ModernDemandMultiplier
	}
	return m
}

// ScoreZone computes obtainability and uptime for placing count instances
// of a machine type in one zone. Identical inputs produce bit-identical
// output across calls and process restarts; both values are within [0,1]
// and never increase when count increases.
func (c *ScoreCalculator) ScoreZone(family models.ResourceFamily, generation models.Generation, machineType, region, zone string, count int) models.ZoneMetric {
	if count == 0 {
		return models.ZoneMetric{Obtainability: 1, Uptime: 1}
	}

	depth := c.PoolDepth(family, machineType, region, zone)
	multiplier := c.DemandMultiplier(family, generation)
	ratio := float64(count) * multiplier / float64(depth)

	obtainability := clamp01(1 - math.Pow(ratio, ObtainabilityDecayExponent))
	uptime := obtainability + (1-obtainability)*UptimeDamping*(1-math.Min(ratio, 1))

	return models.ZoneMetric{
		Obtainability: obtainability,
		Uptime:        uptime,
	}
}

// Explain returns the full scoring breakdown for one zone, exposing the
// intermediate pool depth, multiplier, and scarcity ratio alongside the
// final metric pair.
func (c *ScoreCalculator) Explain(machineType, region, zone string, count int) models.ZoneScore {
	family, generation := Classify(machineType)
	metric := c.ScoreZone(family, generation, machineType, region, zone, count)

	depth := c.PoolDepth(family, machineType, region, zone)
	multiplier := c.DemandMultiplier(family, generation)

	var ratio float64
	if count > 0 {
		ratio = float64(count) * multiplier / float64(depth)
	}

	return models.ZoneScore{
		Region:        region,
		Zone:          zone,
		MachineType:   machineType,
		Family:        family,
		Generation:    generation,
		Count:         count,
		PoolDepth:     depth,
		Multiplier:    multiplier,
		ScarcityRatio: ratio,
		Obtainability: metric.Obtainability,
		Uptime:        metric.Uptime,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
