// ABOUTME: Machine type classification into resource family and generation
// ABOUTME: Total series-prefix lookup; unrecognized input degrades to general purpose

package services

import (
	"strings"

	"github.com/matan-gr/capacity-advisor1/models"
)

// familyBySeries maps a machine series token to its resource family.
// Series not listed here classify as general purpose.
var familyBySeries = map[string]models.ResourceFamily{
	// Accelerator optimized (GPU-attached series)
	"a2": models.FamilyAcceleratorOptimized,
	"a3": models.FamilyAcceleratorOptimized,
	"a4": models.FamilyAcceleratorOptimized,
	"g2": models.FamilyAcceleratorOptimized,

	// Memory optimized
	"m1": models.FamilyMemoryOptimized,
	"m2": models.FamilyMemoryOptimized,
	"m3": models.FamilyMemoryOptimized,
	"m4": models.FamilyMemoryOptimized,
	"x4": models.FamilyMemoryOptimized,

	// Compute optimized
	"c2":  models.FamilyComputeOptimized,
	"c2d": models.FamilyComputeOptimized,
	"c3":  models.FamilyComputeOptimized,
	"c3d": models.FamilyComputeOptimized,
	"c4":  models.FamilyComputeOptimized,
	"c4a": models.FamilyComputeOptimized,
	"c4d": models.FamilyComputeOptimized,
	"h3":  models.FamilyComputeOptimized,
	"h4d": models.FamilyComputeOptimized,

	// Storage optimized
	"z3": models.FamilyStorageOptimized,

	// General purpose (explicit entries match the fallback)
	"e2":  models.FamilyGeneralPurpose,
	"n1":  models.FamilyGeneralPurpose,
	"n2":  models.FamilyGeneralPurpose,
	"n2d": models.FamilyGeneralPurpose,
	"n4":  models.FamilyGeneralPurpose,
	"t2a": models.FamilyGeneralPurpose,
	"t2d": models.FamilyGeneralPurpose,
	"f1":  models.FamilyGeneralPurpose,
	"g1":  models.FamilyGeneralPurpose,
}

// modernSeries is the latest-generation series set. Everything else is legacy.
var modernSeries = map[string]bool{
	"n4":  true,
	"c4":  true,
	"c4a": true,
	"c4d": true,
	"m4":  true,
	"x4":  true,
	"a4":  true,
	"h4d": true,
}

// Classify derives the resource family and generation tier for a machine
// type name. Classification is total: unrecognized series fall back to
// (general purpose, legacy) rather than failing.
func Classify(machineType string) (models.ResourceFamily, models.Generation) {
	series := seriesOf(machineType)

	family, ok := familyBySeries[series]
	if !ok {
		family = models.FamilyGeneralPurpose
	}

	generation := models.GenerationLegacy
	if modernSeries[series] {
		generation = models.GenerationModern
	}

	return family, generation
}

// Series returns the lowercase series token of a machine type name, e.g.
// "n2" for "n2-standard-4".
func Series(machineType string) string {
	return seriesOf(machineType)
}

// seriesOf extracts the lowercase token before the first dash.
func seriesOf(machineType string) string {
	s := strings.ToLower(strings.TrimSpace(machineType))
	if i := strings.Index(s, "-"); i >= 0 {
		return s[:i]
	}
	return s
}
