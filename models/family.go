// ABOUTME: Resource family and generation enums for machine type classification
// ABOUTME: String-typed enums with validation and supported-value helpers

package models

// ResourceFamily is the coarse capacity class of a machine type.
type ResourceFamily string

const (
	FamilyGeneralPurpose       ResourceFamily = "general_purpose"
	FamilyComputeOptimized     ResourceFamily = "compute_optimized"
	FamilyMemoryOptimized      ResourceFamily = "memory_optimized"
	FamilyAcceleratorOptimized ResourceFamily = "accelerator_optimized"
	FamilyStorageOptimized     ResourceFamily = "storage_optimized"
)

// String returns the string representation of the resource family.
func (f ResourceFamily) String() string {
	return string(f)
}

// IsValid returns true if the resource family is a supported value.
func (f ResourceFamily) IsValid() bool {
	switch f {
	case FamilyGeneralPurpose, FamilyComputeOptimized, FamilyMemoryOptimized,
		FamilyAcceleratorOptimized, FamilyStorageOptimized:
		return true
	default:
		return false
	}
}

// SupportedFamilies returns all supported resource family values.
func SupportedFamilies() []ResourceFamily {
	return []ResourceFamily{
		FamilyGeneralPurpose,
		FamilyComputeOptimized,
		FamilyMemoryOptimized,
		FamilyAcceleratorOptimized,
		FamilyStorageOptimized,
	}
}

// Generation is the machine series generation tier.
type Generation string

const (
	GenerationLegacy Generation = "legacy"
	GenerationModern Generation = "modern"
)

// String returns the string representation of the generation.
func (g Generation) String() string {
	return string(g)
}

// IsValid returns true if the generation is a supported value.
func (g Generation) IsValid() bool {
	switch g {
	case GenerationLegacy, GenerationModern:
		return true
	default:
		return false
	}
}

// SupportedGenerations returns all supported generation values.
func SupportedGenerations() []Generation {
	return []Generation{GenerationLegacy, GenerationModern}
}
