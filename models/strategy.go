// ABOUTME: Distribution strategy enum for placement requests
// ABOUTME: Controls compare-mode vs balanced-mode recommendation assembly

package models

import (
	"fmt"
	"strings"
)

// DistributionStrategy controls how a request is distributed across zones.
type DistributionStrategy string

const (
	// StrategyAny compares every zone as a standalone placement option.
	StrategyAny DistributionStrategy = "any"
	// StrategySingleZone is scored identically to StrategyAny; callers treat
	// both as "compare options".
	StrategySingleZone DistributionStrategy = "single_zone"
	// StrategyBalanced splits the request evenly across all zones.
	StrategyBalanced DistributionStrategy = "balanced"
)

// String returns the string representation of the strategy.
func (s DistributionStrategy) String() string {
	return string(s)
}

// IsValid returns true if the strategy is a supported value.
func (s DistributionStrategy) IsValid() bool {
	switch s {
	case StrategyAny, StrategySingleZone, StrategyBalanced:
		return true
	default:
		return false
	}
}

// IsCompare returns true for strategies that produce one recommendation per zone.
func (s DistributionStrategy) IsCompare() bool {
	return s == StrategyAny || s == StrategySingleZone
}

// SupportedStrategies returns all supported distribution strategy values.
func SupportedStrategies() []DistributionStrategy {
	return []DistributionStrategy{StrategyAny, StrategySingleZone, StrategyBalanced}
}

// ParseDistributionStrategy parses a strategy string, defaulting empty input
// to StrategyAny. Unrecognized values return an error listing supported ones.
func ParseDistributionStrategy(value string) (DistributionStrategy, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return StrategyAny, nil
	}

	s := DistributionStrategy(v)
	if !s.IsValid() {
		supported := make([]string, 0, len(SupportedStrategies()))
		for _, known := range SupportedStrategies() {
			supported = append(supported, known.String())
		}
		return "", fmt.Errorf("invalid distribution strategy: %s, supported: %s", v, strings.Join(supported, ", "))
	}
	return s, nil
}
