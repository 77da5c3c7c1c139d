// ABOUTME: Input validation functions for API parameters
// ABOUTME: Prevents log injection via region and machine type name validation

package services

import (
	"fmt"
	"regexp"
	"strings"
)

// regionPattern matches valid region names (e.g. us-central1, europe-west4)
var regionPattern = regexp.MustCompile(`^[a-z]+-[a-z]+[0-9]+$`)

// zonePattern matches valid zone names (region plus letter suffix, e.g. us-central1-a)
var zonePattern = regexp.MustCompile(`^[a-z]+-[a-z]+[0-9]+-[a-z]$`)

// machineTypePattern matches valid machine type names (series-class-size, e.g. n2-standard-4)
var machineTypePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*(-[a-zA-Z0-9]+)+$`)

// sanitizeForLog removes control characters from strings to prevent log injection
// when including user input in error messages
func sanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1 // Remove control characters
		}
		return r
	}, s)
}

// ValidateRegion validates that a region name has the expected format.
func ValidateRegion(region string) error {
	if region == "" {
		return fmt.Errorf("region cannot be empty")
	}
	if !regionPattern.MatchString(strings.ToLower(region)) {
		return fmt.Errorf("invalid region format: %s", sanitizeForLog(region))
	}
	return nil
}

// ValidateZone validates that a zone name has the expected format.
func ValidateZone(zone string) error {
	if zone == "" {
		return fmt.Errorf("zone cannot be empty")
	}
	if !zonePattern.MatchString(strings.ToLower(zone)) {
		return fmt.Errorf("invalid zone format: %s", sanitizeForLog(zone))
	}
	return nil
}

// ValidateMachineType validates that a machine type name has a safe format.
func ValidateMachineType(machineType string) error {
	if machineType == "" {
		return fmt.Errorf("machine type cannot be empty")
	}
	if !machineTypePattern.MatchString(machineType) {
		return fmt.Errorf("invalid machine type format: %s", sanitizeForLog(machineType))
	}
	return nil
}

// ValidateInstanceCount validates that an instance count is within a sane range.
func ValidateInstanceCount(count int) error {
	if count < 0 {
		return fmt.Errorf("instance count cannot be negative: %d", count)
	}
	if count > 100000 {
		return fmt.Errorf("instance count too large: %d", count)
	}
	return nil
}
