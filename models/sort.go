// ABOUTME: Recommendation ordering for capacity advisor responses
// ABOUTME: Stable descending sort by obtainability, ties keep zone-list order

package models

import "sort"

// SortRecommendations orders recommendations by obtainability in descending
// order. The sort is stable so recommendations with equal obtainability keep
// the order their zones were supplied in, which makes repeated runs with
// identical inputs produce identical output ordering.
func SortRecommendations(recs []Recommendation) []Recommendation {
	if len(recs) == 0 {
		return recs
	}

	// Make a copy to avoid modifying the original slice
	sorted := make([]Recommendation, len(recs))
	copy(sorted, recs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Obtainability() > sorted[j].Obtainability()
	})

	return sorted
}
