// FILE: pkg/catalog/facets.go
// PURPOSE: Distinct facet values for the client-side filter UI

package catalog

import (
	"sort"

	"swim-coach-be/internal/entity"
)

type DistanceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions enumerates every distinct filterable value observed in the
// corpus, each sorted for stable display order.
type FilterOptions struct {
	Types         []string      `json:"types"`
	Difficulties  []string      `json:"difficulties"`
	PoolTypes     []string      `json:"poolTypes"`
	Equipment     []string      `json:"equipment"`
	FocusAreas    []string      `json:"focusAreas"`
	DistanceRange DistanceRange `json:"distanceRange"`
}

// Facets derives the filter options from the full unfiltered corpus.
func Facets(templates []entity.TemplateDocument) FilterOptions {
	types := make(map[string]bool)
	difficulties := make(map[string]bool)
	poolTypes := make(map[string]bool)
	equipment := make(map[string]bool)
	focusAreas := make(map[string]bool)

	var minDistance, maxDistance float64
	distanceSeen := false

	for _, t := range templates {
		types[t.PlanTypeKey] = true
		if t.Metadata.Difficulty != "" {
			difficulties[t.Metadata.Difficulty] = true
		}
		if t.Metadata.PoolType != "" {
			poolTypes[t.Metadata.PoolType] = true
		}
		for _, eq := range t.Metadata.EquipmentRequired {
			equipment[eq] = true
		}
		for _, fa := range t.Metadata.FocusAreas {
			focusAreas[fa] = true
		}
		if d := t.Metadata.DistanceMeters; d > 0 {
			if !distanceSeen || d < minDistance {
				minDistance = d
			}
			if d > maxDistance {
				maxDistance = d
			}
			distanceSeen = true
		}
	}

	return FilterOptions{
		Types:        sortedKeys(types),
		Difficulties: sortedKeys(difficulties),
		PoolTypes:    sortedKeys(poolTypes),
		Equipment:    sortedKeys(equipment),
		FocusAreas:   sortedKeys(focusAreas),
		DistanceRange: DistanceRange{
			Min: minDistance,
			Max: maxDistance,
		},
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
