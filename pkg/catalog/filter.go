// FILE: pkg/catalog/filter.go
// PURPOSE: Structured filtering over the template corpus for the browse API

package catalog

import (
	"strings"

	"swim-coach-be/internal/entity"
)

// Filters are AND-combined; a zero-value field applies no constraint.
// Equipment is conjunctive (a plan must carry every requested tag) while
// FocusAreas is disjunctive (any one tag matches). The asymmetry is part of
// the browse contract.
type Filters struct {
	Type        string   `json:"type,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	MinDistance *float64 `json:"minDistance,omitempty"`
	MaxDistance *float64 `json:"maxDistance,omitempty"`
	PoolType    string   `json:"poolType,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
	FocusAreas  []string `json:"focusAreas,omitempty"`
	Search      string   `json:"search,omitempty"`
}

// Filter returns the templates matching every active constraint.
func Filter(templates []entity.TemplateDocument, filters Filters) []entity.TemplateDocument {
	filtered := make([]entity.TemplateDocument, 0, len(templates))
	// Lowercased but not trimmed: surrounding whitespace in the search term
	// is significant and must match the text verbatim.
	search := strings.ToLower(filters.Search)

	for _, t := range templates {
		if filters.Type != "" && filters.Type != "all" && t.PlanTypeKey != filters.Type {
			continue
		}
		if filters.Difficulty != "" && filters.Difficulty != "all" && t.Metadata.Difficulty != filters.Difficulty {
			continue
		}
		if filters.MinDistance != nil && (t.Metadata.DistanceMeters == 0 || t.Metadata.DistanceMeters < *filters.MinDistance) {
			continue
		}
		if filters.MaxDistance != nil && (t.Metadata.DistanceMeters == 0 || t.Metadata.DistanceMeters > *filters.MaxDistance) {
			continue
		}
		if filters.PoolType != "" && filters.PoolType != "all" && t.Metadata.PoolType != filters.PoolType {
			continue
		}
		if len(filters.Equipment) > 0 && !containsAll(t.Metadata.EquipmentRequired, filters.Equipment) {
			continue
		}
		if len(filters.FocusAreas) > 0 && !containsAny(t.Metadata.FocusAreas, filters.FocusAreas) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.RawText), search) &&
			!strings.Contains(strings.ToLower(t.SourceFile), search) {
			continue
		}
		filtered = append(filtered, t)
	}

	return filtered
}

func containsAll(have, want []string) bool {
	haveSet := make(map[string]bool, len(have))
	for _, v := range have {
		haveSet[v] = true
	}
	for _, v := range want {
		if !haveSet[v] {
			return false
		}
	}
	return true
}

func containsAny(have, want []string) bool {
	haveSet := make(map[string]bool, len(have))
	for _, v := range have {
		haveSet[v] = true
	}
	for _, v := range want {
		if haveSet[v] {
			return true
		}
	}
	return false
}
