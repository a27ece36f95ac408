// FILE: pkg/catalog/sort.go
// PURPOSE: Pluggable sorting for browse results

package catalog

import (
	"sort"

	"swim-coach-be/internal/entity"
)

// Sort orders a copy of the templates by the requested key, ascending. An
// unknown key falls back to date. Descending order reverses the sorted slice
// as a whole, so equal-key runs keep the primary comparator's order reversed
// together rather than being re-sorted independently.
func Sort(templates []entity.TemplateDocument, sortBy, sortOrder string) []entity.TemplateDocument {
	sorted := make([]entity.TemplateDocument, len(templates))
	copy(sorted, templates)

	var less func(a, b *entity.TemplateDocument) bool
	switch sortBy {
	case "distance":
		less = func(a, b *entity.TemplateDocument) bool {
			return a.Metadata.DistanceMeters < b.Metadata.DistanceMeters
		}
	case "difficulty":
		less = func(a, b *entity.TemplateDocument) bool {
			return difficultyRank(a.Metadata.Difficulty) < difficultyRank(b.Metadata.Difficulty)
		}
	case "name":
		less = func(a, b *entity.TemplateDocument) bool {
			return a.SourceFile < b.SourceFile
		}
	default: // "date" and anything unrecognized
		less = func(a, b *entity.TemplateDocument) bool {
			return a.Metadata.Date < b.Metadata.Date
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(&sorted[i], &sorted[j])
	})

	if sortOrder == "desc" {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}

	return sorted
}

func difficultyRank(difficulty string) int {
	if rank, ok := entity.DifficultyRank[difficulty]; ok {
		return rank
	}
	return entity.DefaultDifficultyRank
}
