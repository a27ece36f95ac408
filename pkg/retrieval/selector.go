// FILE: pkg/retrieval/selector.go
// PURPOSE: Category-balanced template selection under the prompt budget

package retrieval

import (
	"sort"

	"swim-coach-be/internal/entity"
)

// ScoredTemplate pairs a template with its relevance score.
type ScoredTemplate struct {
	Template *entity.TemplateDocument
	Score    float64
}

// SelectionResult is the ordered, deduplicated selection plus provenance
// counters used in the prompt header and debug metadata.
type SelectionResult struct {
	Selected       []ScoredTemplate
	TotalTemplates int
	ByType         map[string]int
}

// SelectTemplates scores the full corpus, reserves up to MinPerType slots for
// the top documents of each plan type in fixed priority order, then fills the
// remaining budget in global descending score order. Ties keep original scan
// order (stable sort, no secondary key).
func SelectTemplates(corpus *entity.Corpus, ctx *QueryContext) *SelectionResult {
	scored := make([]ScoredTemplate, 0, len(corpus.Templates))
	for i := range corpus.Templates {
		doc := &corpus.Templates[i]
		scored = append(scored, ScoredTemplate{
			Template: doc,
			Score:    ScoreTemplate(doc, ctx),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	selected := make([]ScoredTemplate, 0, MaxTemplatesInPrompt)
	seenIDs := make(map[string]bool)

	for _, planType := range entity.PlanTypes {
		taken := 0
		for _, entry := range scored {
			if taken >= MinPerType {
				break
			}
			if entry.Template.PlanTypeKey != planType {
				continue
			}
			id := entry.Template.Identity()
			if seenIDs[id] {
				continue
			}
			selected = append(selected, entry)
			seenIDs[id] = true
			taken++
		}
	}

	for _, entry := range scored {
		if len(selected) >= MaxTemplatesInPrompt {
			break
		}
		id := entry.Template.Identity()
		if seenIDs[id] {
			continue
		}
		selected = append(selected, entry)
		seenIDs[id] = true
	}

	return &SelectionResult{
		Selected:       selected,
		TotalTemplates: len(corpus.Templates),
		ByType:         corpus.CountByType(),
	}
}
