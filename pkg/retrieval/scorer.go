// FILE: pkg/retrieval/scorer.go
// PURPOSE: Multi-factor relevance scoring of templates against a query context

package retrieval

import (
	"math"
	"strings"
	"time"

	"swim-coach-be/internal/entity"
)

// Scoring weights. Additive, every term floored at zero; there is no upper
// bound on the total.
const (
	typeMatchBonus    = 18.0
	tokenMatchBonus   = 3.0
	durationBonusBase = 20.0
	distanceBonusBase = 30.0
	distanceSlope     = 80.0
	recencyBonusBase  = 4.0
)

// ScoreTemplate computes the relevance of one template for the given context.
// Deterministic apart from the recency term's time-of-call.
//
// Token matching is a case-insensitive substring search over the concatenated
// template fields, so partial-word hits count (token "fly" matches
// "butterfly").
func ScoreTemplate(doc *entity.TemplateDocument, ctx *QueryContext) float64 {
	metadata := doc.Metadata
	haystackParts := []string{
		doc.PlanTypeKey,
		doc.PlanTypeLabel,
		doc.SourceFile,
		metadata.Difficulty,
		metadata.Intensity,
	}
	haystackParts = append(haystackParts, metadata.FocusAreas...)
	haystackParts = append(haystackParts, doc.RawText)
	haystack := strings.ToLower(strings.Join(haystackParts, " "))

	score := 0.0

	if ctx.PreferredTypes[doc.PlanTypeKey] {
		score += typeMatchBonus
	}

	for _, token := range ctx.GoalTokens {
		if strings.Contains(haystack, token) {
			score += tokenMatchBonus
		}
	}

	if metadata.EstimatedDurationMin > 0 && ctx.SessionDurationMin != nil {
		delta := math.Abs(metadata.EstimatedDurationMin - *ctx.SessionDurationMin)
		score += math.Max(0, durationBonusBase-delta)
	}

	if metadata.DistanceMeters > 0 && ctx.TargetDistanceMeters != nil {
		delta := math.Abs(metadata.DistanceMeters - *ctx.TargetDistanceMeters)
		score += math.Max(0, distanceBonusBase-delta/distanceSlope)
	}

	if metadata.Date != "" {
		if parsed, err := time.Parse("2006-01-02", metadata.Date); err == nil {
			age := time.Since(parsed)
			if age > 0 {
				ageDays := age.Hours() / 24
				score += math.Max(0, recencyBonusBase-ageDays/365)
			}
		}
	}

	return score
}
