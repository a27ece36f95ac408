// FILE: pkg/retrieval/context.go
// PURPOSE: Per-request query context for template retrieval

package retrieval

import (
	"encoding/json"
	"math"
	"strconv"
)

// Retrieval budgets. The selector guarantees per-type coverage before filling
// the remaining prompt budget by global score.
const (
	MinPerType           = 2
	MaxTemplatesInPrompt = 12
)

// QueryContext holds the tokenized goal and the numeric estimates derived
// from the request. Created fresh per request, discarded after selection.
type QueryContext struct {
	GoalTokens           []string
	PreferredTypes       map[string]bool
	SessionDurationMin   *float64
	TargetDistanceMeters *float64
}

// NewQueryContext derives the full scoring context from raw request inputs.
func NewQueryContext(goal string, cssMinutes, cssSeconds, sessionDuration interface{}) *QueryContext {
	tokens := TokenizeGoal(goal)
	return &QueryContext{
		GoalTokens:           tokens,
		PreferredTypes:       PreferredTypes(tokens),
		SessionDurationMin:   ToNumber(sessionDuration),
		TargetDistanceMeters: EstimateTargetDistance(cssMinutes, cssSeconds, sessionDuration),
	}
}

// ToNumber coerces a JSON-decoded value into a finite float64. Clients send
// these fields as numbers or numeric strings; anything else is treated as
// absent rather than an error.
func ToNumber(value interface{}) *float64 {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}
