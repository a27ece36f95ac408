// FILE: pkg/retrieval/hints.go
// PURPOSE: Map goal tokens to preferred plan types via fixed hint keywords

package retrieval

// typeHints associates each plan type with the goal keywords that signal it.
var typeHints = map[string][]string{
	"mileage":      {"endurance", "aerobic", "volume", "distance", "base", "stamina"},
	"im":           {"im", "medley", "stroke", "strokes", "butterfly", "backstroke", "breaststroke"},
	"fast":         {"speed", "fast", "sprint", "anaerobic", "pace", "threshold", "race"},
	"kitchen_sink": {"mixed", "variety", "technique", "drill", "skills", "combo"},
}

// PreferredTypes returns the set of plan types whose hints intersect the goal
// tokens. Multiple types may match, or none.
func PreferredTypes(goalTokens []string) map[string]bool {
	tokenSet := make(map[string]bool, len(goalTokens))
	for _, token := range goalTokens {
		tokenSet[token] = true
	}

	preferred := make(map[string]bool)
	for planType, hints := range typeHints {
		for _, hint := range hints {
			if tokenSet[hint] {
				preferred[planType] = true
				break
			}
		}
	}
	return preferred
}
