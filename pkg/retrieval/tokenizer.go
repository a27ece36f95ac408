// FILE: pkg/retrieval/tokenizer.go
// PURPOSE: Free-text goal tokenization with stop-word filtering

package retrieval

import "strings"

// stopWords are filler terms that carry no retrieval signal for swim goals.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "into": true, "your": true, "you": true,
	"are": true, "per": true, "week": true, "weeks": true, "session": true,
	"sessions": true, "swim": true, "plan": true, "make": true, "more": true,
	"less": true, "about": true, "goal": true, "minutes": true, "minute": true,
	"each": true, "their": true, "them": true, "please": true, "want": true,
	"need": true, "like": true, "then": true, "than": true, "have": true,
	"has": true, "had": true, "will": true, "would": true, "could": true,
	"should": true, "very": true, "also": true, "just": true, "some": true,
	"over": true, "under": true,
}

// TokenizeGoal lowercases the goal text, strips everything outside [a-z0-9],
// and returns the deduplicated tokens of length >= 3 that are not stop-words.
// Empty input yields an empty slice, never an error.
func TokenizeGoal(goalText string) []string {
	var normalized strings.Builder
	normalized.Grow(len(goalText))
	for _, r := range strings.ToLower(goalText) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			normalized.WriteRune(r)
		} else {
			normalized.WriteByte(' ')
		}
	}

	seen := make(map[string]bool)
	tokens := make([]string, 0)
	for _, token := range strings.Fields(normalized.String()) {
		if len(token) < 3 || stopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}
