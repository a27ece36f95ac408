// FILE: pkg/retrieval/trimmer.go
// PURPOSE: Deterministic truncation of template bodies for prompt inclusion

package retrieval

import "strings"

const (
	maxTemplateLines = 16
	maxTemplateChars = 950

	truncationMarker = "[...]"
)

// CleanTemplateText keeps the leading trimmed non-blank lines of a template
// body within the line and character budgets, appending a truncation marker
// when anything was dropped. Idempotent: trimming a trimmed body is a no-op.
func CleanTemplateText(rawText string) string {
	rawLines := strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	kept := make([]string, 0, len(lines))
	chars := 0
	for _, line := range lines {
		if len(kept) >= maxTemplateLines {
			break
		}
		if chars+len(line) > maxTemplateChars {
			break
		}
		kept = append(kept, line)
		chars += len(line) + 1
	}

	if len(kept) < len(lines) {
		kept = append(kept, truncationMarker)
	}

	return strings.Join(kept, "\n")
}
