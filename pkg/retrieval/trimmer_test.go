package retrieval

import (
	"fmt"
	"strings"
	"testing"
)

func TestCleanTemplateTextShortBodyUnchanged(t *testing.T) {
	in := "Warm up: 400m easy\nMain set: 8x100m\nCool down: 200m"
	if got := CleanTemplateText(in); got != in {
		t.Errorf("short body changed:\n%s", got)
	}
}

func TestCleanTemplateTextNormalizesWhitespace(t *testing.T) {
	in := "  Warm up  \r\n\r\n\r\nMain set\n\n   \nCool down  "
	want := "Warm up\nMain set\nCool down"
	if got := CleanTemplateText(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanTemplateTextLineBudget(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}

	got := CleanTemplateText(b.String())
	lines := strings.Split(got, "\n")

	if len(lines) != maxTemplateLines+1 {
		t.Fatalf("got %d lines, want %d content lines plus marker", len(lines), maxTemplateLines)
	}
	if lines[len(lines)-1] != truncationMarker {
		t.Errorf("last line = %q, want marker", lines[len(lines)-1])
	}
	if lines[0] != "line 0" || lines[maxTemplateLines-1] != "line 15" {
		t.Errorf("unexpected kept lines: first=%q last=%q", lines[0], lines[maxTemplateLines-1])
	}
}

func TestCleanTemplateTextCharBudget(t *testing.T) {
	long := strings.Repeat("a", 600)
	in := long + "\n" + long + "\n" + long

	got := CleanTemplateText(in)
	lines := strings.Split(got, "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want first line plus marker", len(lines))
	}
	if lines[0] != long {
		t.Errorf("first line altered")
	}
	if lines[1] != truncationMarker {
		t.Errorf("last line = %q, want marker", lines[1])
	}
}

func TestCleanTemplateTextEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\r\n"} {
		if got := CleanTemplateText(in); got != "" {
			t.Errorf("CleanTemplateText(%q) = %q, want empty", in, got)
		}
	}
}

func TestCleanTemplateTextIdempotent(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&b, "set %d: %s\n", i, strings.Repeat("x", 60))
	}
	inputs := []string{
		"short body",
		b.String(),
		strings.Repeat("y", 2000),
	}
	for _, in := range inputs {
		once := CleanTemplateText(in)
		twice := CleanTemplateText(once)
		if once != twice {
			t.Errorf("not idempotent:\nonce: %q\ntwice: %q", once, twice)
		}
	}
}
