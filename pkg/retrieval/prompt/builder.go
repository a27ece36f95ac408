package prompt

import (
	"fmt"
	"strings"

	"swim-coach-be/pkg/retrieval"
)

// TemplateBlockMarker opens the reference block embedded in the initial user
// turn. The history normalizer strips everything from this marker onward on
// follow-up turns.
const TemplateBlockMarker = "\n\n## REAL SWIM PLAN TEMPLATES"

// BlockBuilder renders the selected templates into the reference block for
// the generation prompt.
type BlockBuilder struct {
	version   string
	selection *retrieval.SelectionResult
	context   *retrieval.QueryContext
}

// NewBlockBuilder creates a builder for one request's selection.
func NewBlockBuilder(version string, selection *retrieval.SelectionResult, ctx *retrieval.QueryContext) *BlockBuilder {
	return &BlockBuilder{
		version:   version,
		selection: selection,
		context:   ctx,
	}
}

// Build renders the full template block. An empty selection yields an empty
// string; callers omit the block rather than treating that as an error.
func (b *BlockBuilder) Build() string {
	if len(b.selection.Selected) == 0 {
		return ""
	}

	var block strings.Builder

	b.writeHeader(&block)
	for i, entry := range b.selection.Selected {
		b.writeTemplate(&block, i, entry)
	}

	return block.String()
}

func (b *BlockBuilder) writeHeader(block *strings.Builder) {
	version := b.version
	if version == "" {
		version = "unknown"
	}

	block.WriteString("\n## REAL SWIM PLAN TEMPLATES (FULL DATASET RETRIEVAL)\n\n")
	fmt.Fprintf(block,
		"Use these reference templates selected from the full dataset (%d total plans, version %s). Reuse and adapt their set structures.\n",
		b.selection.TotalTemplates, version)
	fmt.Fprintf(block,
		"Dataset mix: mileage=%d, im=%d, fast=%d, kitchen_sink=%d.\n",
		b.selection.ByType["mileage"], b.selection.ByType["im"],
		b.selection.ByType["fast"], b.selection.ByType["kitchen_sink"])
	if b.context.TargetDistanceMeters != nil {
		fmt.Fprintf(block, "Target distance per session estimate: ~%.0fm.\n", *b.context.TargetDistanceMeters)
	}
	block.WriteString("\n")
}

func (b *BlockBuilder) writeTemplate(block *strings.Builder, index int, entry retrieval.ScoredTemplate) {
	template := entry.Template
	metadata := template.Metadata

	details := []string{fmt.Sprintf("Type=%s", template.PlanTypeKey)}
	if metadata.DistanceMeters > 0 {
		details = append(details, fmt.Sprintf("Distance=%.0fm", metadata.DistanceMeters))
	}
	if metadata.EstimatedDurationMin > 0 {
		details = append(details, fmt.Sprintf("Duration=%.0fmin", metadata.EstimatedDurationMin))
	}
	if metadata.Difficulty != "" {
		details = append(details, fmt.Sprintf("Difficulty=%s", metadata.Difficulty))
	}
	if metadata.PoolType != "" {
		details = append(details, fmt.Sprintf("Pool=%s", metadata.PoolType))
	}
	if len(metadata.FocusAreas) > 0 {
		focus := metadata.FocusAreas
		if len(focus) > 4 {
			focus = focus[:4]
		}
		details = append(details, fmt.Sprintf("Focus=%s", strings.Join(focus, ",")))
	}

	fmt.Fprintf(block, "### Template %d: %s\n", index+1, template.SourceFile)
	block.WriteString(strings.Join(details, " | "))
	block.WriteString("\n")
	block.WriteString(retrieval.CleanTemplateText(template.RawText))
	block.WriteString("\n\n---\n\n")
}
