// FILE: internal/entity/template_entity.go
package entity

// PlanTypes is the fixed category set, in selection priority order.
var PlanTypes = []string{"mileage", "im", "fast", "kitchen_sink"}

// DifficultyRank orders difficulties for sorting. Unknown or absent
// difficulties rank as intermediate.
var DifficultyRank = map[string]int{
	"beginner":     1,
	"intermediate": 2,
	"advanced":     3,
	"elite":        4,
}

const DefaultDifficultyRank = 2

// TemplateMetadata carries the optional enrichment fields produced by the
// ingestion pipeline. Zero values mean "absent".
type TemplateMetadata struct {
	DistanceMeters       float64  `json:"distance_meters,omitempty"`
	EstimatedDurationMin float64  `json:"estimated_duration_minutes,omitempty"`
	Difficulty           string   `json:"difficulty,omitempty"`
	Intensity            string   `json:"intensity,omitempty"`
	PoolType             string   `json:"pool_type,omitempty"`
	EquipmentRequired    []string `json:"equipment_required,omitempty"`
	FocusAreas           []string `json:"focus_areas,omitempty"`
	Date                 string   `json:"date,omitempty"`
}

// TemplateDocument is one reference swim plan. Documents are read-only after
// corpus load; nothing in the process mutates them.
type TemplateDocument struct {
	PlanID        string           `json:"plan_id,omitempty"`
	PlanTypeKey   string           `json:"plan_type_key"`
	PlanTypeLabel string           `json:"plan_type_label,omitempty"`
	SourceFile    string           `json:"source_file"`
	RawText       string           `json:"raw_text"`
	Metadata      TemplateMetadata `json:"metadata"`
}

// Identity returns the unique key for a document within a corpus snapshot.
// Older bundles lack plan_id, so the type:source composite is the fallback.
func (t *TemplateDocument) Identity() string {
	if t.PlanID != "" {
		return t.PlanID
	}
	return t.PlanTypeKey + ":" + t.SourceFile
}

// Corpus is a versioned template collection loaded once per process.
type Corpus struct {
	Version    string             `json:"version"`
	Templates  []TemplateDocument `json:"templates"`
	SourcePath string             `json:"-"`
}

func (c *Corpus) CountByType() map[string]int {
	counts := make(map[string]int, len(PlanTypes))
	for i := range c.Templates {
		counts[c.Templates[i].PlanTypeKey]++
	}
	return counts
}
