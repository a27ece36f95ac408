package dto

import "swim-coach-be/pkg/llm"

// GeneratePlanRequest is the body of POST /api/plans/generate. The numeric
// fields arrive as numbers or numeric strings depending on the client form
// state, so they stay untyped until coercion.
type GeneratePlanRequest struct {
	Goal                string         `json:"goal"`
	CssMinutes          interface{}    `json:"cssMinutes"`
	CssSeconds          interface{}    `json:"cssSeconds"`
	Duration            interface{}    `json:"duration"`
	Sessions            interface{}    `json:"sessions"`
	SessionDuration     interface{}    `json:"sessionDuration"`
	Comments            string         `json:"comments"`
	ConversationHistory *[]llm.Message `json:"conversationHistory"` // nil means the field was absent
	Debug               bool           `json:"debug"`
}

// HasInitialInputs reports whether the request carries the complete first-turn
// input set.
func (r *GeneratePlanRequest) HasInitialInputs() bool {
	return r.Goal != "" &&
		r.CssMinutes != nil &&
		r.CssSeconds != nil &&
		r.Duration != nil &&
		r.Sessions != nil &&
		r.SessionDuration != nil
}

type TemplatesMeta struct {
	Count           int      `json:"count"`
	Version         string   `json:"version"`
	SourcePath      string   `json:"sourcePath"`
	SelectedCount   int      `json:"selectedCount"`
	SelectedSources []string `json:"selectedSources"`
}

type PlanMeta struct {
	Templates TemplatesMeta `json:"templates"`
}

type GeneratePlanResponse struct {
	Plan                string        `json:"plan"`
	ConversationHistory []llm.Message `json:"conversationHistory"`
	Meta                *PlanMeta     `json:"meta,omitempty"`
}
