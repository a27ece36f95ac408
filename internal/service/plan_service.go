// FILE: internal/service/plan_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"swim-coach-be/internal/constant"
	"swim-coach-be/internal/dto"
	"swim-coach-be/internal/pkg/logger"
	"swim-coach-be/internal/pkg/serverutils"
	"swim-coach-be/internal/repository/contract"
	"swim-coach-be/internal/repository/implementation"
	"swim-coach-be/pkg/llm"
	"swim-coach-be/pkg/retrieval"
	"swim-coach-be/pkg/retrieval/history"
	"swim-coach-be/pkg/retrieval/prompt"
)

type IPlanService interface {
	Generate(ctx context.Context, req *dto.GeneratePlanRequest, includeMeta bool) (*dto.GeneratePlanResponse, error)
}

type planService struct {
	templateRepo contract.TemplateRepository
	llmProvider  llm.LLMProvider
	logger       logger.ILogger
}

func NewPlanService(templateRepo contract.TemplateRepository, llmProvider llm.LLMProvider, logger logger.ILogger) IPlanService {
	return &planService{
		templateRepo: templateRepo,
		llmProvider:  llmProvider,
		logger:       logger,
	}
}

// Generate runs the full retrieval-and-generation flow: corpus load, goal
// tokenization, template selection, prompt assembly, the LLM call, and the
// bounded conversation history for the next turn.
func (s *planService) Generate(ctx context.Context, req *dto.GeneratePlanRequest, includeMeta bool) (*dto.GeneratePlanResponse, error) {
	hasInitialInputs := req.HasInitialInputs()
	comments := strings.TrimSpace(req.Comments)
	hasComment := comments != ""

	if !hasInitialInputs && !hasComment && req.ConversationHistory == nil {
		return nil, serverutils.NewInputError(
			"Request must include initial plan inputs or follow-up comments with conversation history.")
	}

	corpus, err := s.templateRepo.Load()
	if err != nil {
		s.logger.Error("plan", "template corpus unavailable", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewConfigError("Template data not available. "+err.Error(), implementation.IngestHint)
	}

	queryCtx := retrieval.NewQueryContext(req.Goal, req.CssMinutes, req.CssSeconds, req.SessionDuration)
	selection := retrieval.SelectTemplates(corpus, queryCtx)
	templateBlock := prompt.NewBlockBuilder(corpus.Version, selection, queryCtx).Build()

	var normalized []llm.Message
	if req.ConversationHistory != nil {
		normalized = history.Normalize(*req.ConversationHistory)
	}

	messages := make([]llm.Message, 0, len(normalized)+3)
	messages = append(messages, llm.Message{Role: "system", Content: constant.SwimCoachSystemPrompt})
	messages = append(messages, normalized...)

	var delta []llm.Message

	if len(normalized) == 0 && hasInitialInputs {
		initial := llm.Message{
			Role: "user",
			Content: fmt.Sprintf(constant.InitialPlanPromptFormat,
				req.CssMinutes, req.CssSeconds, req.Goal,
				req.Duration, req.Sessions, req.SessionDuration,
				templateBlock),
		}
		messages = append(messages, initial)
		delta = append(delta, initial)
	}

	if hasComment {
		feedback := llm.Message{Role: "user", Content: comments}
		messages = append(messages, feedback)
		delta = append(delta, feedback)
	}

	if len(delta) == 0 && len(normalized) > 0 {
		refresh := llm.Message{Role: "user", Content: constant.RegeneratePlanPrompt}
		messages = append(messages, refresh)
		delta = append(delta, refresh)
	}

	planText, err := s.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(4096),
	)
	if err != nil {
		var apiErr *llm.APIError
		if errors.As(err, &apiErr) {
			s.logger.Error("plan", "llm api error", map[string]interface{}{
				"status": apiErr.StatusCode, "error": apiErr.Message,
			})
			return nil, serverutils.NewUpstreamError(apiErr.StatusCode, apiErr.Message)
		}
		s.logger.Error("plan", "llm request failed", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewUpstreamError(0, "Failed to reach the plan generation API.")
	}

	planText = strings.TrimSpace(planText)
	if planText == "" {
		return nil, serverutils.NewUpstreamError(0, "The plan generation API returned an empty response.")
	}

	assistant := llm.Message{Role: "assistant", Content: planText}
	conversationOut := history.Window(append(append(normalized, delta...), assistant))

	response := &dto.GeneratePlanResponse{
		Plan:                planText,
		ConversationHistory: conversationOut,
	}

	if includeMeta {
		sources := make([]string, 0, len(selection.Selected))
		for _, entry := range selection.Selected {
			sources = append(sources, entry.Template.SourceFile)
		}
		response.Meta = &dto.PlanMeta{
			Templates: dto.TemplatesMeta{
				Count:           selection.TotalTemplates,
				Version:         corpus.Version,
				SourcePath:      corpus.SourcePath,
				SelectedCount:   len(selection.Selected),
				SelectedSources: sources,
			},
		}
	}

	return response, nil
}
