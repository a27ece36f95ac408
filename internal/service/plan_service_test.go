package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swim-coach-be/internal/dto"
	"swim-coach-be/internal/pkg/serverutils"
	"swim-coach-be/pkg/llm"
	"swim-coach-be/pkg/retrieval"
)

func initialRequest() *dto.GeneratePlanRequest {
	return &dto.GeneratePlanRequest{
		Goal:            "improve threshold endurance",
		CssMinutes:      1,
		CssSeconds:      45,
		Duration:        6,
		Sessions:        3,
		SessionDuration: 60,
	}
}

func newPlanService(llmStub *stubLLM) IPlanService {
	return NewPlanService(&stubTemplateRepo{corpus: testCorpus()}, llmStub, noopLogger{})
}

func TestGenerateRejectsEmptyRequest(t *testing.T) {
	svc := newPlanService(&stubLLM{reply: "plan"})

	_, err := svc.Generate(context.Background(), &dto.GeneratePlanRequest{}, false)

	var apiErr *serverutils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestGenerateInitialTurn(t *testing.T) {
	llmStub := &stubLLM{reply: "| Week | Session |\n| 1 | 1 |"}
	svc := newPlanService(llmStub)

	resp, err := svc.Generate(context.Background(), initialRequest(), false)
	require.NoError(t, err)

	assert.Equal(t, "| Week | Session |\n| 1 | 1 |", resp.Plan)
	assert.Nil(t, resp.Meta)

	// system prompt + one user turn sent upstream
	require.Len(t, llmStub.lastMsgs, 2)
	assert.Equal(t, "system", llmStub.lastMsgs[0].Role)
	userTurn := llmStub.lastMsgs[1].Content
	assert.Contains(t, userTurn, "improve threshold endurance")
	assert.Contains(t, userTurn, "1 minutes 45 seconds per 100m")
	assert.Contains(t, userTurn, "## REAL SWIM PLAN TEMPLATES")

	// returned history: the user turn (templates included) plus the reply
	require.Len(t, resp.ConversationHistory, 2)
	assert.Equal(t, "user", resp.ConversationHistory[0].Role)
	assert.Equal(t, "assistant", resp.ConversationHistory[1].Role)
}

func TestGenerateFollowUpWithComments(t *testing.T) {
	llmStub := &stubLLM{reply: "| revised |"}
	svc := newPlanService(llmStub)

	prior := []llm.Message{
		{Role: "user", Content: "Create a swim plan.\n\n## REAL SWIM PLAN TEMPLATES\nbig block"},
		{Role: "assistant", Content: "| original plan |"},
	}
	req := &dto.GeneratePlanRequest{
		Comments:            "Make week two harder",
		ConversationHistory: &prior,
	}

	resp, err := svc.Generate(context.Background(), req, false)
	require.NoError(t, err)

	// system + 2 normalized history turns + the comment
	require.Len(t, llmStub.lastMsgs, 4)
	assert.Equal(t, "Make week two harder", llmStub.lastMsgs[3].Content)
	// The re-transmitted first turn must not carry the template block.
	assert.NotContains(t, llmStub.lastMsgs[1].Content, "big block")
	assert.Contains(t, llmStub.lastMsgs[1].Content, "[template references omitted")

	require.Len(t, resp.ConversationHistory, 4)
	assert.Equal(t, "| revised |", resp.ConversationHistory[3].Content)
}

func TestGenerateRegenerateFallback(t *testing.T) {
	llmStub := &stubLLM{reply: "| fresh |"}
	svc := newPlanService(llmStub)

	prior := []llm.Message{
		{Role: "user", Content: "Create a swim plan."},
		{Role: "assistant", Content: "| original |"},
	}
	req := &dto.GeneratePlanRequest{ConversationHistory: &prior}

	_, err := svc.Generate(context.Background(), req, false)
	require.NoError(t, err)

	last := llmStub.lastMsgs[len(llmStub.lastMsgs)-1]
	assert.Contains(t, last.Content, "Regenerate the plan")
}

func TestGenerateEmptyHistoryPresentButNoInputs(t *testing.T) {
	// conversationHistory: [] is present, so the request is not rejected.
	// With no history turns and no inputs the initial prompt is skipped and
	// only the system turn goes upstream.
	llmStub := &stubLLM{reply: "| plan |"}
	svc := newPlanService(llmStub)

	empty := []llm.Message{}
	req := &dto.GeneratePlanRequest{ConversationHistory: &empty}

	_, err := svc.Generate(context.Background(), req, false)
	require.NoError(t, err)
	require.Len(t, llmStub.lastMsgs, 1)
	assert.Equal(t, "system", llmStub.lastMsgs[0].Role)
}

func TestGenerateCorpusUnavailable(t *testing.T) {
	svc := NewPlanService(
		&stubTemplateRepo{err: errors.New("no template bundle found")},
		&stubLLM{reply: "plan"},
		noopLogger{},
	)

	_, err := svc.Generate(context.Background(), initialRequest(), false)

	var apiErr *serverutils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
	assert.Contains(t, apiErr.Message, "Template data not available")
	assert.Contains(t, apiErr.Hint, "ingest-templates-v2")
}

func TestGenerateUpstreamAPIErrorPassthrough(t *testing.T) {
	llmStub := &stubLLM{err: &llm.APIError{StatusCode: 429, Message: "rate limited"}}
	svc := newPlanService(llmStub)

	_, err := svc.Generate(context.Background(), initialRequest(), false)

	var apiErr *serverutils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 429, apiErr.Status)
	assert.Equal(t, "rate limited", apiErr.Message)
}

func TestGenerateUpstreamNetworkError(t *testing.T) {
	llmStub := &stubLLM{err: errors.New("connection refused")}
	svc := newPlanService(llmStub)

	_, err := svc.Generate(context.Background(), initialRequest(), false)

	var apiErr *serverutils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.Status)
	assert.NotContains(t, apiErr.Message, "connection refused")
}

func TestGenerateEmptyReply(t *testing.T) {
	llmStub := &stubLLM{reply: "   \n  "}
	svc := newPlanService(llmStub)

	_, err := svc.Generate(context.Background(), initialRequest(), false)

	var apiErr *serverutils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.Status)
}

func TestGenerateMeta(t *testing.T) {
	svc := newPlanService(&stubLLM{reply: "| plan |"})

	resp, err := svc.Generate(context.Background(), initialRequest(), true)
	require.NoError(t, err)

	require.NotNil(t, resp.Meta)
	assert.Equal(t, 12, resp.Meta.Templates.Count)
	assert.Equal(t, "v2-test", resp.Meta.Templates.Version)
	assert.Equal(t, "data/templates.v2.json", resp.Meta.Templates.SourcePath)
	assert.Equal(t, retrieval.MaxTemplatesInPrompt, resp.Meta.Templates.SelectedCount)
	assert.Len(t, resp.Meta.Templates.SelectedSources, retrieval.MaxTemplatesInPrompt)
	for _, source := range resp.Meta.Templates.SelectedSources {
		assert.True(t, strings.HasSuffix(source, ".docx"))
	}
}
