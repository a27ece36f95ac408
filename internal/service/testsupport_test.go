package service

import (
	"context"
	"fmt"

	"swim-coach-be/internal/entity"
	"swim-coach-be/pkg/llm"
)

// noopLogger satisfies logger.ILogger without producing output.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// stubTemplateRepo serves a fixed corpus or a fixed error.
type stubTemplateRepo struct {
	corpus *entity.Corpus
	err    error
}

func (r *stubTemplateRepo) Load() (*entity.Corpus, error) {
	return r.corpus, r.err
}

// stubLLM records the messages of the last Chat call and returns a canned
// reply or error.
type stubLLM struct {
	reply    string
	err      error
	lastMsgs []llm.Message
}

func (p *stubLLM) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	p.lastMsgs = history
	return p.reply, p.err
}

func (p *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func testCorpus() *entity.Corpus {
	corpus := &entity.Corpus{Version: "v2-test", SourcePath: "data/templates.v2.json"}
	for _, planType := range entity.PlanTypes {
		for i := 0; i < 3; i++ {
			corpus.Templates = append(corpus.Templates, entity.TemplateDocument{
				PlanID:      fmt.Sprintf("%s-%d", planType, i),
				PlanTypeKey: planType,
				SourceFile:  fmt.Sprintf("%s_%d.docx", planType, i),
				RawText:     "Warm up: 300 free + 100 pull\nMain set: 6x200m\nCool down: 100 free",
				Metadata: entity.TemplateMetadata{
					DistanceMeters: 2000 + float64(i)*300,
					Difficulty:     "intermediate",
					Date:           fmt.Sprintf("2024-0%d-15", i+1),
				},
			})
		}
	}
	return corpus
}
