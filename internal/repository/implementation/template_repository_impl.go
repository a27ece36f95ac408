package implementation

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"swim-coach-be/internal/entity"
	"swim-coach-be/internal/repository/contract"
)

// IngestHint points operators at the fix when the bundle is missing.
const IngestHint = "run the template ingestion: npm run ingest-templates-v2"

// fileTemplateRepository reads the template bundle from the first existing
// candidate path and caches the parsed corpus for the process lifetime. A
// missing bundle is a hard failure, never an empty corpus.
type fileTemplateRepository struct {
	candidates []string

	once   sync.Once
	corpus *entity.Corpus
	err    error
}

// NewTemplateRepository builds the loader. An explicit path, when configured,
// is tried before the default bundle locations. v2 bundles take priority over
// v1.
func NewTemplateRepository(explicitPath string) contract.TemplateRepository {
	candidates := make([]string, 0, 3)
	if explicitPath != "" {
		candidates = append(candidates, explicitPath)
	}
	candidates = append(candidates,
		"data/templates.v2.json",
		"data/templates.v1.json",
	)
	return &fileTemplateRepository{candidates: candidates}
}

func (r *fileTemplateRepository) Load() (*entity.Corpus, error) {
	r.once.Do(func() {
		r.corpus, r.err = r.load()
	})
	return r.corpus, r.err
}

func (r *fileTemplateRepository) load() (*entity.Corpus, error) {
	var sourcePath string
	for _, candidate := range r.candidates {
		if _, err := os.Stat(candidate); err == nil {
			sourcePath = candidate
			break
		}
	}
	if sourcePath == "" {
		return nil, fmt.Errorf("templates file not found (tried %v)", r.candidates)
	}

	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("read templates file %s: %w", sourcePath, err)
	}

	var corpus entity.Corpus
	if err := json.Unmarshal(raw, &corpus); err != nil {
		return nil, fmt.Errorf("parse templates file %s: %w", sourcePath, err)
	}

	if corpus.Templates == nil {
		corpus.Templates = []entity.TemplateDocument{}
	}
	corpus.SourcePath = sourcePath
	return &corpus, nil
}
