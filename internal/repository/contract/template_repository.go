package contract

import "swim-coach-be/internal/entity"

// TemplateRepository loads the template corpus. Implementations memoize the
// first successful load for the process lifetime; tests substitute a fixture
// without filesystem access.
type TemplateRepository interface {
	Load() (*entity.Corpus, error)
}
