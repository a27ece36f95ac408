// Verifies the template bundle before deploy: the corpus must load, carry a
// version, and cover every plan type with unique identities.
package main

import (
	"fmt"
	"os"

	"swim-coach-be/internal/config"
	"swim-coach-be/internal/entity"
	"swim-coach-be/internal/repository/implementation"
)

func main() {
	cfg := config.Load()
	repo := implementation.NewTemplateRepository(cfg.Templates.Path)

	corpus, err := repo.Load()
	if err != nil {
		fail(err.Error())
	}

	if corpus.Version == "" {
		fail("template bundle has no version tag")
	}
	if len(corpus.Templates) == 0 {
		fail("template bundle contains no templates")
	}

	seen := make(map[string]bool, len(corpus.Templates))
	for i := range corpus.Templates {
		id := corpus.Templates[i].Identity()
		if seen[id] {
			fail(fmt.Sprintf("duplicate template identity: %s", id))
		}
		seen[id] = true
	}

	counts := corpus.CountByType()
	for _, planType := range entity.PlanTypes {
		if counts[planType] == 0 {
			fail(fmt.Sprintf("no templates for plan type %q", planType))
		}
	}

	fmt.Printf("PASS: %s (version %s, %d templates: mileage=%d im=%d fast=%d kitchen_sink=%d)\n",
		corpus.SourcePath, corpus.Version, len(corpus.Templates),
		counts["mileage"], counts["im"], counts["fast"], counts["kitchen_sink"])
}

func fail(message string) {
	fmt.Fprintf(os.Stderr, "FAIL: %s\n", message)
	os.Exit(1)
}
