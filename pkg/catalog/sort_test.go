package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swim-coach-be/internal/entity"
)

func planIDs(templates []entity.TemplateDocument) []string {
	ids := make([]string, len(templates))
	for i, t := range templates {
		ids[i] = t.PlanID
	}
	return ids
}

func TestSortByDateDefault(t *testing.T) {
	templates := browseFixture()

	asc := Sort(templates, "date", "asc")
	assert.Equal(t, []string{"fast-1", "mileage-1", "im-1"}, planIDs(asc))

	// Unknown keys fall back to date.
	assert.Equal(t, planIDs(asc), planIDs(Sort(templates, "bogus", "asc")))
}

func TestSortByDistance(t *testing.T) {
	got := Sort(browseFixture(), "distance", "asc")
	// Missing distance sorts as zero, ahead of every recorded value.
	assert.Equal(t, []string{"fast-1", "im-1", "mileage-1"}, planIDs(got))
}

func TestSortByDifficulty(t *testing.T) {
	got := Sort(browseFixture(), "difficulty", "asc")
	assert.Equal(t, "mileage-1", got[0].PlanID)
}

func TestSortByName(t *testing.T) {
	got := Sort(browseFixture(), "name", "asc")
	assert.Equal(t, []string{"mileage-1", "fast-1", "im-1"}, planIDs(got))
}

func TestSortDescReversesWholeSlice(t *testing.T) {
	templates := browseFixture()

	asc := Sort(templates, "distance", "asc")
	desc := Sort(templates, "distance", "desc")

	for i := range asc {
		assert.Equal(t, asc[i].PlanID, desc[len(desc)-1-i].PlanID)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	templates := browseFixture()
	before := planIDs(templates)

	Sort(templates, "name", "desc")

	assert.Equal(t, before, planIDs(templates))
}
