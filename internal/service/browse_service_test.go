package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swim-coach-be/internal/entity"
	"swim-coach-be/internal/pkg/serverutils"
	"swim-coach-be/pkg/catalog"
)

func TestBrowsePipeline(t *testing.T) {
	svc := NewBrowseService(&stubTemplateRepo{corpus: testCorpus()})

	resp, err := svc.Browse(catalog.Filters{Type: "mileage"}, "distance", "desc", 1, 2)
	require.NoError(t, err)

	require.Len(t, resp.Plans, 2)
	assert.Equal(t, "mileage-2", resp.Plans[0].PlanID)
	assert.Equal(t, "mileage-1", resp.Plans[1].PlanID)
	assert.Equal(t, 3, resp.Pagination.TotalCount)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
	assert.Equal(t, "mileage", resp.Filters.Type)
}

func TestBrowseCorpusUnavailable(t *testing.T) {
	svc := NewBrowseService(&stubTemplateRepo{err: errors.New("no template bundle found")})

	_, err := svc.Browse(catalog.Filters{}, "date", "desc", 1, 20)

	var apiErr *serverutils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
	assert.NotEmpty(t, apiErr.Hint)
}

func TestFilterOptions(t *testing.T) {
	svc := NewBrowseService(&stubTemplateRepo{corpus: testCorpus()})

	resp, err := svc.FilterOptions()
	require.NoError(t, err)

	assert.Equal(t, 12, resp.TotalPlans)
	assert.Equal(t, "v2-test", resp.Version)
	assert.ElementsMatch(t, entity.PlanTypes, resp.FilterOptions.Types)
	assert.Equal(t, 2000.0, resp.FilterOptions.DistanceRange.Min)
	assert.Equal(t, 2600.0, resp.FilterOptions.DistanceRange.Max)
}

func TestFilterOptionsCached(t *testing.T) {
	repo := &stubTemplateRepo{corpus: testCorpus()}
	svc := NewBrowseService(repo)

	first, err := svc.FilterOptions()
	require.NoError(t, err)

	// A repository failure after the first call is invisible while the cache
	// entry is fresh.
	repo.corpus = nil
	repo.err = errors.New("bundle vanished")

	second, err := svc.FilterOptions()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
