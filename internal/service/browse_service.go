// FILE: internal/service/browse_service.go
package service

import (
	"time"

	"github.com/patrickmn/go-cache"

	"swim-coach-be/internal/dto"
	"swim-coach-be/internal/pkg/serverutils"
	"swim-coach-be/internal/repository/contract"
	"swim-coach-be/internal/repository/implementation"
	"swim-coach-be/pkg/catalog"
)

type IBrowseService interface {
	Browse(filters catalog.Filters, sortBy, sortOrder string, page, pageSize int) (*dto.BrowsePlansResponse, error)
	FilterOptions() (*dto.FilterOptionsResponse, error)
}

type browseService struct {
	templateRepo contract.TemplateRepository
	cache        *cache.Cache
}

const filterOptionsCacheKey = "filterOptions"

func NewBrowseService(templateRepo contract.TemplateRepository) IBrowseService {
	// Facet enumeration walks the whole corpus; a short freshness window is
	// plenty since the corpus only changes on restart.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &browseService{
		templateRepo: templateRepo,
		cache:        c,
	}
}

func (s *browseService) Browse(filters catalog.Filters, sortBy, sortOrder string, page, pageSize int) (*dto.BrowsePlansResponse, error) {
	corpus, err := s.templateRepo.Load()
	if err != nil {
		return nil, serverutils.NewConfigError("Template data not available. "+err.Error(), implementation.IngestHint)
	}

	filtered := catalog.Filter(corpus.Templates, filters)
	sorted := catalog.Sort(filtered, sortBy, sortOrder)
	paged := catalog.Paginate(sorted, page, pageSize)

	return &dto.BrowsePlansResponse{
		Plans:      paged.Items,
		Pagination: paged.Pagination,
		Filters:    filters,
	}, nil
}

func (s *browseService) FilterOptions() (*dto.FilterOptionsResponse, error) {
	if cached, found := s.cache.Get(filterOptionsCacheKey); found {
		return cached.(*dto.FilterOptionsResponse), nil
	}

	corpus, err := s.templateRepo.Load()
	if err != nil {
		return nil, serverutils.NewConfigError("Template data not available. "+err.Error(), implementation.IngestHint)
	}

	response := &dto.FilterOptionsResponse{
		FilterOptions: catalog.Facets(corpus.Templates),
		TotalPlans:    len(corpus.Templates),
		Version:       corpus.Version,
	}
	s.cache.Set(filterOptionsCacheKey, response, cache.DefaultExpiration)
	return response, nil
}
