// FILE: pkg/catalog/paginate.go
// PURPOSE: Page slicing with navigation metadata

package catalog

import "swim-coach-be/internal/entity"

// Pagination carries everything a client needs to render navigation without a
// second request.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// Page holds one page of results plus its pagination metadata.
type Page struct {
	Items      []entity.TemplateDocument
	Pagination Pagination
}

// Paginate slices the templates for the requested page. The page number is
// clamped into [1, totalPages], so out-of-range requests return the nearest
// valid page rather than an empty one.
func Paginate(templates []entity.TemplateDocument, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	totalCount := len(templates)
	totalPages := (totalCount + pageSize - 1) / pageSize

	currentPage := page
	if currentPage > totalPages {
		currentPage = totalPages
	}
	if currentPage < 1 {
		currentPage = 1
	}

	start := (currentPage - 1) * pageSize
	end := start + pageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return Page{
		Items: templates[start:end],
		Pagination: Pagination{
			CurrentPage: currentPage,
			PageSize:    pageSize,
			TotalPages:  totalPages,
			TotalCount:  totalCount,
			HasNext:     currentPage < totalPages,
			HasPrevious: currentPage > 1,
		},
	}
}
