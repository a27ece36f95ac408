package dto

import (
	"swim-coach-be/internal/entity"
	"swim-coach-be/pkg/catalog"
)

type BrowsePlansResponse struct {
	Plans      []entity.TemplateDocument `json:"plans"`
	Pagination catalog.Pagination        `json:"pagination"`
	Filters    catalog.Filters           `json:"filters"`
}

type FilterOptionsResponse struct {
	FilterOptions catalog.FilterOptions `json:"filterOptions"`
	TotalPlans    int                   `json:"totalPlans"`
	Version       string                `json:"version"`
}
