// FILE: internal/controller/browse_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"swim-coach-be/internal/service"
	"swim-coach-be/pkg/catalog"
	"swim-coach-be/pkg/retrieval"
)

type IBrowseController interface {
	RegisterRoutes(r fiber.Router, guards ...fiber.Handler)
	Browse(ctx *fiber.Ctx) error
}

type browseController struct {
	service service.IBrowseService
}

func NewBrowseController(service service.IBrowseService) IBrowseController {
	return &browseController{service: service}
}

func (c *browseController) RegisterRoutes(r fiber.Router, guards ...fiber.Handler) {
	h := r.Group("/plans")
	for _, guard := range guards {
		h.Use(guard)
	}
	h.Get("/", c.Browse)
}

func (c *browseController) Browse(ctx *fiber.Ctx) error {
	// Facet enumeration short-circuit for the filter UI.
	if ctx.Query("action") == "getFilterOptions" {
		res, err := c.service.FilterOptions()
		if err != nil {
			return err
		}
		return ctx.JSON(res)
	}

	filters := catalog.Filters{
		Type:        ctx.Query("type"),
		Difficulty:  ctx.Query("difficulty"),
		MinDistance: retrieval.ToNumber(ctx.Query("minDistance")),
		MaxDistance: retrieval.ToNumber(ctx.Query("maxDistance")),
		PoolType:    ctx.Query("poolType"),
		Equipment:   splitCSV(ctx.Query("equipment")),
		FocusAreas:  splitCSV(ctx.Query("focusAreas")),
		Search:      ctx.Query("search"),
	}

	sortBy := ctx.Query("sortBy", "date")
	sortOrder := ctx.Query("sortOrder", "desc")
	page := queryInt(ctx, "page", 1)
	pageSize := queryInt(ctx, "pageSize", 20)

	res, err := c.service.Browse(filters, sortBy, sortOrder, page, pageSize)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func queryInt(ctx *fiber.Ctx, key string, fallback int) int {
	if value, err := strconv.Atoi(ctx.Query(key)); err == nil && value > 0 {
		return value
	}
	return fallback
}
