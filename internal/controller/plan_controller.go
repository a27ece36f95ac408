// FILE: internal/controller/plan_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"swim-coach-be/internal/config"
	"swim-coach-be/internal/dto"
	"swim-coach-be/internal/pkg/serverutils"
	"swim-coach-be/internal/service"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router, guards ...fiber.Handler)
	Generate(ctx *fiber.Ctx) error
}

type planController struct {
	service service.IPlanService
	appCfg  config.AppConfig
}

func NewPlanController(service service.IPlanService, appCfg config.AppConfig) IPlanController {
	return &planController{service: service, appCfg: appCfg}
}

func (c *planController) RegisterRoutes(r fiber.Router, guards ...fiber.Handler) {
	h := r.Group("/plans")
	for _, guard := range guards {
		h.Use(guard)
	}
	h.Post("/generate", c.Generate)
}

func (c *planController) Generate(ctx *fiber.Ctx) error {
	var req dto.GeneratePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInputError("Invalid JSON body")
	}

	res, err := c.service.Generate(ctx.Context(), &req, c.includeDebugMeta(ctx, &req))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// includeDebugMeta gates the retrieval metadata: a debug header, a body flag,
// the env flag, or any non-production environment enables it. Default
// production responses never carry it.
func (c *planController) includeDebugMeta(ctx *fiber.Ctx, req *dto.GeneratePlanRequest) bool {
	if ctx.Get("X-Swim-Plan-Debug") == "1" {
		return true
	}
	if req.Debug {
		return true
	}
	if c.appCfg.DebugMeta {
		return true
	}
	return c.appCfg.Environment != "production"
}
