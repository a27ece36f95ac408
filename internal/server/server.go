package server

import (
	"log"

	"swim-coach-be/internal/bootstrap"
	"swim-coach-be/internal/config"
	"swim-coach-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	// Initialize Fiber App
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB; conversation histories are bounded anyway
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Swim-Plan-Debug",
		AllowMethods:     "GET, POST, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Routes
	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)

	// The browse and generation routes are open by default, matching the
	// cookie-gated frontend; AUTH_PROTECT_API enforces the gate server-side.
	var guards []fiber.Handler
	if cfg.Auth.ProtectAPI {
		guards = append(guards, serverutils.SessionMiddleware(cfg.Auth.SessionSecret, cfg.Auth.Enabled))
	}

	c.BrowseController.RegisterRoutes(api, guards...)
	c.PlanController.RegisterRoutes(api, guards...)
}
