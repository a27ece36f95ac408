package bootstrap

import (
	"log"

	"swim-coach-be/internal/config"
	"swim-coach-be/internal/controller"
	"swim-coach-be/internal/pkg/logger"
	"swim-coach-be/internal/repository/implementation"
	"swim-coach-be/internal/service"
	"swim-coach-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	AuthController   controller.IAuthController
	PlanController   controller.IPlanController
	BrowseController controller.IBrowseController
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Template Corpus (loaded lazily, memoized for the process lifetime)
	templateRepo := implementation.NewTemplateRepository(cfg.Templates.Path)

	// 3. LLM Provider
	apiKey := cfg.Keys.OpenAI
	if cfg.Ai.LLMProvider == "huggingface" {
		apiKey = cfg.Keys.HuggingFace
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		apiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Services
	authService := service.NewAuthService(cfg.Auth, sysLogger)
	planService := service.NewPlanService(templateRepo, llmProvider, sysLogger)
	browseService := service.NewBrowseService(templateRepo)

	// 5. Controllers
	return &Container{
		AuthController:   controller.NewAuthController(authService),
		PlanController:   controller.NewPlanController(planService, cfg.App),
		BrowseController: controller.NewBrowseController(browseService),
	}
}
