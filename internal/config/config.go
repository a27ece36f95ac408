package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Auth      AuthConfig
	Templates TemplatesConfig
	Keys      APIKeys
	Ai        AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	DebugMeta          bool
}

type AuthConfig struct {
	Enabled          bool
	SitePassword     string
	SitePasswordHash string // bcrypt; takes precedence over SitePassword
	SessionSecret    string
	ProtectAPI       bool
}

type TemplatesConfig struct {
	Path string // optional explicit bundle path, tried before the defaults
}

type APIKeys struct {
	OpenAI      string
	HuggingFace string
}

type AIConfig struct {
	LLMProvider   string // "openai", "huggingface" or "ollama"
	LLMModel      string // e.g. "gpt-4o-mini", "llama3"
	OllamaBaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			DebugMeta:          getEnvAsBool("SWIM_PLAN_DEBUG_META", false),
		},
		Auth: AuthConfig{
			Enabled:          getEnvAsBool("AUTH_ENABLED", true),
			SitePassword:     getEnv("SITE_PASSWORD", ""),
			SitePasswordHash: getEnv("SITE_PASSWORD_HASH", ""),
			SessionSecret:    getEnv("AUTH_SESSION_SECRET", ""),
			ProtectAPI:       getEnvAsBool("AUTH_PROTECT_API", false),
		},
		Templates: TemplatesConfig{
			Path: getEnv("TEMPLATES_PATH", ""),
		},
		Keys: APIKeys{
			OpenAI:      getEnv("OPENAI_API_KEY", ""),
			HuggingFace: getEnv("HUGGINGFACE_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "openai"),
			LLMModel:      getEnv("LLM_MODEL", "gpt-4o-mini"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
