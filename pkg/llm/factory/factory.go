package factory

import (
	"fmt"

	"swim-coach-be/pkg/llm"
	"swim-coach-be/pkg/llm/huggingface"
	"swim-coach-be/pkg/llm/ollama"
	"swim-coach-be/pkg/llm/openai"
)

// NewLLMProvider builds the configured backend. baseURL only applies to the
// self-hosted providers; the hosted ones use their fixed endpoints.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not configured")
		}
		return openai.NewOpenAIProvider(apiKey, modelName), nil
	case "huggingface":
		if apiKey == "" {
			return nil, fmt.Errorf("HUGGINGFACE_API_KEY is not configured")
		}
		return huggingface.NewHuggingFaceProvider(apiKey, "", modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
