package ai

import (
	"fmt"

	"insightagent/config"
)

// SupportedProviders lists available provider names for display.
var SupportedProviders = []string{"gemini", "openai", "anthropic", "ollama", "placeholder"}

// NewProvider creates a model provider from the application config.
func NewProvider(cfg config.AIConfig) (Provider, error) {
	switch cfg.Provider {
	case "gemini", "":
		if cfg.Gemini.APIKey == "" {
			return nil, fmt.Errorf("gemini API key not set: set GEMINI_API_KEY (or GOOGLE_API_KEY) in the environment or .env")
		}
		return NewGemini(cfg.Gemini.APIKey, cfg.Gemini.Model), nil

	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not set: set OPENAI_API_KEY in the environment or .env")
		}
		return NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.Model), nil

	case "anthropic":
		if cfg.Anthropic.APIKey == "" {
			return nil, fmt.Errorf("anthropic API key not set: set ANTHROPIC_API_KEY in the environment or .env")
		}
		return NewAnthropic(cfg.Anthropic.APIKey, cfg.Anthropic.Model), nil

	case "ollama":
		return NewOllama(cfg.Ollama.Host, cfg.Ollama.Model), nil

	case "placeholder":
		return NewPlaceholder(), nil

	default:
		return nil, fmt.Errorf("unknown AI provider %q. Supported: gemini, openai, anthropic, ollama, placeholder", cfg.Provider)
	}
}
