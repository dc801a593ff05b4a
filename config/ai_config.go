// ai_config.go holds the AI provider configuration.
//
// Provider selection and credentials come from the environment
// (AI_PROVIDER, GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY,
// OLLAMA_HOST). Gemini is the default provider; the placeholder provider
// needs no credentials and is used for offline development and tests.
package config

import "fmt"

// AIConfig holds the AI provider selection and credentials.
type AIConfig struct {
	Provider  string // "gemini", "openai", "anthropic", "ollama", "placeholder"
	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Ollama    OllamaConfig
}

// GeminiConfig holds Google Gemini-specific settings.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific settings.
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// AnthropicConfig holds Anthropic-specific settings.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OllamaConfig holds Ollama-specific settings.
type OllamaConfig struct {
	Host  string
	Model string
}

// LoadAIConfig reads provider settings from the environment.
func LoadAIConfig() AIConfig {
	return AIConfig{
		Provider: GetEnv("AI_PROVIDER", "gemini"),
		Gemini: GeminiConfig{
			APIKey: GetEnv("GEMINI_API_KEY", GetEnv("GOOGLE_API_KEY", "")),
			Model:  GetEnv("GEMINI_MODEL", "gemini-2.5-pro"),
		},
		OpenAI: OpenAIConfig{
			APIKey: GetEnv("OPENAI_API_KEY", ""),
			Model:  GetEnv("OPENAI_MODEL", "gpt-4o"),
		},
		Anthropic: AnthropicConfig{
			APIKey: GetEnv("ANTHROPIC_API_KEY", ""),
			Model:  GetEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		},
		Ollama: OllamaConfig{
			Host:  GetEnv("OLLAMA_HOST", "http://localhost:11434"),
			Model: GetEnv("OLLAMA_MODEL", "llama3.2"),
		},
	}
}

// Validate checks that the selected provider has its credential present.
// The check runs once at startup so a missing key fails fast instead of
// surfacing mid-request.
func (c AIConfig) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("gemini API key not set: set GEMINI_API_KEY (or GOOGLE_API_KEY) or choose another AI_PROVIDER")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OpenAI API key not set: set OPENAI_API_KEY or choose another AI_PROVIDER")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("anthropic API key not set: set ANTHROPIC_API_KEY or choose another AI_PROVIDER")
		}
	case "ollama", "placeholder", "":
		// no credential required
	default:
		return fmt.Errorf("unknown AI provider %q: supported are gemini, openai, anthropic, ollama, placeholder", c.Provider)
	}
	return nil
}
