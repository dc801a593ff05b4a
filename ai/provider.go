// Package ai defines the interface to the analysis model providers,
// the prompt that asks for a structured report, and the parser that
// decodes the model's response.
//
// Design decisions:
//   - Provider is an interface so backends (Gemini, OpenAI, Anthropic,
//     Ollama) can be swapped without touching the pipeline.
//   - All methods accept context for cancellation and timeouts.
//   - The model returns one JSON report per request; adherence to the
//     contract is checked by ParseReport, never assumed.
package ai

import "context"

// Provider is the interface all model backends implement.
type Provider interface {
	// Analyze sends one analysis prompt and returns the raw response text.
	Analyze(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name for display.
	Name() string
}
