package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Ollama implements the Provider interface for a local Ollama server.
type Ollama struct {
	host  string
	model string
}

var _ Provider = (*Ollama)(nil)

// NewOllama creates an Ollama provider.
func NewOllama(host, model string) *Ollama {
	if host == "" {
		host = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.2"
	}
	return &Ollama{host: strings.TrimSuffix(host, "/"), model: model}
}

func (o *Ollama) Name() string {
	return fmt.Sprintf("Ollama (%s)", o.model)
}

func (o *Ollama) Analyze(ctx context.Context, prompt string) (string, error) {
	type chatMsg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	body := map[string]interface{}{
		"model": o.model,
		"messages": []chatMsg{
			{Role: "system", Content: systemPromptAnalyst},
			{Role: "user", Content: prompt},
		},
		"stream": false,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.host+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed (is the server running at %s?): %w", o.host, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("ollama parse error: %w", err)
	}

	if result.Message.Content == "" {
		return "", fmt.Errorf("ollama returned no content")
	}

	return result.Message.Content, nil
}
