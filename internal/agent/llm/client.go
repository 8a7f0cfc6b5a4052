// Package llm implements the analysis agents on top of an OpenAI-compatible
// chat completion API. Each agent sends a fixed system instruction with the
// document text as the user turn and returns the model's reply.
package llm

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewClient creates a chat client for the given OpenAI-compatible endpoint.
// baseURL may be empty for the hosted default; apiKey falls back to "none"
// for local services (Ollama, vLLM, LocalAI) that skip authentication.
func NewClient(baseURL, apiKey, model string) (llms.Model, error) {
	if apiKey == "" {
		apiKey = "none"
	}
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	return openai.New(opts...)
}

// generate runs one system+user chat turn and returns the first choice.
func generate(ctx context.Context, client llms.Model, systemPrompt, userText string, options ...llms.CallOption) (string, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(userText)},
		},
	}
	resp, err := client.GenerateContent(ctx, content, options...)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

// stripCodeFences removes markdown code fences some models wrap JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
