package llm

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
)

// Summarizer returns the model's summary verbatim.
type Summarizer struct {
	client llms.Model
}

// NewSummarizer creates an LLM-backed summarizer.
func NewSummarizer(client llms.Model) *Summarizer {
	return &Summarizer{client: client}
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	return generate(ctx, s.client, summarizerPrompt, text)
}

// MetadataExtractor parses the model's reply as a JSON mapping.
type MetadataExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// NewMetadataExtractor creates an LLM-backed metadata extractor.
func NewMetadataExtractor(client llms.Model) *MetadataExtractor {
	return &MetadataExtractor{
		client: client,
		logger: slog.Default().With("component", "llm-metadata"),
	}
}

// Extract asks the model for a JSON dictionary of metadata fields.
// A malformed reply does not propagate as an error: it yields an
// error-shaped mapping so document processing can continue.
func (m *MetadataExtractor) Extract(ctx context.Context, text string) (map[string]any, error) {
	reply, err := generate(ctx, m.client, metadataPrompt, text, llms.WithJSONMode())
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &fields); err != nil {
		m.logger.Warn("could not parse metadata reply", "err", err)
		return map[string]any{
			"error":  "Could not parse metadata output",
			"detail": err.Error(),
		}, nil
	}
	return fields, nil
}

// RiskChecker returns the model's findings verbatim.
type RiskChecker struct {
	client llms.Model
}

// NewRiskChecker creates an LLM-backed risk checker.
func NewRiskChecker(client llms.Model) *RiskChecker {
	return &RiskChecker{client: client}
}

func (r *RiskChecker) Check(ctx context.Context, text string) (string, error) {
	reply, err := generate(ctx, r.client, riskCheckerPrompt, text)
	if err != nil {
		return "", err
	}
	if reply == "" {
		return "No response from agent", nil
	}
	return reply, nil
}
