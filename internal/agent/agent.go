// Package agent defines the text-analysis capabilities run over extracted
// document text and selects their backend at startup. Each capability is a
// narrow interface so callers stay agnostic to whether a hosted model or a
// local heuristic produces the result.
package agent

import (
	"context"
	"fmt"

	"docuagent/internal/agent/heuristic"
	"docuagent/internal/agent/llm"
	"docuagent/internal/config"
)

// Summarizer produces a concise textual summary of a document.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// MetadataExtractor pulls structured metadata fields out of a document.
// Keys are among Title, Author, Date, Document Type and Keywords. A backend
// that fails to produce well-formed output must return an error-shaped
// mapping rather than an error; only transport failures propagate.
type MetadataExtractor interface {
	Extract(ctx context.Context, text string) (map[string]any, error)
}

// RiskChecker flags risky content. The result is either a bulleted list of
// findings or the exact sentinel "No issues found".
type RiskChecker interface {
	Check(ctx context.Context, text string) (string, error)
}

// Agents bundles the three capabilities behind one injection point.
type Agents struct {
	Summarizer Summarizer
	Metadata   MetadataExtractor
	Risk       RiskChecker
}

// New builds the agent bundle for the configured backend. riskThreshold is
// the score cutoff used by the heuristic risk checker.
func New(cfg config.AgentConfig, riskThreshold float64) (*Agents, error) {
	switch cfg.Backend {
	case "heuristic":
		return &Agents{
			Summarizer: heuristic.NewSummarizer(),
			Metadata:   heuristic.NewMetadataExtractor(),
			Risk:       heuristic.NewRiskChecker(riskThreshold),
		}, nil
	case "llm":
		client, err := llm.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("create llm client: %w", err)
		}
		return &Agents{
			Summarizer: llm.NewSummarizer(client),
			Metadata:   llm.NewMetadataExtractor(client),
			Risk:       llm.NewRiskChecker(client),
		}, nil
	default:
		return nil, fmt.Errorf("unknown agent backend %q", cfg.Backend)
	}
}
