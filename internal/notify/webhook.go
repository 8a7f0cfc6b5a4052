package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"docuagent/internal/config"
)

// messageCard is the legacy Office-connector card format the webhook expects.
type messageCard struct {
	Type       string        `json:"@type"`
	Context    string        `json:"@context"`
	Summary    string        `json:"summary"`
	ThemeColor string        `json:"themeColor"`
	Title      string        `json:"title"`
	Sections   []cardSection `json:"sections"`
}

type cardSection struct {
	ActivityTitle string     `json:"activityTitle"`
	Facts         []cardFact `json:"facts"`
	Markdown      bool       `json:"markdown"`
}

type cardFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// WebhookNotifier posts a card-shaped payload to a Teams-style webhook.
// A notifier constructed without a URL is disabled and logs instead of
// posting, so callers never need to special-case missing configuration.
type WebhookNotifier struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewWebhook creates a webhook notifier from configuration. Outbound
// requests carry the ambient trace context via otelhttp.
func NewWebhook(cfg config.NotifyConfig) *WebhookNotifier {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookNotifier{
		url: cfg.WebhookURL,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: slog.Default().With("component", "webhook-notifier"),
	}
}

// Notify posts the card. It returns an error for the caller to log; the
// orchestrator treats any failure here as non-fatal.
func (w *WebhookNotifier) Notify(ctx context.Context, n Notification) error {
	if w.url == "" {
		w.logger.Info("webhook url not configured, skipping notification", "title", n.Title)
		return nil
	}

	risks := n.Risks
	if risks == "" {
		risks = "None detected"
	}

	card := messageCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		Summary:    "DocuAgent Document Summary",
		ThemeColor: "0076D7",
		Title:      n.Title,
		Sections: []cardSection{{
			ActivityTitle: fmt.Sprintf("[View Document](%s)", n.BlobURL),
			Facts: []cardFact{
				{Name: "Summary", Value: n.Summary},
				{Name: "Metadata", Value: formatMetadata(n.Metadata)},
				{Name: "Risk Flags", Value: risks},
			},
			Markdown: true,
		}},
	}

	body, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("marshal card: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// formatMetadata renders metadata as markdown facts, keys sorted for a
// stable card layout.
func formatMetadata(metadata map[string]any) string {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("**%s**: %v", k, metadata[k]))
	}
	return strings.Join(lines, "\n")
}
