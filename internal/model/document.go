package model

import "time"

// NoIssuesSentinel is the exact risk-checker reply that marks a document as
// clean. A Risk Report exists for a document if and only if its Risks field
// is non-empty and differs from this sentinel.
const NoIssuesSentinel = "No issues found"

// Document is the persisted result of processing one uploaded file.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
// Records are immutable after creation except for Status, which the risk
// review endpoints may update.
type Document struct {
	ID           string         `json:"id"`
	Filename     string         `json:"filename"`
	Summary      string         `json:"summary"`
	Metadata     map[string]any `json:"metadata"`
	Risks        string         `json:"risks"`
	BlobURL      string         `json:"blob_url"`
	Status       string         `json:"status"`
	ProcessingMS int64          `json:"processing_ms"`
	CreatedAt    time.Time      `json:"created_at"`
}

// HasRisks reports whether the document carries non-trivial risk findings.
func (d *Document) HasRisks() bool {
	return d.Risks != "" && d.Risks != NoIssuesSentinel
}
