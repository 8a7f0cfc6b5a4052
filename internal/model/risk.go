package model

import "time"

// Valid risk review statuses, matching the values the dashboard client sends.
const (
	RiskStatusOpen      = "Open"
	RiskStatusReviewing = "Reviewing"
	RiskStatusResolved  = "Resolved"
)

// DefaultRiskSeverity is the severity assigned to every derived report.
// Severity scoring is not implemented; the field is a fixed default.
const DefaultRiskSeverity = "Medium"

// ValidRiskStatus reports whether s is an accepted review status.
func ValidRiskStatus(s string) bool {
	switch s {
	case RiskStatusOpen, RiskStatusReviewing, RiskStatusResolved:
		return true
	}
	return false
}

// RiskDocumentRef identifies the document a risk report was derived from.
type RiskDocumentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// RiskReport is a read-time view derived from a Document whose Risks field
// is non-trivial. It is never stored; every field is computed from the
// underlying record.
type RiskReport struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Document    RiskDocumentRef `json:"document"`
	Severity    string          `json:"severity"`
	DetectedAt  time.Time       `json:"detectedAt"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
}
