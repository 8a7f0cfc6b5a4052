package heuristic

import (
	"context"
	"strings"
)

// riskLabels maps zero-shot-style labels to the lowercase cues that vote
// for them. The "safe" label of the original classifier is implicit: a
// document with no label above threshold gets the no-issues sentinel.
var riskLabels = []struct {
	label string
	cues  []string
}{
	{
		label: "legal risk",
		cues: []string{
			"liability", "indemnif", "lawsuit", "litigation", "breach of contract",
			"penalty", "terminate without notice", "non-compete", "arbitration",
		},
	},
	{
		label: "privacy violation",
		cues: []string{
			"personal data", "social security", "passport number", "date of birth",
			"home address", "medical record", "without consent", "third parties",
		},
	},
	{
		label: "ethical concern",
		cues: []string{
			"discriminat", "harass", "bribe", "kickback", "conflict of interest",
			"falsif", "misrepresent",
		},
	},
}

// NoIssues is the exact sentinel returned when nothing crosses the threshold.
const NoIssues = "No issues found"

// RiskChecker scores each label by its matched cues and flags labels whose
// score exceeds the threshold, mirroring a zero-shot classifier over a fixed
// label set.
type RiskChecker struct {
	threshold float64
}

// NewRiskChecker creates a keyword-scored risk checker. A zero or negative
// threshold falls back to the 0.4 the classification strategy was tuned for.
func NewRiskChecker(threshold float64) *RiskChecker {
	if threshold <= 0 {
		threshold = 0.4
	}
	return &RiskChecker{threshold: threshold}
}

// Check returns a bulleted list of flagged labels, or the NoIssues sentinel.
func (r *RiskChecker) Check(_ context.Context, text string) (string, error) {
	lower := strings.ToLower(text)

	var flagged []string
	for _, rl := range riskLabels {
		if labelScore(lower, rl.cues) > r.threshold {
			flagged = append(flagged, rl.label)
		}
	}
	if len(flagged) == 0 {
		return NoIssues, nil
	}
	return "- " + strings.Join(flagged, "\n- "), nil
}

// labelScore saturates toward 1 as cue hits accumulate: hits/(hits+1).
// One hit scores 0.5, so a single strong cue clears the default threshold.
func labelScore(lower string, cues []string) float64 {
	hits := 0
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			hits++
		}
	}
	return float64(hits) / float64(hits+1)
}
