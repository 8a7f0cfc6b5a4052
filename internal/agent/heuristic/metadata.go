// Package heuristic implements the analysis agents with local strategies
// only: regex field extraction, keyword-scored risk labelling and chunked
// digest summarization. No network calls are made, which makes this backend
// the safe default for development and tests.
package heuristic

import (
	"context"
	"regexp"
	"strings"
)

var (
	titleRe  = regexp.MustCompile(`(?i)(Title|Subject|Heading):\s*(.*)`)
	authorRe = regexp.MustCompile(`(?i)(Author|By):\s*(.*)`)
	dateRe   = regexp.MustCompile(`(?i)(Date|Dated):\s*(.*)`)
)

// MetadataExtractor pulls Title/Author/Date fields out of labelled lines.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a regex-based metadata extractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// Extract matches "Field: value" lines case-insensitively. Missing fields
// default to "Unknown"; the document type and keywords are fixed because
// the heuristic backend cannot infer them.
func (e *MetadataExtractor) Extract(_ context.Context, text string) (map[string]any, error) {
	return map[string]any{
		"Title":         matchField(titleRe, text),
		"Author":        matchField(authorRe, text),
		"Date":          matchField(dateRe, text),
		"Document Type": "Auto-detected",
		"Keywords":      []string{},
	}, nil
}

func matchField(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[2])
	}
	return "Unknown"
}
