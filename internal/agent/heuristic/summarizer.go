package heuristic

import (
	"context"
	"strings"
)

// chunkSize is the fixed character window the text is summarized over.
const chunkSize = 1024

// digestLimit caps the digest taken from each chunk.
const digestLimit = 130

// Summarizer produces an extractive digest: the text is split into fixed
// character windows and the leading sentence of each window is kept.
type Summarizer struct{}

// NewSummarizer creates a chunked extractive summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

func (s *Summarizer) Summarize(_ context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	var digests []string
	runes := []rune(text)
	for start := 0; start < len(runes); start += chunkSize {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		if d := digest(string(runes[start:end])); d != "" {
			digests = append(digests, d)
		}
	}
	return strings.Join(digests, "\n"), nil
}

// digest returns the first sentence of chunk, capped at digestLimit runes.
func digest(chunk string) string {
	chunk = strings.TrimSpace(chunk)
	for _, end := range []string{". ", "! ", "? ", "\n"} {
		if i := strings.Index(chunk, end); i >= 0 {
			chunk = strings.TrimSpace(chunk[:i+1])
			break
		}
	}
	runes := []rune(chunk)
	if len(runes) > digestLimit {
		return strings.TrimSpace(string(runes[:digestLimit]))
	}
	return chunk
}
