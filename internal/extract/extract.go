// Package extract turns uploaded file bytes into plain text for the
// analysis agents. Dispatch is by filename suffix; unsupported suffixes
// yield a fixed placeholder string rather than an error so processing can
// continue end to end.
package extract

import (
	"path/filepath"
	"strings"
)

// UnsupportedPlaceholder is returned verbatim for file types the extractor
// cannot handle. Callers must treat it as valid extracted text.
const UnsupportedPlaceholder = "Unsupported file type."

// Extractor extracts plain text from document files.
type Extractor struct{}

// New returns a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractBytes extracts text from content based on the filename's suffix
// (case-insensitive). Ordering of the source is preserved: PDF pages,
// DOCX paragraphs and CSV/XLSX rows come out in document order.
// Parser failures (corrupt or password-protected files) are returned as
// errors; an unrecognized suffix is not an error.
func (e *Extractor) ExtractBytes(content []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(content)
	case ".docx":
		return extractDOCX(content)
	case ".txt":
		return extractPlain(content)
	case ".csv":
		return extractCSV(content)
	case ".xlsx":
		return extractXLSX(content)
	default:
		return UnsupportedPlaceholder, nil
	}
}
