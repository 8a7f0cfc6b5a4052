// Package notify announces processed documents on a chat webhook.
// Delivery is best-effort: the orchestrator logs and ignores failures.
package notify

import (
	"context"

	"docuagent/internal/model"
)

// Notification carries everything shown on the chat card for one document.
type Notification struct {
	Title    string
	Summary  string
	Metadata map[string]any
	Risks    string
	BlobURL  string
}

// Notifier posts a notification about a processed document.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// FromDocument builds the notification for a freshly processed record.
func FromDocument(doc *model.Document) Notification {
	return Notification{
		Title:    doc.Filename,
		Summary:  doc.Summary,
		Metadata: doc.Metadata,
		Risks:    doc.Risks,
		BlobURL:  doc.BlobURL,
	}
}
