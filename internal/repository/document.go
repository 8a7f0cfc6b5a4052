// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"

	"docuagent/internal/model"
)

// DocumentRepository defines data access for processed documents using SQL
// queries only. No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Upsert inserts a document record, overwriting any existing row with
	// the same id. Returns the stored document.
	Upsert(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID. Missing rows surface as
	// sql.ErrNoRows so callers can distinguish not-found from store errors.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns documents ordered by recency (newest first). A limit of
	// zero or less returns all records.
	List(ctx context.Context, limit int) ([]model.Document, error)

	// Delete removes a document by ID. It returns nil if the row was deleted
	// or did not exist.
	Delete(ctx context.Context, id string) error

	// UpdateStatus persists a new risk-review status on the record.
	// Returns sql.ErrNoRows when no row matches the id.
	UpdateStatus(ctx context.Context, id, status string) error

	// Stats returns store-side aggregate counters for the dashboard.
	Stats(ctx context.Context) (*Stats, error)
}

// Stats holds the aggregates computed by the document store.
// AvgProcessingMS is zero when no documents exist.
type Stats struct {
	Total           int
	Risky           int
	AvgProcessingMS float64
}
