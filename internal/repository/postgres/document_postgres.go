package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"docuagent/internal/model"
	"docuagent/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, filename, summary, metadata, risks, blob_url, status, processing_ms, created_at`

// Upsert inserts a document row; a row with the same id is overwritten.
func (r *DocumentPostgres) Upsert(ctx context.Context, doc *model.Document) (*model.Document, error) {
	metadata, err := json.Marshal(doc.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	const q = `
		INSERT INTO documents (id, filename, summary, metadata, risks, blob_url, status, processing_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			filename = EXCLUDED.filename,
			summary = EXCLUDED.summary,
			metadata = EXCLUDED.metadata,
			risks = EXCLUDED.risks,
			blob_url = EXCLUDED.blob_url,
			status = EXCLUDED.status,
			processing_ms = EXCLUDED.processing_ms,
			created_at = EXCLUDED.created_at
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Filename,
		doc.Summary,
		metadata,
		doc.Risks,
		doc.BlobURL,
		doc.Status,
		doc.ProcessingMS,
		doc.CreatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// List returns documents ordered by recency. limit <= 0 returns everything.
func (r *DocumentPostgres) List(ctx context.Context, limit int) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents ORDER BY created_at DESC, id DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, q+` LIMIT $1`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document by ID. It does not return an error if the row
// does not exist; callers that need not-found semantics look up first.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// UpdateStatus persists a new review status for the record.
func (r *DocumentPostgres) UpdateStatus(ctx context.Context, id, status string) error {
	const q = `UPDATE documents SET status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Stats computes the dashboard aggregates store-side in one query.
func (r *DocumentPostgres) Stats(ctx context.Context) (*repository.Stats, error) {
	const q = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE risks <> '' AND risks <> $1),
			COALESCE(AVG(processing_ms), 0)
		FROM documents
	`
	var s repository.Stats
	err := r.db.QueryRowContext(ctx, q, model.NoIssuesSentinel).
		Scan(&s.Total, &s.Risky, &s.AvgProcessingMS)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*model.Document, error) {
	var (
		d        model.Document
		metadata []byte
	)
	if err := row.Scan(
		&d.ID,
		&d.Filename,
		&d.Summary,
		&metadata,
		&d.Risks,
		&d.BlobURL,
		&d.Status,
		&d.ProcessingMS,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &d.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return &d, nil
}
