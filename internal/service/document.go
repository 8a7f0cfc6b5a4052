package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"docuagent/internal/model"
	"docuagent/internal/notify"
	"docuagent/internal/storage"
)

// DocumentService defines the use cases for processing and reading documents.
type DocumentService interface {
	// Process runs the full intake pipeline for one uploaded file and
	// returns the persisted record.
	Process(ctx context.Context, filename string, content []byte) (*model.Document, error)

	// List returns records newest-first; limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]model.Document, error)

	// Get returns a single record by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Download fetches the original file bytes from blob storage.
	Download(ctx context.Context, id string) (*DownloadResult, error)

	// Delete removes the record and its blob.
	Delete(ctx context.Context, id string) error
}

// DownloadResult carries a streamed original file back to the handler.
type DownloadResult struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}

var _ DocumentService = (*Service)(nil)

// blobKey places all uploads under one prefix, keyed by original filename
// so a re-upload of the same file overwrites its blob.
func blobKey(filename string) string {
	return "documents/" + filename
}

// contentTypeFor infers a MIME type from the filename suffix, falling back
// to a generic binary type.
func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// Process is the intake pipeline: blob upload, text extraction, the three
// analysis agents, persistence, then a best-effort notification. There is
// no compensation on partial failure: a blob uploaded before a later step
// fails stays behind.
func (s *Service) Process(ctx context.Context, filename string, content []byte) (*model.Document, error) {
	if filename == "" {
		return nil, errors.New("filename is required")
	}
	if len(content) == 0 {
		return nil, ErrEmptyFile
	}
	start := time.Now()

	key := blobKey(filename)
	_, err := s.store.Put(ctx, key, bytes.NewReader(content), storage.PutObjectOptions{
		Size:        int64(len(content)),
		ContentType: contentTypeFor(filename),
		Metadata:    map[string]string{"original-filename": filename},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	blobURL := s.store.URL(key)

	text, err := s.extractor.ExtractBytes(content, filename)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	summary, metadata, risks, err := s.runAgents(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("run agents: %w", err)
	}

	doc := &model.Document{
		ID:           uuid.New().String(),
		Filename:     filename,
		Summary:      summary,
		Metadata:     metadata,
		Risks:        risks,
		BlobURL:      blobURL,
		Status:       model.RiskStatusOpen,
		ProcessingMS: time.Since(start).Milliseconds(),
		CreatedAt:    time.Now().UTC(),
	}

	stored, err := s.repo.Upsert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	// Best-effort: a webhook failure never rolls back or fails the request.
	nctx, cancel := withTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()
	if err := s.notifier.Notify(nctx, notify.FromDocument(stored)); err != nil {
		s.logger.Warn("webhook notification failed", "document_id", stored.ID, "err", err)
	}

	return stored, nil
}

// runAgents fans the three independent analyses out concurrently. Result
// placement is fixed regardless of completion order.
func (s *Service) runAgents(ctx context.Context, text string) (summary string, metadata map[string]any, risks string, err error) {
	actx, cancel := withTimeout(ctx, s.agentTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(actx)
	g.Go(func() error {
		var err error
		summary, err = s.agents.Summarizer.Summarize(gctx, text)
		return err
	})
	g.Go(func() error {
		var err error
		metadata, err = s.agents.Metadata.Extract(gctx, text)
		return err
	})
	g.Go(func() error {
		var err error
		risks, err = s.agents.Risk.Check(gctx, text)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", nil, "", err
	}
	return summary, metadata, risks, nil
}

// List returns records newest-first.
func (s *Service) List(ctx context.Context, limit int) ([]model.Document, error) {
	return s.repo.List(ctx, limit)
}

// Get returns a record by ID, mapping missing rows to ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Download resolves the record, then streams the raw bytes from blob
// storage under the filename key.
func (s *Service) Download(ctx context.Context, id string) (*DownloadResult, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rc, info, err := s.store.Get(ctx, blobKey(doc.Filename))
	if err != nil {
		return nil, fmt.Errorf("fetch blob: %w", err)
	}
	return &DownloadResult{
		Filename:    doc.Filename,
		ContentType: contentTypeFor(doc.Filename),
		Size:        info.Size,
		Content:     rc,
	}, nil
}

// Delete looks the record up first so missing ids surface as ErrNotFound,
// then removes the blob and the record.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.store.Delete(ctx, blobKey(doc.Filename)); err != nil {
		return fmt.Errorf("delete blob: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
