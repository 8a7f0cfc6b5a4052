// Package service holds the use cases: the document-processing pipeline and
// the read/query operations over stored results. It depends only on the
// collaborator interfaces (storage, repository, agents, notifier) so every
// external service is substitutable in tests.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"docuagent/internal/agent"
	"docuagent/internal/config"
	"docuagent/internal/notify"
	"docuagent/internal/repository"
	"docuagent/internal/storage"
)

var (
	ErrIDRequired    = errors.New("id is required")
	ErrNotFound      = errors.New("document not found")
	ErrEmptyFile     = errors.New("uploaded file is empty")
	ErrInvalidStatus = errors.New("invalid risk status")
)

// TextExtractor is the extraction contract the pipeline consumes.
// *extract.Extractor satisfies it.
type TextExtractor interface {
	ExtractBytes(content []byte, filename string) (string, error)
}

// Service implements the document, risk, stats and settings use cases over
// the injected collaborators.
type Service struct {
	store     storage.Storage
	repo      repository.DocumentRepository
	extractor TextExtractor
	agents    *agent.Agents
	notifier  notify.Notifier
	settings  config.SettingsDefaults

	agentTimeout  time.Duration
	notifyTimeout time.Duration

	logger *slog.Logger
}

// Options tune per-call timeouts around external backends.
type Options struct {
	AgentTimeout  time.Duration
	NotifyTimeout time.Duration
}

// New constructs the service. Zero-valued options fall back to defaults.
func New(
	store storage.Storage,
	repo repository.DocumentRepository,
	extractor TextExtractor,
	agents *agent.Agents,
	notifier notify.Notifier,
	settings config.SettingsDefaults,
	opts Options,
) *Service {
	if opts.AgentTimeout <= 0 {
		opts.AgentTimeout = 60 * time.Second
	}
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = 10 * time.Second
	}
	return &Service{
		store:         store,
		repo:          repo,
		extractor:     extractor,
		agents:        agents,
		notifier:      notifier,
		settings:      settings,
		agentTimeout:  opts.AgentTimeout,
		notifyTimeout: opts.NotifyTimeout,
		logger:        slog.Default().With("component", "service"),
	}
}

// withTimeout bounds a blocking call to an external backend.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}
