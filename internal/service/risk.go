package service

import (
	"context"
	"path/filepath"
	"strings"

	"docuagent/internal/model"
)

// RiskService exposes the derived risk-report views.
type RiskService interface {
	// ListRisks returns reports for every record with non-trivial risks,
	// newest first; limit <= 0 returns all.
	ListRisks(ctx context.Context, limit int) ([]model.RiskReport, error)

	// GetRisk returns the report derived from one record. A record without
	// risk findings has no report, so the result is ErrNotFound.
	GetRisk(ctx context.Context, id string) (*model.RiskReport, error)

	// UpdateRiskStatus persists a new review status and returns the
	// updated report.
	UpdateRiskStatus(ctx context.Context, id, status string) (*model.RiskReport, error)
}

var _ RiskService = (*Service)(nil)

// reportFromDocument shapes the read-time view. Severity is a fixed
// default; everything else comes from the record.
func reportFromDocument(doc *model.Document) *model.RiskReport {
	docType := strings.TrimPrefix(strings.ToLower(filepath.Ext(doc.Filename)), ".")
	if docType == "" {
		docType = "unknown"
	}
	status := doc.Status
	if status == "" {
		status = model.RiskStatusOpen
	}
	return &model.RiskReport{
		ID:    doc.ID,
		Title: doc.Filename,
		Document: model.RiskDocumentRef{
			ID:   doc.ID,
			Name: doc.Filename,
			Type: docType,
		},
		Severity:    model.DefaultRiskSeverity,
		DetectedAt:  doc.CreatedAt,
		Status:      status,
		Description: doc.Risks,
	}
}

// ListRisks filters over a full scan of the store; risk reports are derived
// on read and never persisted.
func (s *Service) ListRisks(ctx context.Context, limit int) ([]model.RiskReport, error) {
	docs, err := s.repo.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	reports := make([]model.RiskReport, 0)
	for i := range docs {
		if !docs[i].HasRisks() {
			continue
		}
		reports = append(reports, *reportFromDocument(&docs[i]))
		if limit > 0 && len(reports) == limit {
			break
		}
	}
	return reports, nil
}

// GetRisk derives the report for one document.
func (s *Service) GetRisk(ctx context.Context, id string) (*model.RiskReport, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !doc.HasRisks() {
		return nil, ErrNotFound
	}
	return reportFromDocument(doc), nil
}

// UpdateRiskStatus validates the document and status, persists the new
// status on the record, and returns the refreshed view.
func (s *Service) UpdateRiskStatus(ctx context.Context, id, status string) (*model.RiskReport, error) {
	if !model.ValidRiskStatus(status) {
		return nil, ErrInvalidStatus
	}
	report, err := s.GetRisk(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	report.Status = status
	return report, nil
}
