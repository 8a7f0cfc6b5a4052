package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuagent/internal/model"
)

func riskyDoc(id, filename string) model.Document {
	return model.Document{
		ID:        id,
		Filename:  filename,
		Risks:     "- legal risk",
		Status:    model.RiskStatusOpen,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func cleanDoc(id, filename string) model.Document {
	return model.Document{ID: id, Filename: filename, Risks: model.NoIssuesSentinel}
}

func TestService_ListRisks(t *testing.T) {
	ctx := context.Background()

	t.Run("only flagged documents yield reports", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("List", ctx, 0).Return([]model.Document{
			riskyDoc("a", "contract.pdf"),
			cleanDoc("b", "notes.txt"),
			{ID: "c", Filename: "empty.txt", Risks: ""},
			riskyDoc("d", "policy.docx"),
		}, nil)

		reports, err := f.svc.ListRisks(ctx, 0)

		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, "a", reports[0].ID)
		assert.Equal(t, "contract.pdf", reports[0].Title)
		assert.Equal(t, "pdf", reports[0].Document.Type)
		assert.Equal(t, model.DefaultRiskSeverity, reports[0].Severity)
		assert.Equal(t, "d", reports[1].ID)
		assert.Equal(t, "docx", reports[1].Document.Type)
	})

	t.Run("limit applies after filtering", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("List", ctx, 0).Return([]model.Document{
			cleanDoc("a", "a.txt"),
			riskyDoc("b", "b.txt"),
			riskyDoc("c", "c.txt"),
			riskyDoc("d", "d.txt"),
		}, nil)

		reports, err := f.svc.ListRisks(ctx, 2)

		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, "b", reports[0].ID)
		assert.Equal(t, "c", reports[1].ID)
	})

	t.Run("no flagged documents returns empty slice", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("List", ctx, 0).Return([]model.Document{cleanDoc("a", "a.txt")}, nil)

		reports, err := f.svc.ListRisks(ctx, 0)

		require.NoError(t, err)
		assert.NotNil(t, reports)
		assert.Empty(t, reports)
	})
}

func TestService_GetRisk(t *testing.T) {
	ctx := context.Background()

	t.Run("flagged document", func(t *testing.T) {
		f := newFixture(t)
		doc := riskyDoc("doc-1", "contract.pdf")
		f.repo.On("FindByID", ctx, "doc-1").Return(&doc, nil)

		report, err := f.svc.GetRisk(ctx, "doc-1")

		require.NoError(t, err)
		assert.Equal(t, "doc-1", report.ID)
		assert.Equal(t, "- legal risk", report.Description)
		assert.Equal(t, doc.CreatedAt, report.DetectedAt)
		assert.Equal(t, model.RiskStatusOpen, report.Status)
	})

	t.Run("clean document has no report", func(t *testing.T) {
		f := newFixture(t)
		doc := cleanDoc("doc-2", "notes.txt")
		f.repo.On("FindByID", ctx, "doc-2").Return(&doc, nil)

		_, err := f.svc.GetRisk(ctx, "doc-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing document", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("FindByID", ctx, "nope").Return(nil, sql.ErrNoRows)

		_, err := f.svc.GetRisk(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("filename without suffix maps to unknown type", func(t *testing.T) {
		f := newFixture(t)
		doc := riskyDoc("doc-3", "README")
		f.repo.On("FindByID", ctx, "doc-3").Return(&doc, nil)

		report, err := f.svc.GetRisk(ctx, "doc-3")

		require.NoError(t, err)
		assert.Equal(t, "unknown", report.Document.Type)
	})
}

func TestService_UpdateRiskStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns new status", func(t *testing.T) {
		f := newFixture(t)
		doc := riskyDoc("doc-1", "contract.pdf")
		f.repo.On("FindByID", ctx, "doc-1").Return(&doc, nil)
		f.repo.On("UpdateStatus", ctx, "doc-1", model.RiskStatusResolved).Return(nil)

		report, err := f.svc.UpdateRiskStatus(ctx, "doc-1", model.RiskStatusResolved)

		require.NoError(t, err)
		assert.Equal(t, model.RiskStatusResolved, report.Status)
		f.repo.AssertExpectations(t)
	})

	t.Run("rejects unknown status before touching the store", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UpdateRiskStatus(ctx, "doc-1", "archived")

		assert.ErrorIs(t, err, ErrInvalidStatus)
		f.repo.AssertNotCalled(t, "FindByID", ctx, "doc-1")
		f.repo.AssertNotCalled(t, "UpdateStatus", ctx, "doc-1", "archived")
	})

	t.Run("clean document cannot be updated", func(t *testing.T) {
		f := newFixture(t)
		doc := cleanDoc("doc-2", "notes.txt")
		f.repo.On("FindByID", ctx, "doc-2").Return(&doc, nil)

		_, err := f.svc.UpdateRiskStatus(ctx, "doc-2", model.RiskStatusReviewing)

		assert.ErrorIs(t, err, ErrNotFound)
		f.repo.AssertNotCalled(t, "UpdateStatus", ctx, "doc-2", model.RiskStatusReviewing)
	})
}
