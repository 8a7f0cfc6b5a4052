package service

import (
	"context"
	"time"

	"docuagent/internal/model"
)

// StatsService exposes dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
}

var _ StatsService = (*Service)(nil)

// Dashboard reports store-side counters. The average processing time is
// derived from the measured pipeline duration stored on each record.
func (s *Service) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	avg := "N/A"
	if stats.Total > 0 {
		avg = (time.Duration(stats.AvgProcessingMS) * time.Millisecond).
			Round(10 * time.Millisecond).String()
	}
	return &model.DashboardStats{
		DocumentsProcessed:    stats.Total,
		RiskyDocuments:        stats.Risky,
		AverageProcessingTime: avg,
	}, nil
}
