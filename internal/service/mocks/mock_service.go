package mocks

import (
	"context"

	"docuagent/internal/model"
	"docuagent/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockService implements every service-layer interface for handler tests.
type MockService struct {
	mock.Mock
}

func (m *MockService) Process(ctx context.Context, filename string, content []byte) (*model.Document, error) {
	args := m.Called(ctx, filename, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockService) List(ctx context.Context, limit int) ([]model.Document, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockService) Download(ctx context.Context, id string) (*service.DownloadResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DownloadResult), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) ListRisks(ctx context.Context, limit int) ([]model.RiskReport, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RiskReport), args.Error(1)
}

func (m *MockService) GetRisk(ctx context.Context, id string) (*model.RiskReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RiskReport), args.Error(1)
}

func (m *MockService) UpdateRiskStatus(ctx context.Context, id, status string) (*model.RiskReport, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RiskReport), args.Error(1)
}

func (m *MockService) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

func (m *MockService) GetSettings() model.Settings {
	args := m.Called()
	return args.Get(0).(model.Settings)
}

func (m *MockService) UpdateSettings(patch map[string]any) model.Settings {
	args := m.Called(patch)
	return args.Get(0).(model.Settings)
}
