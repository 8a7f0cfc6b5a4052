package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

type MockMetadataExtractor struct {
	mock.Mock
}

func (m *MockMetadataExtractor) Extract(ctx context.Context, text string) (map[string]any, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

type MockRiskChecker struct {
	mock.Mock
}

func (m *MockRiskChecker) Check(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}
