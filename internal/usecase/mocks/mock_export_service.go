package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/paramveer-prakash/career-sub001/internal/render"
)

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ListTemplates() []render.Template {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]render.Template)
}

func (m *MockExportService) RenderHTML(ctx context.Context, key, resumeID, token string) (string, error) {
	args := m.Called(ctx, key, resumeID, token)
	return args.String(0), args.Error(1)
}

func (m *MockExportService) RenderPDF(ctx context.Context, key, resumeID, token string) ([]byte, error) {
	args := m.Called(ctx, key, resumeID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockExportService) RenderThumbnail(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}
