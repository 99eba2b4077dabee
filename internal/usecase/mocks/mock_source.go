package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/paramveer-prakash/career-sub001/internal/domain"
)

type MockResumeSource struct {
	mock.Mock
}

func (m *MockResumeSource) Fetch(ctx context.Context, resumeID, token string) domain.FetchResult {
	args := m.Called(ctx, resumeID, token)
	return args.Get(0).(domain.FetchResult)
}
