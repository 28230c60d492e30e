package api

import (
	"context"

	"github.com/debatelab/debate-api/internal/domain"
	"github.com/debatelab/debate-api/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the service.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(
	ctx context.Context,
	username, email, ageGroup string,
) (*domain.User, error) {
	args := m.Called(ctx, username, email, ageGroup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockDebateService mocks the service.DebateService interface
type MockDebateService struct {
	mock.Mock
}

func (m *MockDebateService) AnalyzeArgument(
	ctx context.Context,
	userID uuid.UUID,
	topic, position, argumentText string,
) (*service.AnalysisResult, error) {
	args := m.Called(ctx, userID, topic, position, argumentText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalysisResult), args.Error(1)
}

func (m *MockDebateService) GetProgress(
	ctx context.Context,
	userID uuid.UUID,
) (*service.Progress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Progress), args.Error(1)
}
