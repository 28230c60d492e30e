package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/debatelab/debate-api/internal/domain"
	"github.com/debatelab/debate-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDebateService(
	t *testing.T,
	userStore *MockUserStore,
	sessionStore *MockSessionStore,
) DebateService {
	t.Helper()

	svc, err := NewDebateService(new(sql.DB), userStore, sessionStore, nil, nil)
	require.NoError(t, err)

	svc.(*debateServiceImpl).runInTx = passthroughTxRunner
	return svc
}

func testUser(level, points int) *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "a@x.com",
		AgeGroup:     domain.AgeGroupMiddle,
		CurrentLevel: level,
		TotalPoints:  points,
		Badges:       []string{},
		CreatedAt:    time.Now().UTC(),
	}
}

func TestAnalyzeArgumentRecordsSessionAndAwardsPoints(t *testing.T) {
	userStore := new(MockUserStore)
	sessionStore := new(MockSessionStore)
	svc := newTestDebateService(t, userStore, sessionStore)

	user := testUser(1, 0)
	argument := "Homework is good because research shows it improves retention and discipline over many studies."

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	sessionStore.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.DebateSession) bool {
		return s.UserID == user.ID &&
			s.Topic == "Homework" &&
			s.Position == domain.PositionFor &&
			s.Score == s.Feedback.OverallScore
	})).Return(nil)
	userStore.On("IncrementPoints", mock.Anything, user.ID, 10).Return(nil)

	result, err := svc.AnalyzeArgument(context.Background(), user.ID, "Homework", domain.PositionFor, argument)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Feedback.OverallScore)
	assert.Equal(t, 10, result.PointsEarned)
	assert.Equal(t, 3, result.Feedback.Structure.StructureScore)
	assert.Empty(t, result.Feedback.Fallacies)

	userStore.AssertExpectations(t)
	sessionStore.AssertExpectations(t)
}

func TestAnalyzeArgumentAppliesFallacyPenalty(t *testing.T) {
	userStore := new(MockUserStore)
	sessionStore := new(MockSessionStore)
	svc := newTestDebateService(t, userStore, sessionStore)

	user := testUser(1, 0)

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	sessionStore.On("Create", mock.Anything, mock.Anything).Return(nil)
	userStore.On("IncrementPoints", mock.Anything, user.ID, 6).Return(nil)

	// 6 words, no markers, two fallacy rules fire: 70 - 10 = 60.
	result, err := svc.AnalyzeArgument(context.Background(), user.ID, "Homework", domain.PositionFor,
		"Everyone knows homework is always good.")
	require.NoError(t, err)

	assert.Equal(t, 60, result.Feedback.OverallScore)
	assert.Len(t, result.Feedback.Fallacies, 2)
	assert.Equal(t, 6, result.PointsEarned)
}

func TestAnalyzeArgumentUserNotFound(t *testing.T) {
	userStore := new(MockUserStore)
	sessionStore := new(MockSessionStore)
	svc := newTestDebateService(t, userStore, sessionStore)

	unknown := uuid.New()
	userStore.On("GetByID", mock.Anything, unknown).Return(nil, store.ErrUserNotFound)

	_, err := svc.AnalyzeArgument(context.Background(), unknown, "Homework", domain.PositionFor,
		"a perfectly reasonable argument text")

	assert.ErrorIs(t, err, store.ErrUserNotFound)
	sessionStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	userStore.AssertNotCalled(t, "IncrementPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzeArgumentSessionWriteFailureSkipsPointAward(t *testing.T) {
	userStore := new(MockUserStore)
	sessionStore := new(MockSessionStore)
	svc := newTestDebateService(t, userStore, sessionStore)

	user := testUser(1, 0)
	writeErr := errors.New("disk full")

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	sessionStore.On("Create", mock.Anything, mock.Anything).Return(writeErr)

	_, err := svc.AnalyzeArgument(context.Background(), user.ID, "Homework", domain.PositionFor,
		"a perfectly reasonable argument text")

	require.Error(t, err)
	var svcErr *DebateServiceError
	assert.ErrorAs(t, err, &svcErr)
	userStore.AssertNotCalled(t, "IncrementPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzeArgumentRejectsEmptyInput(t *testing.T) {
	userStore := new(MockUserStore)
	sessionStore := new(MockSessionStore)
	svc := newTestDebateService(t, userStore, sessionStore)

	_, err := svc.AnalyzeArgument(context.Background(), uuid.New(), "", domain.PositionFor, "text")
	assert.Error(t, err)

	sessionStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPointsForScore(t *testing.T) {
	testCases := []struct {
		score    int
		expected int
	}{
		{100, 10},
		{55, 5},
		{10, 1},
		{9, 1},
		{3, 1},
		{0, 1},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, pointsForScore(tc.score),
			"score %d should award %d points", tc.score, tc.expected)
	}
}

func TestGetProgress(t *testing.T) {
	userStore := new(MockUserStore)
	sessionStore := new(MockSessionStore)
	svc := newTestDebateService(t, userStore, sessionStore)

	user := testUser(2, 150)
	sessions := []*domain.DebateSession{
		{ID: uuid.New(), UserID: user.ID, Topic: "Homework", Position: domain.PositionFor, Score: 90},
		{ID: uuid.New(), UserID: user.ID, Topic: "Uniforms", Position: domain.PositionAgainst, Score: 65},
	}

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	sessionStore.On("ListRecentByUser", mock.Anything, user.ID, 10).Return(sessions, nil)
	sessionStore.On("StatsByUser", mock.Anything, user.ID).
		Return(&store.SessionStats{TotalSessions: 2, AverageScore: 77.25}, nil)

	progress, err := svc.GetProgress(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, user, progress.User)
	assert.Len(t, progress.RecentSessions, 2)
	assert.Equal(t, 2, progress.TotalSessions)
	assert.InDelta(t, 77.3, progress.AverageScore, 0.001, "mean should be rounded to one decimal")
	assert.Equal(t, 50, progress.NextLevelPoints, "level 2 requires 200 points, user has 150")
}

func TestGetProgressWithNoSessions(t *testing.T) {
	userStore := new(MockUserStore)
	sessionStore := new(MockSessionStore)
	svc := newTestDebateService(t, userStore, sessionStore)

	user := testUser(1, 0)

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	sessionStore.On("ListRecentByUser", mock.Anything, user.ID, 10).
		Return([]*domain.DebateSession{}, nil)
	sessionStore.On("StatsByUser", mock.Anything, user.ID).
		Return(&store.SessionStats{}, nil)

	progress, err := svc.GetProgress(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, progress.TotalSessions)
	assert.Equal(t, 0.0, progress.AverageScore)
	assert.Empty(t, progress.RecentSessions)
	assert.Equal(t, 100, progress.NextLevelPoints)
}

func TestGetProgressNextLevelPointsCanBeNegative(t *testing.T) {
	userStore := new(MockUserStore)
	sessionStore := new(MockSessionStore)
	svc := newTestDebateService(t, userStore, sessionStore)

	user := testUser(1, 130)

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	sessionStore.On("ListRecentByUser", mock.Anything, user.ID, 10).
		Return([]*domain.DebateSession{}, nil)
	sessionStore.On("StatsByUser", mock.Anything, user.ID).
		Return(&store.SessionStats{TotalSessions: 13, AverageScore: 100}, nil)

	progress, err := svc.GetProgress(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, -30, progress.NextLevelPoints)
}

func TestGetProgressUserNotFound(t *testing.T) {
	userStore := new(MockUserStore)
	sessionStore := new(MockSessionStore)
	svc := newTestDebateService(t, userStore, sessionStore)

	unknown := uuid.New()
	userStore.On("GetByID", mock.Anything, unknown).Return(nil, store.ErrUserNotFound)

	_, err := svc.GetProgress(context.Background(), unknown)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	sessionStore.AssertNotCalled(t, "ListRecentByUser", mock.Anything, mock.Anything, mock.Anything)
}
