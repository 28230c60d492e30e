package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/debatelab/debate-api/internal/content"
	"github.com/debatelab/debate-api/internal/domain"
	"github.com/debatelab/debate-api/internal/service"
	"github.com/debatelab/debate-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserService satisfies service.UserService for routing tests.
type stubUserService struct{}

func (stubUserService) Register(ctx context.Context, username, email, ageGroup string) (*domain.User, error) {
	return domain.NewUser(username, email, ageGroup)
}

func (stubUserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return nil, store.ErrUserNotFound
}

// stubDebateService satisfies service.DebateService for routing tests.
type stubDebateService struct{}

func (stubDebateService) AnalyzeArgument(
	ctx context.Context,
	userID uuid.UUID,
	topic, position, argumentText string,
) (*service.AnalysisResult, error) {
	return nil, store.ErrUserNotFound
}

func (stubDebateService) GetProgress(ctx context.Context, userID uuid.UUID) (*service.Progress, error) {
	return nil, store.ErrUserNotFound
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	catalog, err := content.NewCatalog()
	require.NoError(t, err)

	return setupRouter(stubUserService{}, stubDebateService{}, catalog, slog.Default())
}

func TestRouterHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouterRouteTable(t *testing.T) {
	router := newTestRouter(t)

	testCases := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"lessons route is wired", http.MethodGet, "/api/lessons", http.StatusOK},
		{"user lookup reaches the handler", http.MethodGet, "/api/users/" + uuid.NewString(), http.StatusNotFound},
		{"progress reaches the handler", http.MethodGet, "/api/users/" + uuid.NewString() + "/progress", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/api/unknown", http.StatusNotFound},
		{"wrong method on users", http.MethodDelete, "/api/users", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
