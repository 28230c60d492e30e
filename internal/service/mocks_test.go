package service

import (
	"context"
	"database/sql"

	"github.com/debatelab/debate-api/internal/domain"
	"github.com/debatelab/debate-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) IncrementPoints(ctx context.Context, id uuid.UUID, amount int) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	// Transactional behavior is exercised through the injected TxRunner;
	// the mock simply hands back itself.
	return m
}

// MockSessionStore mocks the store.SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, session *domain.DebateSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.DebateSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebateSession), args.Error(1)
}

func (m *MockSessionStore) ListRecentByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.DebateSession, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DebateSession), args.Error(1)
}

func (m *MockSessionStore) StatsByUser(ctx context.Context, userID uuid.UUID) (*store.SessionStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SessionStats), args.Error(1)
}

func (m *MockSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return m
}

// passthroughTxRunner runs the transaction function directly against a
// nil transaction, bypassing the database entirely. Rollback-on-error
// semantics are the transaction helper's concern, covered separately.
func passthroughTxRunner(ctx context.Context, db *sql.DB, fn store.TxFn) error {
	return fn(ctx, nil)
}
