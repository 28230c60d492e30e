package store

import (
	"context"
	"database/sql"

	"github.com/debatelab/debate-api/internal/domain"
	"github.com/google/uuid"
)

// SessionStats holds aggregate statistics over a user's debate sessions.
type SessionStats struct {
	// TotalSessions is the number of sessions recorded for the user.
	TotalSessions int

	// AverageScore is the unrounded arithmetic mean of all session scores,
	// 0 when the user has no sessions.
	AverageScore float64
}

// SessionStore defines the interface for debate session persistence.
// Sessions are append-only: the interface deliberately exposes no update
// or delete operations.
type SessionStore interface {
	// Create saves a new debate session to the store.
	// Returns ErrInvalidEntity if the referenced user does not exist.
	// Returns validation errors from the domain DebateSession if data is invalid.
	Create(ctx context.Context, session *domain.DebateSession) error

	// GetByID retrieves a session by its unique ID.
	// Returns ErrSessionNotFound if the session does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DebateSession, error)

	// ListRecentByUser retrieves up to limit sessions for the user,
	// most recent first (session date descending, insertion order as
	// tiebreak). Returns an empty slice when the user has no sessions.
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.DebateSession, error)

	// StatsByUser computes the session count and mean score across all of
	// the user's sessions. A user with no sessions yields zero values,
	// not an error.
	StatsByUser(ctx context.Context, userID uuid.UUID) (*SessionStats, error)

	// WithTx returns a new SessionStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) SessionStore
}
