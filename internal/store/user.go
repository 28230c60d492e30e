package store

import (
	"context"
	"database/sql"

	"github.com/debatelab/debate-api/internal/domain"
	"github.com/google/uuid"
)

// UserStore defines the interface for user data persistence. It is the
// authoritative ledger of user identity and cumulative points.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrUsernameExists or ErrEmailExists if the username or
	// email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// IncrementPoints atomically adds amount to the user's total points.
	// The add is relative (applied in the database, never computed from a
	// previously read value), so concurrent increments accumulate correctly.
	// Returns ErrUserNotFound if the user does not exist.
	IncrementPoints(ctx context.Context, id uuid.UUID, amount int) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
