package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/debatelab/debate-api/internal/domain"
	"github.com/debatelab/debate-api/internal/platform/logger"
	"github.com/debatelab/debate-api/internal/store"
	"github.com/google/uuid"
)

// Unique constraint names from the users table migration. Used to map a
// unique violation to the specific duplicate-field error.
const (
	usersUsernameConstraint = "users_username_key"
	usersEmailConstraint    = "users_email_key"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
// It saves a new user to the database, handling domain validation.
// Returns store.ErrUsernameExists or store.ErrEmailExists when the
// username or email is already taken.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	badges, err := json.Marshal(user.Badges)
	if err != nil {
		return fmt.Errorf("failed to serialize badges: %w", err)
	}

	query := `
		INSERT INTO users (id, username, email, age_group, current_level, total_points, badges, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Email,
		user.AgeGroup,
		user.CurrentLevel,
		user.TotalPoints,
		badges,
		user.CreatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate user during creation",
				slog.String("constraint", ViolatedConstraint(err)),
				slog.String("username", user.Username))
			switch ViolatedConstraint(err) {
			case usersUsernameConstraint:
				return store.ErrUsernameExists
			case usersEmailConstraint:
				return store.ErrEmailExists
			default:
				return store.ErrDuplicate
			}
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return MapError(err)
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
		slog.String("age_group", user.AgeGroup))
	return nil
}

// GetByID implements store.UserStore.GetByID
// It retrieves a user by their unique ID.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, username, email, age_group, current_level, total_points, badges, created_at
		FROM users
		WHERE id = $1
	`
	return s.scanUser(ctx, s.db.QueryRowContext(ctx, query, id))
}

// IncrementPoints implements store.UserStore.IncrementPoints
// The increment is a relative add executed in the database, so concurrent
// awards for the same user accumulate correctly without read-modify-write
// races. Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) IncrementPoints(ctx context.Context, id uuid.UUID, amount int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET total_points = total_points + $1
		WHERE id = $2
	`
	result, err := s.db.ExecContext(ctx, query, amount, id)
	if err != nil {
		log.Error("failed to increment user points",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()),
			slog.Int("amount", amount))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		return store.ErrUserNotFound
	}

	log.Debug("user points incremented",
		slog.String("user_id", id.String()),
		slog.Int("amount", amount))
	return nil
}

// WithTx implements store.UserStore.WithTx
// It returns a new UserStore instance backed by the provided transaction.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanUser reads one user row, deserializing the badges list.
func (s *PostgresUserStore) scanUser(ctx context.Context, row *sql.Row) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user domain.User
	var badges []byte
	var createdAt time.Time

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.AgeGroup,
		&user.CurrentLevel,
		&user.TotalPoints,
		&badges,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to scan user row", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if err := json.Unmarshal(badges, &user.Badges); err != nil {
		return nil, fmt.Errorf("failed to deserialize badges: %w", err)
	}
	user.CreatedAt = createdAt.UTC()

	return &user, nil
}
