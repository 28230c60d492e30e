package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/debatelab/debate-api/internal/domain"
	"github.com/debatelab/debate-api/internal/platform/logger"
	"github.com/debatelab/debate-api/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend. Sessions are
// append-only; this store issues no UPDATE or DELETE statements.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the SessionStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

// Create implements store.SessionStore.Create
// It saves a new debate session, serializing the feedback structure and
// fallacy list as jsonb. Returns store.ErrInvalidEntity if the referenced
// user does not exist (foreign key violation).
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.DebateSession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return err
	}

	feedback, err := json.Marshal(session.Feedback)
	if err != nil {
		return fmt.Errorf("failed to serialize feedback: %w", err)
	}
	fallacies, err := json.Marshal(session.Fallacies)
	if err != nil {
		return fmt.Errorf("failed to serialize fallacies: %w", err)
	}

	query := `
		INSERT INTO debate_sessions
			(id, user_id, topic, position, argument_text, ai_feedback, logical_fallacies, score, session_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.UserID,
		session.Topic,
		session.Position,
		session.ArgumentText,
		feedback,
		fallacies,
		session.Score,
		session.SessionDate,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			log.Warn("foreign key violation during session creation",
				slog.String("error", err.Error()),
				slog.String("session_id", session.ID.String()),
				slog.String("user_id", session.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, session.UserID)
		}

		log.Error("failed to create session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()),
			slog.String("user_id", session.UserID.String()))
		return MapError(err)
	}

	log.Info("session created successfully",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", session.UserID.String()),
		slog.Int("score", session.Score))
	return nil
}

// GetByID implements store.SessionStore.GetByID
// Returns store.ErrSessionNotFound if the session does not exist.
func (s *PostgresSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.DebateSession, error) {
	query := `
		SELECT id, user_id, topic, position, argument_text, ai_feedback, logical_fallacies, score, session_date
		FROM debate_sessions
		WHERE id = $1
	`
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, MapError(err)
		}
		return nil, store.ErrSessionNotFound
	}

	session, err := s.scanSession(rows)
	if err != nil {
		return nil, err
	}
	return session, rows.Err()
}

// ListRecentByUser implements store.SessionStore.ListRecentByUser
// Sessions are ordered most recent first. The id tiebreak makes the
// ordering deterministic for sessions sharing a timestamp, but since
// ids are random it does not recover their insertion order.
func (s *PostgresSessionStore) ListRecentByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.DebateSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, topic, position, argument_text, ai_feedback, logical_fallacies, score, session_date
		FROM debate_sessions
		WHERE user_id = $1
		ORDER BY session_date DESC, id DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		log.Error("failed to list recent sessions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	sessions := []*domain.DebateSession{}
	for rows.Next() {
		session, err := s.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return sessions, nil
}

// StatsByUser implements store.SessionStore.StatsByUser
// A user with no sessions yields zero values, never an error.
func (s *PostgresSessionStore) StatsByUser(ctx context.Context, userID uuid.UUID) (*store.SessionStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COUNT(*), COALESCE(AVG(score), 0)
		FROM debate_sessions
		WHERE user_id = $1
	`
	stats := &store.SessionStats{}
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&stats.TotalSessions, &stats.AverageScore)
	if err != nil {
		log.Error("failed to compute session stats",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	return stats, nil
}

// WithTx implements store.SessionStore.WithTx
// It returns a new SessionStore instance backed by the provided transaction.
func (s *PostgresSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &PostgresSessionStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanSession reads one session row, deserializing the feedback structure
// and fallacy list.
func (s *PostgresSessionStore) scanSession(rows *sql.Rows) (*domain.DebateSession, error) {
	var session domain.DebateSession
	var feedback, fallacies []byte
	var sessionDate time.Time

	err := rows.Scan(
		&session.ID,
		&session.UserID,
		&session.Topic,
		&session.Position,
		&session.ArgumentText,
		&feedback,
		&fallacies,
		&session.Score,
		&sessionDate,
	)
	if err != nil {
		return nil, MapError(err)
	}

	if err := json.Unmarshal(feedback, &session.Feedback); err != nil {
		return nil, fmt.Errorf("failed to deserialize feedback: %w", err)
	}
	if err := json.Unmarshal(fallacies, &session.Fallacies); err != nil {
		return nil, fmt.Errorf("failed to deserialize fallacies: %w", err)
	}
	session.SessionDate = sessionDate.UTC()

	return &session, nil
}
