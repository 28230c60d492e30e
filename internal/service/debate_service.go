package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"

	"github.com/debatelab/debate-api/internal/domain"
	"github.com/debatelab/debate-api/internal/domain/analysis"
	"github.com/debatelab/debate-api/internal/store"
	"github.com/google/uuid"
)

// Point-award rules for recorded sessions: one point per ten score
// points, never less than one.
const (
	pointsPerScoreDivisor = 10
	minPointsPerSession   = 1
)

// recentSessionLimit is how many sessions a progress view includes.
const recentSessionLimit = 10

// AnalysisResult is the outcome of recording one analyzed argument.
type AnalysisResult struct {
	Feedback     domain.Feedback
	PointsEarned int
}

// Progress is the composite progress view for one user.
type Progress struct {
	User            *domain.User
	RecentSessions  []*domain.DebateSession
	TotalSessions   int
	AverageScore    float64
	NextLevelPoints int
}

// DebateService provides argument analysis with session recording, and
// progress aggregation.
type DebateService interface {
	// AnalyzeArgument scores the argument text, persists the resulting
	// session, and awards points to the user. The session insert and the
	// point increment are applied atomically.
	// Returns store.ErrUserNotFound when the user does not exist.
	AnalyzeArgument(
		ctx context.Context,
		userID uuid.UUID,
		topic, position, argumentText string,
	) (*AnalysisResult, error)

	// GetProgress computes the user's progress view: recent sessions,
	// aggregate statistics, and the points remaining to the next level.
	// Returns store.ErrUserNotFound when the user does not exist.
	GetProgress(ctx context.Context, userID uuid.UUID) (*Progress, error)
}

// TxRunner executes a function inside a database transaction. It exists
// as a seam so unit tests can run services without a live database; the
// production value is store.RunInTransaction.
type TxRunner func(ctx context.Context, db *sql.DB, fn store.TxFn) error

// DebateServiceError wraps errors from the debate service with context.
type DebateServiceError struct {
	// Operation is the operation that failed (e.g., "analyze_argument")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for DebateServiceError.
func (e *DebateServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("debate service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("debate service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *DebateServiceError) Unwrap() error {
	return e.Err
}

// newDebateServiceError wraps err unless it is a store sentinel the API
// layer maps directly, in which case it is passed through.
func newDebateServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if store.IsNotFoundError(err) || store.IsDuplicateError(err) {
		return err
	}

	return &DebateServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// debateServiceImpl implements the DebateService interface.
type debateServiceImpl struct {
	db           *sql.DB
	userStore    store.UserStore
	sessionStore store.SessionStore
	evaluator    analysis.Evaluator
	runInTx      TxRunner
	logger       *slog.Logger
}

// NewDebateService creates a new DebateService.
// The evaluator may be nil, in which case the default rule tables are used.
// It returns an error if any required dependency is nil.
func NewDebateService(
	db *sql.DB,
	userStore store.UserStore,
	sessionStore store.SessionStore,
	evaluator analysis.Evaluator,
	logger *slog.Logger,
) (DebateService, error) {
	if db == nil {
		return nil, &DebateServiceError{
			Operation: "create_service",
			Message:   "db cannot be nil",
		}
	}
	if userStore == nil {
		return nil, &DebateServiceError{
			Operation: "create_service",
			Message:   "userStore cannot be nil",
		}
	}
	if sessionStore == nil {
		return nil, &DebateServiceError{
			Operation: "create_service",
			Message:   "sessionStore cannot be nil",
		}
	}

	if evaluator == nil {
		evaluator = analysis.NewDefaultEvaluator()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &debateServiceImpl{
		db:           db,
		userStore:    userStore,
		sessionStore: sessionStore,
		evaluator:    evaluator,
		runInTx:      store.RunInTransaction,
		logger:       logger.With("component", "debate_service"),
	}, nil
}

// AnalyzeArgument implements DebateService.AnalyzeArgument.
//
// The scoring pipeline itself is pure; the only side effects are the
// session insert and the point increment, which run inside a single
// transaction so no reader can observe one without the other.
func (s *debateServiceImpl) AnalyzeArgument(
	ctx context.Context,
	userID uuid.UUID,
	topic, position, argumentText string,
) (*AnalysisResult, error) {
	feedback := s.evaluator.Evaluate(argumentText)
	pointsEarned := pointsForScore(feedback.OverallScore)

	session, err := domain.NewDebateSession(userID, topic, position, argumentText, feedback)
	if err != nil {
		s.logger.Warn("invalid session data",
			"error", err,
			"user_id", userID)
		return nil, newDebateServiceError("analyze_argument", "invalid session data", err)
	}

	err = s.runInTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := s.userStore.WithTx(tx)
		txSessions := s.sessionStore.WithTx(tx)

		// Resolve the user inside the transaction so the not-found
		// precondition and the writes see one consistent state.
		if _, err := txUsers.GetByID(ctx, userID); err != nil {
			return err
		}

		if err := txSessions.Create(ctx, session); err != nil {
			return err
		}

		return txUsers.IncrementPoints(ctx, userID, pointsEarned)
	})
	if err != nil {
		s.logger.Error("failed to record debate session",
			"error", err,
			"user_id", userID,
			"session_id", session.ID)
		return nil, newDebateServiceError("analyze_argument", "failed to record session", err)
	}

	s.logger.Info("debate session recorded",
		"user_id", userID,
		"session_id", session.ID,
		"score", feedback.OverallScore,
		"points_earned", pointsEarned)

	return &AnalysisResult{
		Feedback:     feedback,
		PointsEarned: pointsEarned,
	}, nil
}

// GetProgress implements DebateService.GetProgress.
func (s *debateServiceImpl) GetProgress(ctx context.Context, userID uuid.UUID) (*Progress, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, newDebateServiceError("get_progress", "failed to load user", err)
	}

	recent, err := s.sessionStore.ListRecentByUser(ctx, userID, recentSessionLimit)
	if err != nil {
		return nil, newDebateServiceError("get_progress", "failed to list recent sessions", err)
	}

	stats, err := s.sessionStore.StatsByUser(ctx, userID)
	if err != nil {
		return nil, newDebateServiceError("get_progress", "failed to compute session stats", err)
	}

	return &Progress{
		User:           user,
		RecentSessions: recent,
		TotalSessions:  stats.TotalSessions,
		AverageScore:   roundToOneDecimal(stats.AverageScore),
		// Display value only; may be negative when a user has banked
		// more points than the next level requires.
		NextLevelPoints: user.CurrentLevel*100 - user.TotalPoints,
	}, nil
}

// pointsForScore converts an overall score into awarded points:
// one point per ten score points, floored, with a minimum of one.
func pointsForScore(overallScore int) int {
	points := overallScore / pointsPerScoreDivisor
	if points < minPointsPerSession {
		return minPointsPerSession
	}
	return points
}

// roundToOneDecimal rounds half away from zero to one decimal place.
func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
