package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/debatelab/debate-api/internal/domain"
	"github.com/debatelab/debate-api/internal/store"
	"github.com/google/uuid"
)

// UserService provides user registration and lookup over the ledger.
type UserService interface {
	// Register creates a new user account.
	// Returns store.ErrUsernameExists or store.ErrEmailExists when the
	// username or email is already taken.
	Register(ctx context.Context, username, email, ageGroup string) (*domain.User, error)

	// Get retrieves a user by ID.
	// Returns store.ErrUserNotFound when the user does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// UserServiceError wraps errors from the user service with context.
type UserServiceError struct {
	// Operation is the operation that failed (e.g., "register", "get")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for UserServiceError.
func (e *UserServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("user service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("user service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *UserServiceError) Unwrap() error {
	return e.Err
}

// newUserServiceError wraps err unless it is a store or domain sentinel
// the API layer maps directly, in which case it is passed through.
func newUserServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if store.IsNotFoundError(err) || store.IsDuplicateError(err) || isDomainValidationError(err) {
		return err
	}

	return &UserServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// isDomainValidationError reports whether the error is one of the domain
// entity validation sentinels.
func isDomainValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrEmptyUserID,
		domain.ErrEmptyUsername,
		domain.ErrEmptyEmail,
		domain.ErrInvalidEmail,
		domain.ErrEmptyAgeGroup,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if the required store is nil.
func NewUserService(userStore store.UserStore, logger *slog.Logger) (UserService, error) {
	if userStore == nil {
		return nil, &UserServiceError{
			Operation: "create_service",
			Message:   "userStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		logger:    logger.With("component", "user_service"),
	}, nil
}

// Register creates and persists a new user starting at level 1 with zero points.
func (s *userServiceImpl) Register(
	ctx context.Context,
	username, email, ageGroup string,
) (*domain.User, error) {
	user, err := domain.NewUser(username, email, ageGroup)
	if err != nil {
		s.logger.Warn("invalid registration data",
			"error", err,
			"username", username)
		return nil, newUserServiceError("register", "invalid user data", err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		s.logger.Warn("failed to create user",
			"error", err,
			"username", username)
		return nil, newUserServiceError("register", "failed to save user", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"username", user.Username)
	return user, nil
}

// Get retrieves a user by ID.
func (s *userServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, newUserServiceError("get", "failed to load user", err)
	}
	return user, nil
}
