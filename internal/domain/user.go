package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Age groups recognized by the lesson catalog and registration flow.
// Note: these values are documented but not currently enforced at the
// persistence layer; callers may store other strings.
const (
	AgeGroupElementary = "elementary"
	AgeGroupMiddle     = "middle"
	AgeGroupHigh       = "high"
	AgeGroupCollege    = "college"
)

// Common validation errors for User
var (
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmptyAgeGroup = errors.New("age group cannot be empty")
)

// User represents a registered learner. It owns the user's identity and
// the cumulative point total mutated by the session-recording flow.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	AgeGroup     string    `json:"age_group"`
	CurrentLevel int       `json:"current_level"`
	TotalPoints  int       `json:"total_points"`
	Badges       []string  `json:"badges"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates a new User with the given username, email and age group.
// It generates a new UUID for the user ID, starts the user at level 1 with
// zero points and no badges, and sets the creation timestamp.
// Returns an error if validation fails.
func NewUser(username, email, ageGroup string) (*User, error) {
	user := &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		AgeGroup:     ageGroup,
		CurrentLevel: 1,
		TotalPoints:  0,
		Badges:       []string{},
		CreatedAt:    time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.AgeGroup == "" {
		return ErrEmptyAgeGroup
	}

	return nil
}

// validateEmailFormat performs basic validation of email format.
// It requires a non-empty local part and a domain containing an
// interior dot. Intentionally simple; the API layer applies the
// stricter validator tag on registration requests.
func validateEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
