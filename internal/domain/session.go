package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Debate positions recognized by the practice flow. Like age groups,
// these are documented values, not an enforced enumeration.
const (
	PositionFor     = "for"
	PositionAgainst = "against"
)

// Common validation errors for DebateSession
var (
	ErrEmptySessionID       = errors.New("session ID cannot be empty")
	ErrEmptySessionUserID   = errors.New("session user ID cannot be empty")
	ErrEmptyTopic           = errors.New("session topic cannot be empty")
	ErrEmptyPosition        = errors.New("session position cannot be empty")
	ErrEmptyArgumentText    = errors.New("argument text cannot be empty")
	ErrSessionScoreMismatch = errors.New("session score must equal the feedback overall score")
)

// DebateSession is one immutable record of a single submitted argument
// and its derived feedback. Sessions are append-only: once created they
// are never mutated or deleted.
type DebateSession struct {
	ID           uuid.UUID        `json:"id"`
	UserID       uuid.UUID        `json:"user_id"`
	Topic        string           `json:"topic"`
	Position     string           `json:"position"`
	ArgumentText string           `json:"argument_text"`
	Feedback     Feedback         `json:"ai_feedback"`
	Fallacies    []FallacyFinding `json:"logical_fallacies"`
	Score        int              `json:"score"`
	SessionDate  time.Time        `json:"session_date"`
}

// NewDebateSession creates a new DebateSession for the given user and
// argument, embedding the supplied feedback. The session score is taken
// from the feedback's overall score, and the session date is assigned
// by the server at creation time.
// Returns an error if validation fails.
func NewDebateSession(
	userID uuid.UUID,
	topic, position, argumentText string,
	feedback Feedback,
) (*DebateSession, error) {
	session := &DebateSession{
		ID:           uuid.New(),
		UserID:       userID,
		Topic:        topic,
		Position:     position,
		ArgumentText: argumentText,
		Feedback:     feedback,
		Fallacies:    feedback.Fallacies,
		Score:        feedback.OverallScore,
		SessionDate:  time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the DebateSession has valid data, including the
// embedded feedback invariants and the score/feedback agreement.
func (s *DebateSession) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySessionID
	}

	if s.UserID == uuid.Nil {
		return ErrEmptySessionUserID
	}

	if s.Topic == "" {
		return ErrEmptyTopic
	}

	if s.Position == "" {
		return ErrEmptyPosition
	}

	if s.ArgumentText == "" {
		return ErrEmptyArgumentText
	}

	if err := s.Feedback.Validate(); err != nil {
		return err
	}

	if s.Score != s.Feedback.OverallScore {
		return ErrSessionScoreMismatch
	}

	return nil
}
