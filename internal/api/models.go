package api

import (
	"time"

	"github.com/debatelab/debate-api/internal/domain"
	"github.com/debatelab/debate-api/internal/service"
)

// CreateUserRequest represents the request body for registering a user.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Email    string `json:"email"    validate:"required,email"`
	AgeGroup string `json:"age_group" validate:"required,min=1"`
}

// UserResponse represents the response data for a user account.
type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	AgeGroup     string    `json:"age_group"`
	CurrentLevel int       `json:"current_level"`
	TotalPoints  int       `json:"total_points"`
	Badges       []string  `json:"badges"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnalyzeRequest represents the request body for submitting an argument.
type AnalyzeRequest struct {
	UserID       string `json:"user_id" validate:"required,uuid"`
	Topic        string `json:"topic" validate:"required,min=1"`
	Position     string `json:"position" validate:"required,min=1"`
	ArgumentText string `json:"argument_text" validate:"required,min=1"`
}

// AnalyzeResponse carries the scored feedback and the points it earned.
type AnalyzeResponse struct {
	Feedback     domain.Feedback `json:"feedback"`
	PointsEarned int             `json:"points_earned"`
	Message      string          `json:"message"`
}

// SessionSummaryResponse is one entry in a user's recent session history.
type SessionSummaryResponse struct {
	Topic    string    `json:"topic"`
	Position string    `json:"position"`
	Score    int       `json:"score"`
	Date     time.Time `json:"date"`
}

// ProgressResponse represents a user's aggregated learning progress.
type ProgressResponse struct {
	User            UserResponse             `json:"user"`
	RecentSessions  []SessionSummaryResponse `json:"recent_sessions"`
	TotalSessions   int                      `json:"total_sessions"`
	AverageScore    float64                  `json:"average_score"`
	NextLevelPoints int                      `json:"next_level_points"`
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		AgeGroup:     user.AgeGroup,
		CurrentLevel: user.CurrentLevel,
		TotalPoints:  user.TotalPoints,
		Badges:       user.Badges,
		CreatedAt:    user.CreatedAt,
	}
}

// progressToResponse converts a service.Progress to a ProgressResponse.
func progressToResponse(progress *service.Progress) ProgressResponse {
	sessions := make([]SessionSummaryResponse, 0, len(progress.RecentSessions))
	for _, s := range progress.RecentSessions {
		sessions = append(sessions, SessionSummaryResponse{
			Topic:    s.Topic,
			Position: s.Position,
			Score:    s.Score,
			Date:     s.SessionDate,
		})
	}

	return ProgressResponse{
		User:            userToResponse(progress.User),
		RecentSessions:  sessions,
		TotalSessions:   progress.TotalSessions,
		AverageScore:    progress.AverageScore,
		NextLevelPoints: progress.NextLevelPoints,
	}
}
