package api

import (
	"fmt"
	"net/http"

	"github.com/debatelab/debate-api/internal/api/shared"
	"github.com/debatelab/debate-api/internal/service"
	"github.com/google/uuid"
)

// DebateHandler handles argument analysis and progress HTTP requests.
type DebateHandler struct {
	debateService service.DebateService
}

// NewDebateHandler creates a new DebateHandler.
func NewDebateHandler(debateService service.DebateService) *DebateHandler {
	return &DebateHandler{
		debateService: debateService,
	}
}

// AnalyzeArgument handles POST /api/debate/analyze requests.
func (h *DebateHandler) AnalyzeArgument(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// The uuid tag has already vetted the format.
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	result, err := h.debateService.AnalyzeArgument(r.Context(), userID, req.Topic, req.Position, req.ArgumentText)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnalyzeResponse{
		Feedback:     result.Feedback,
		PointsEarned: result.PointsEarned,
		Message:      fmt.Sprintf("Great work! You earned %d points.", result.PointsEarned),
	})
}

// GetProgress handles GET /api/users/{id}/progress requests.
func (h *DebateHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserIDParam(w, r)
	if !ok {
		return
	}

	progress, err := h.debateService.GetProgress(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progressToResponse(progress))
}
