package api

import (
	"net/http"
	"strconv"

	"github.com/debatelab/debate-api/internal/api/shared"
	"github.com/debatelab/debate-api/internal/content"
)

const (
	defaultAgeGroup = "middle"
	defaultLevel    = 1
)

// LessonHandler serves the static lesson catalog.
type LessonHandler struct {
	catalog *content.Catalog
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(catalog *content.Catalog) *LessonHandler {
	return &LessonHandler{catalog: catalog}
}

// GetLessons handles GET /api/lessons requests. Missing or malformed
// query parameters fall back to the defaults rather than erroring.
func (h *LessonHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	ageGroup := r.URL.Query().Get("age_group")
	if ageGroup == "" {
		ageGroup = defaultAgeGroup
	}

	level := defaultLevel
	if rawLevel := r.URL.Query().Get("level"); rawLevel != "" {
		parsed, err := strconv.Atoi(rawLevel)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid level")
			return
		}
		level = parsed
	}

	shared.RespondWithJSON(w, r, http.StatusOK, h.catalog.Lookup(ageGroup, level))
}
