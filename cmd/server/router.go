package main

import (
	"log/slog"
	"net/http"

	"github.com/debatelab/debate-api/internal/api"
	apiMiddleware "github.com/debatelab/debate-api/internal/api/middleware"
	"github.com/debatelab/debate-api/internal/content"
	"github.com/debatelab/debate-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter wires the application services into the route table.
func setupRouter(
	userService service.UserService,
	debateService service.DebateService,
	catalog *content.Catalog,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(logger))

	userHandler := api.NewUserHandler(userService)
	debateHandler := api.NewDebateHandler(debateService)
	lessonHandler := api.NewLessonHandler(catalog)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.CreateUser)
		r.Get("/users/{id}", userHandler.GetUser)
		r.Get("/users/{id}/progress", debateHandler.GetProgress)

		r.Post("/debate/analyze", debateHandler.AnalyzeArgument)

		r.Get("/lessons", lessonHandler.GetLessons)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
