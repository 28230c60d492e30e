// Package main implements the entry point for the debate learning API
// server, which scores free-text debate arguments and tracks learner
// progress.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/debatelab/debate-api/internal/config"
	"github.com/debatelab/debate-api/internal/content"
	"github.com/debatelab/debate-api/internal/platform/logger"
	"github.com/debatelab/debate-api/internal/platform/postgres"
	"github.com/debatelab/debate-api/internal/service"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database connection", "error", err)
		}
	}()

	if err := runMigrations(db, appLogger); err != nil {
		return err
	}

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	sessionStore := postgres.NewPostgresSessionStore(db, appLogger)

	userService, err := service.NewUserService(userStore, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}

	debateService, err := service.NewDebateService(db, userStore, sessionStore,
		buildEvaluator(cfg.Analysis), appLogger)
	if err != nil {
		return fmt.Errorf("failed to create debate service: %w", err)
	}

	catalog, err := content.NewCatalog()
	if err != nil {
		return fmt.Errorf("failed to load lesson catalog: %w", err)
	}

	router := setupRouter(userService, debateService, catalog, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return runServer(server, appLogger)
}

// runServer starts the HTTP server and blocks until SIGINT or SIGTERM,
// then drains in-flight requests within the shutdown timeout.
func runServer(server *http.Server, appLogger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		appLogger.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	appLogger.Info("server stopped")
	return nil
}
