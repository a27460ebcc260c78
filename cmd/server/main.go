// Package main implements the entry point for the user-api server,
// a small HTTP service managing user records backed by an in-memory
// keyed store.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/user-api/internal/config"
	"github.com/phrazzld/user-api/internal/platform/logger"
)

// main initializes configuration, logging, and application dependencies,
// then runs the HTTP server until it is signaled to stop.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"default_page_size", cfg.Pagination.DefaultPageSize)

	return newApplication(cfg, appLogger), nil
}
