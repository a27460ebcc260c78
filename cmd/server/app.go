package main

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/user-api/internal/config"
	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/service"
	"github.com/phrazzld/user-api/internal/store"
)

// application holds the shared dependencies of the server: configuration,
// logger, the user store, and the user service built on top of it.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	userStore   store.KeyedStore[uuid.UUID, *domain.User]
	userService service.UserService
}

// newApplication wires the application dependency graph. The store is the
// single shared mutable resource; everything else is request-local.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	userStore := store.NewMemoryStore[uuid.UUID, *domain.User]()
	userService := service.NewUserService(userStore, logger)

	return &application{
		config:      cfg,
		logger:      logger,
		userStore:   userStore,
		userService: userService,
	}
}

// cleanup releases application resources before shutdown. The in-memory
// store holds nothing durable, so there is currently nothing to release.
func (app *application) cleanup() {
	app.logger.Debug("application cleanup complete")
}
