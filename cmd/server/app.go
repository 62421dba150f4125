package main

import (
	"database/sql"
	"log/slog"

	"github.com/draca/medium-api/internal/config"
	"github.com/draca/medium-api/internal/platform/postgres"
	"github.com/draca/medium-api/internal/service/auth"
	"github.com/draca/medium-api/internal/store"
)

// application holds the long-lived dependencies of the server process.
// Everything here is constructed once at startup and injected into the
// handlers; no per-request construction of stores or services.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	blogStore        store.BlogStore
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication wires the application dependencies from the loaded
// configuration and an established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		blogStore:        postgres.NewPostgresBlogStore(db, logger),
		userStore:        postgres.NewPostgresUserStore(db, logger),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases the application's resources during shutdown.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}
