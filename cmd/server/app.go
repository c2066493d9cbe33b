package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/josanism/community-api/internal/config"
	"github.com/josanism/community-api/internal/platform/postgres"
	"github.com/josanism/community-api/internal/platform/supabase"
	"github.com/josanism/community-api/internal/service/auth"
	"github.com/josanism/community-api/internal/service/signup"
	"github.com/josanism/community-api/internal/store"
)

// application holds the shared application dependencies to simplify
// wiring and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	profileStore  store.ProfileStore
	platform      *supabase.Client
	tokenVerifier auth.TokenVerifier
	cookieManager *auth.CookieManager
	signupService *signup.Service
}

// newApplication constructs every component from configuration. All
// wiring failures surface here, at startup, instead of per request.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	platform, err := supabase.NewClient(cfg.Platform, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create platform client: %w", err)
	}

	profileStore := postgres.NewPostgresProfileStore(db, logger)

	tokenVerifier, err := auth.NewTokenVerifier(cfg.Platform)
	if err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}

	cookieManager := auth.NewCookieManager(cfg.Auth, cfg.Server.IsProduction())

	signupService, err := signup.NewService(
		profileStore,
		platform,
		platform,
		signup.Config{
			Bucket:      cfg.Platform.StorageBucket,
			CallbackURL: cfg.Auth.SiteURL + "/auth/callback",
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create signup service: %w", err)
	}

	return &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		profileStore:  profileStore,
		platform:      platform,
		tokenVerifier: tokenVerifier,
		cookieManager: cookieManager,
		signupService: signupService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
