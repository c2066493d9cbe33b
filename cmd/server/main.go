// Package main implements the entry point for the community API server,
// which handles registration with avatar upload, login with session
// cookies, and public profile lookups against the hosted backend platform.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/josanism/community-api/internal/config"
	"github.com/josanism/community-api/internal/platform/logger"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply pending database migrations and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"env", cfg.Server.Env)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("database setup failed", "error", err)
		os.Exit(1)
	}

	if *migrate {
		if err := runMigrations(db, appLogger); err != nil {
			appLogger.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		if err := db.Close(); err != nil {
			appLogger.Error("closing database failed", "error", err)
		}
		return
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		appLogger.Error("application setup failed", "error", err)
		os.Exit(1)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		appLogger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
