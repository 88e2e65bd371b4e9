// Command migrate applies pending goose migrations to the configured
// database.
//
// Usage:
//
//	migrate
//
// Requires DATABASE_DSN (or database.dsn in the config file).
package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql

	"github.com/heartmarshall/zakat-tracker/internal/app"
	"github.com/heartmarshall/zakat-tracker/internal/config"
	"github.com/heartmarshall/zakat-tracker/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	results, err := migrations.Up(ctx, db)
	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	if err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		db.Close()
		os.Exit(1)
	}

	logger.Info("migrations up to date", slog.Int("applied", len(results)))
}
