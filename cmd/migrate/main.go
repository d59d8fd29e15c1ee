// Command migrate applies the bundled schema migrations to DATABASE_URL.
// Applied migrations are skipped, so running it twice is harmless.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/adoption-stats/internal/adapter/postgres"
	"github.com/heartmarshall/adoption-stats/internal/app"
	"github.com/heartmarshall/adoption-stats/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied", slog.Int("applied", applied))
}
