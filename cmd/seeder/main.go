// Command seeder loads an adoption statistics dataset (YAML) into the
// database. The dataset is read from a local file or an s3://bucket/key
// URI. It is intended to be run offline, not as part of the server.
//
// Flags:
//
//	--source   dataset path or s3:// URI (default: seed.source from config)
//	--migrate  apply schema migrations before loading
//	--dry-run  parse the dataset without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/adoption-stats/internal/adapter/postgres"
	"github.com/heartmarshall/adoption-stats/internal/adapter/postgres/seed"
	"github.com/heartmarshall/adoption-stats/internal/adapter/s3"
	"github.com/heartmarshall/adoption-stats/internal/app"
	"github.com/heartmarshall/adoption-stats/internal/config"
)

func main() {
	sourceFlag := flag.String("source", "", "dataset path or s3://bucket/key (default: seed.source from config)")
	migrateFlag := flag.Bool("migrate", false, "apply schema migrations before loading")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dataset without writing to DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	source := cfg.Seed.Source
	if *sourceFlag != "" {
		source = *sourceFlag
	}
	if source == "" {
		logger.Error("no dataset source: pass --source or set SEED_SOURCE")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	ds, err := readDataset(ctx, source, cfg.Seed.S3)
	if err != nil {
		logger.Error("read dataset", slog.String("source", source), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("dataset parsed",
		slog.String("source", source),
		slog.Int("years", len(ds.Years)),
		slog.Int("incoming", len(ds.Incoming)),
		slog.Int("incoming_by_state", len(ds.IncomingByState)),
		slog.Int("outgoing", len(ds.Outgoing)),
	)

	if *dryRunFlag {
		return
	}

	if *migrateFlag {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied", slog.Int("applied", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := seed.Load(ctx, pool, ds); err != nil {
		logger.Error("load dataset", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("dataset loaded")
}

func readDataset(ctx context.Context, source string, s3cfg config.S3Config) (seed.Dataset, error) {
	if !s3.IsURI(source) {
		return seed.ReadFile(source)
	}

	bucket, key, err := s3.ParseURI(source)
	if err != nil {
		return seed.Dataset{}, err
	}

	src, err := s3.New(ctx, s3cfg)
	if err != nil {
		return seed.Dataset{}, err
	}

	body, err := src.Open(ctx, bucket, key)
	if err != nil {
		return seed.Dataset{}, err
	}
	defer body.Close()

	return seed.Decode(body, source)
}
