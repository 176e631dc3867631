// Command prune deletes stored languages older than
// database.retention_days, together with their lexemes. It is intended to
// be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/phonogen/internal/adapter/postgres"
	lexiconrepo "github.com/heartmarshall/phonogen/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/phonogen/internal/app"
	"github.com/heartmarshall/phonogen/internal/config"
	"github.com/heartmarshall/phonogen/internal/service/lexicon"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Database.Enabled = true
	if err := cfg.Validate(); err != nil {
		log.Fatalf("validate config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := lexicon.NewService(logger, lexiconrepo.New(pool), postgres.NewTxManager(pool), nil)

	retention := time.Duration(cfg.Database.RetentionDays) * 24 * time.Hour
	if _, err := svc.PruneLanguages(ctx, retention, time.Now().UTC()); err != nil {
		logger.Error("prune failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}
}
