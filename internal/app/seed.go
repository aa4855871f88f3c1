package app

import (
	"context"
	"os"
	"strconv"

	"github.com/pharod/boltnew-company-timeline/internal/event"
	"github.com/pharod/boltnew-company-timeline/internal/sample"
	"github.com/pharod/boltnew-company-timeline/internal/shared/connection"
	"github.com/pharod/boltnew-company-timeline/internal/shared/counter"

	"go.uber.org/zap"
)

// RunSeed generates a reproducible historical event log and loads it into
// the database. SEED overrides the default random seed so distinct sample
// sets can be produced on demand.
func RunSeed() error {
	logger := zap.L().Named("app.seed")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := migrate(gormDB); err != nil {
		return err
	}

	cfg := sample.DefaultConfig()
	if raw := os.Getenv("SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}

	generated := sample.NewGenerator(cfg).Generate()
	logger.Info("sample log generated", zap.Int("events", len(generated)))

	ctx := context.Background()
	eventRepo := event.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)

	for _, ev := range generated {
		// Seq comes from the shared counter so later API appends continue
		// the sequence without colliding.
		seq, err := counterRepo.GetNextValue(ctx, "timeline_event_seq")
		if err != nil {
			return err
		}
		ev.Seq = seq

		rec := event.RecordFromDomain(ev)
		if err := eventRepo.Create(ctx, &rec); err != nil {
			return err
		}
	}

	logger.Info("sample log persisted", zap.Int("events", len(generated)))
	return nil
}
