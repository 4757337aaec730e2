package app

import (
	"fmt"

	"service-motorizado/internal/config"
	"service-motorizado/internal/logx"
	"service-motorizado/internal/repository"
	"service-motorizado/internal/seed"
	"service-motorizado/internal/service/statistics"
)

// seedFunc applies fixtures before the server starts accepting requests.
type seedFunc func() error

func newSeedFunc(
	cfg *config.Config,
	couriers *repository.CourierStore,
	assignments *repository.AssignmentStore,
	history *repository.HistoryStore,
	stats *statistics.Aggregator,
	logger logx.Logger,
) seedFunc {
	return func() error {
		return applySeed(cfg, couriers, assignments, history, stats, logger)
	}
}

// applySeed loads the configured fixture file into the stores. No file configured is not an error.
func applySeed(
	cfg *config.Config,
	couriers *repository.CourierStore,
	assignments *repository.AssignmentStore,
	history *repository.HistoryStore,
	stats *statistics.Aggregator,
	logger logx.Logger,
) error {
	if cfg.Seed.File == "" {
		return nil
	}
	f, err := seed.Load(cfg.Seed.File)
	if err != nil {
		return err
	}
	if err := seed.Apply(f, seed.Targets{
		Couriers:    couriers,
		Assignments: assignments,
		History:     history,
		Stats:       stats,
	}, logger.With(logx.String("file", cfg.Seed.File))); err != nil {
		return fmt.Errorf("apply seed %q: %w", cfg.Seed.File, err)
	}
	return nil
}
