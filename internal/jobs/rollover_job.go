package jobs

import (
	"context"

	"service-motorizado/internal/logx"
)

// RolloverJob drops daily statistics of past days.
type RolloverJob struct {
	stats  statsPruner
	logger logx.Logger
}

// NewRolloverJob creates a RolloverJob.
func NewRolloverJob(stats statsPruner, logger logx.Logger) *RolloverJob {
	return &RolloverJob{
		stats:  stats,
		logger: logger.With(logx.String("component", "rollover_job")),
	}
}

// Run prunes every day before today.
func (j *RolloverJob) Run(context.Context) {
	today := j.stats.Today()
	n := j.stats.PruneBefore(today)
	j.logger.Info("statistics rolled over",
		logx.Event("statistics_rollover"),
		logx.String("day", today),
		logx.Int("pruned", n),
	)
}
