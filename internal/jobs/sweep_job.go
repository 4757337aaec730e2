package jobs

import (
	"context"

	"service-motorizado/internal/logx"
)

// SweepJob removes terminal assignments past their grace interval and forgets expired revoked sessions.
type SweepJob struct {
	assignments sweeper
	sessions    revocationPruner
	metrics     sweepRecorder
	logger      logx.Logger
}

// NewSweepJob creates a SweepJob.
func NewSweepJob(assignments sweeper, sessions revocationPruner, metrics sweepRecorder, logger logx.Logger) *SweepJob {
	return &SweepJob{
		assignments: assignments,
		sessions:    sessions,
		metrics:     metrics,
		logger:      logger.With(logx.String("component", "sweep_job")),
	}
}

// Run performs one sweep.
func (j *SweepJob) Run(ctx context.Context) {
	removed := j.assignments.Sweep(ctx)
	if n := len(removed); n > 0 {
		j.metrics.Swept(n)
		j.logger.Debug("assignments removed", logx.Any("assignment_ids", removed))
	}
	if j.sessions != nil {
		if n := j.sessions.PruneRevoked(); n > 0 {
			j.logger.Debug("revoked sessions pruned", logx.Int("count", n))
		}
	}
}
