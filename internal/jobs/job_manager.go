package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"service-motorizado/internal/logx"
)

// Schedules holds cron specs of the scheduled jobs.
type Schedules struct {
	Sweep    string
	Rollover string
}

// JobManager coordinates the scheduled jobs in one cron scheduler.
type JobManager struct {
	cron      *cron.Cron
	schedules Schedules
	sweep     *SweepJob
	rollover  *RolloverJob
	logger    logx.Logger
}

// NewJobManager creates a JobManager. Rollover specs are evaluated in loc.
func NewJobManager(sweep *SweepJob, rollover *RolloverJob, schedules Schedules, loc *time.Location, logger logx.Logger) *JobManager {
	if loc == nil {
		loc = time.UTC
	}
	cl := cronLogger{l: logger.With(logx.String("component", "cron"))}
	return &JobManager{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		schedules: schedules,
		sweep:     sweep,
		rollover:  rollover,
		logger:    logger,
	}
}

// StartAll registers every job and starts the scheduler.
func (jm *JobManager) StartAll() error {
	if _, err := jm.cron.AddFunc(jm.schedules.Sweep, func() { jm.sweep.Run(context.Background()) }); err != nil {
		return fmt.Errorf("failed to schedule sweep job %q: %w", jm.schedules.Sweep, err)
	}
	if _, err := jm.cron.AddFunc(jm.schedules.Rollover, func() { jm.rollover.Run(context.Background()) }); err != nil {
		return fmt.Errorf("failed to schedule rollover job %q: %w", jm.schedules.Rollover, err)
	}
	jm.cron.Start()
	jm.logger.Info("jobs started",
		logx.String("sweep", jm.schedules.Sweep),
		logx.String("rollover", jm.schedules.Rollover),
	)
	return nil
}

// StopAll stops the scheduler and waits for running jobs or ctx.
func (jm *JobManager) StopAll(ctx context.Context) {
	done := jm.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	jm.logger.Info("jobs stopped")
}

type cronLogger struct{ l logx.Logger }

func (c cronLogger) Info(msg string, kv ...any) {
	c.l.Debug(msg, pairs(kv)...)
}

func (c cronLogger) Error(err error, msg string, kv ...any) {
	c.l.Error(msg, append(pairs(kv), logx.Err(err))...)
}

func pairs(kv []any) []logx.Field {
	out := make([]logx.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, logx.Any(fmt.Sprint(kv[i]), kv[i+1]))
	}
	return out
}
