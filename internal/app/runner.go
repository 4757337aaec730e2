package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/dig"

	"service-motorizado/internal/config"
	"service-motorizado/internal/jobs"
	"service-motorizado/internal/logx"
	"service-motorizado/internal/transport/kafka"
)

const defaultShutdownTimeout = 10 * time.Second

// Runner runs the service using a built container
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun runs the service and panics on a failure that is not a requested shutdown
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		panic(err)
	}
}

type runIn struct {
	dig.In

	Ctx      context.Context
	Config   *config.Config
	Logger   logx.Logger
	Server   *http.Server
	Jobs     *jobs.JobManager
	Consumer *kafka.Consumer `optional:"true"`
	Seed     seedFunc
}

func run(container *dig.Container) error {
	return container.Invoke(serve)
}

func serve(in runIn) error {
	defer func() { _ = in.Logger.Sync() }()

	if err := in.Seed(); err != nil {
		return err
	}
	if err := in.Jobs.StartAll(); err != nil {
		return err
	}

	errCh := make(chan error, 2)
	startServer(in.Server, in.Logger, errCh)
	if in.Consumer != nil {
		go func() {
			if err := in.Consumer.Run(in.Ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- fmt.Errorf("kafka consumer: %w", err)
			}
		}()
		in.Logger.Info("dispatch consumer started")
	}

	var runErr error
	select {
	case <-in.Ctx.Done():
		runErr = in.Ctx.Err()
		in.Logger.Info("shutting down service-motorizado...")
	case runErr = <-errCh:
		in.Logger.Error("service failed, shutting down", logx.Err(runErr))
	}

	timeout := in.Config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	gracefulShutdown(in.Server, in.Logger, timeout)
	stopJobs(in.Jobs, timeout)
	closeResources(in.Consumer, in.Logger)
	return runErr
}

func startServer(server *http.Server, logger logx.Logger, errCh chan<- error) {
	go func() {
		logger.Info("service-motorizado listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen: %w", err)
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func stopJobs(jm *jobs.JobManager, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	jm.StopAll(ctx)
}

func closeResources(consumer *kafka.Consumer, logger logx.Logger) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
}
