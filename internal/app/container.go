package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"service-motorizado/internal/clock"
	"service-motorizado/internal/config"
	"service-motorizado/internal/http/handlers"
	mw "service-motorizado/internal/http/middleware"
	"service-motorizado/internal/http/router"
	"service-motorizado/internal/jobs"
	"service-motorizado/internal/latency"
	"service-motorizado/internal/logx"
	"service-motorizado/internal/metrics"
	"service-motorizado/internal/repository"
	"service-motorizado/internal/service/dispatch"
	"service-motorizado/internal/service/lifecycle"
	"service-motorizado/internal/service/session"
	"service-motorizado/internal/service/statistics"
	"service-motorizado/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		logFatalf:  log.Fatalf,
	}
}

// WithConfigLoader sets the configuration source
func (b *ContainerBuilder) WithConfigLoader(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStores(container); err != nil {
		return nil, fmt.Errorf("stores: %w", err)
	}
	if err := registerServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	if err := container.Provide(newSeedFunc); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if err := registerJobs(container); err != nil {
		return nil, fmt.Errorf("jobs: %w", err)
	}
	if err := registerKafka(container); err != nil {
		return nil, fmt.Errorf("kafka: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		clock.New,
		newRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
	)
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func registerStores(container *dig.Container) error {
	return provideAll(container,
		repository.NewAssignmentStore,
		repository.NewHistoryStore,
		repository.NewCourierStore,
		func(cfg *config.Config, c clock.Clock, logger logx.Logger) *statistics.Aggregator {
			return statistics.NewAggregator(c, cfg.Stats.Location, logger)
		},
	)
}

func newFloor(cfg *config.Config, c clock.Clock) *latency.Floor {
	l := cfg.Latency
	return latency.NewFloor(c, map[latency.Op]time.Duration{
		latency.OpFetch:    l.Fetch,
		latency.OpAccept:   l.Accept,
		latency.OpReject:   l.Reject,
		latency.OpStatus:   l.Status,
		latency.OpComplete: l.Complete,
		latency.OpSignIn:   l.SignIn,
	})
}

func newGrace(cfg *config.Config) lifecycle.Grace {
	return lifecycle.Grace{
		Reject:   cfg.Lifecycle.RejectGrace,
		Complete: cfg.Lifecycle.CompleteGrace,
		Cancel:   cfg.Lifecycle.CancelGrace,
	}
}

type lifecycleIn struct {
	dig.In

	Store   *repository.AssignmentStore
	History *repository.HistoryStore
	Stats   *statistics.Aggregator
	Floor   *latency.Floor
	Grace   lifecycle.Grace
	Clock   clock.Clock
	Logger  logx.Logger
	Metrics *metrics.Lifecycle
}

func newLifecycleService(in lifecycleIn) *lifecycle.Service {
	return lifecycle.NewService(in.Store, in.History, in.Stats, in.Floor, in.Grace, in.Clock, in.Logger, in.Metrics)
}

func newSessionService(
	cfg *config.Config,
	couriers *repository.CourierStore,
	floor *latency.Floor,
	c clock.Clock,
	logger logx.Logger,
) (*session.Service, error) {
	return session.NewService(couriers, session.Config{
		Secret:        cfg.Session.Secret,
		TTL:           cfg.Session.TTL,
		AutoProvision: cfg.Session.AutoProvision,
	}, floor, c, logger)
}

func newDispatchProcessor(
	store *repository.AssignmentStore,
	lc *lifecycle.Service,
	c clock.Clock,
	logger logx.Logger,
	m *metrics.Dispatch,
) *dispatch.Processor {
	return dispatch.NewProcessor(store, lc, c, logger, m)
}

func registerServices(container *dig.Container) error {
	return provideAll(container,
		metrics.NewLifecycle,
		metrics.NewDispatch,
		newFloor,
		newGrace,
		newLifecycleService,
		newSessionService,
		newDispatchProcessor,
	)
}

type routerIn struct {
	dig.In

	Logger      logx.Logger
	Base        *handlers.Handlers
	Assignments *handlers.AssignmentHandler
	Deliveries  *handlers.DeliveryHandler
	Session     *handlers.SessionHandler
	Auth        mw.Authenticator
	Metrics     *metrics.HTTP
	Gatherer    prometheus.Gatherer
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:      in.Logger,
		Base:        in.Base,
		Assignments: in.Assignments,
		Deliveries:  in.Deliveries,
		Session:     in.Session,
		Auth:        in.Auth,
		Metrics:     in.Metrics,
		Gatherer:    in.Gatherer,
	})
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		metrics.NewHTTP,
		func(s *lifecycle.Service) handlers.LifecycleUsecase { return s },
		func(s *session.Service) handlers.SessionUsecase { return s },
		func(s *session.Service) mw.Authenticator { return s },
		handlers.New,
		handlers.NewAssignmentHandler,
		handlers.NewDeliveryHandler,
		handlers.NewSessionHandler,
		newRouter,
		serverProvider,
	)
}

func registerJobs(container *dig.Container) error {
	return provideAll(container,
		func(lc *lifecycle.Service, s *session.Service, m *metrics.Lifecycle, logger logx.Logger) *jobs.SweepJob {
			return jobs.NewSweepJob(lc, s, m, logger)
		},
		func(stats *statistics.Aggregator, logger logx.Logger) *jobs.RolloverJob {
			return jobs.NewRolloverJob(stats, logger)
		},
		func(cfg *config.Config, sweep *jobs.SweepJob, rollover *jobs.RolloverJob, logger logx.Logger) *jobs.JobManager {
			return jobs.NewJobManager(sweep, rollover, jobs.Schedules{
				Sweep:    cfg.Lifecycle.SweepSchedule,
				Rollover: cfg.Stats.RolloverSchedule,
			}, cfg.Stats.Location, logger)
		},
	)
}

func registerKafka(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger, p *dispatch.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, p.Handle)
		},
	)
}
