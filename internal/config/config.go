package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	// zone database for STATS_TIMEZONE on hosts without one
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port            int
	Env             string
	ShutdownTimeout time.Duration

	Log       Log
	Latency   Latency
	Lifecycle Lifecycle
	Session   Session
	Stats     Stats
	Kafka     Kafka
	Seed      Seed
}

// Log selects the logging backend and level.
type Log struct {
	// Backend is "slog" or "zap".
	Backend string
	Level   string
}

// Latency holds the minimum perceived latency per operation.
type Latency struct {
	Fetch    time.Duration
	Accept   time.Duration
	Reject   time.Duration
	Status   time.Duration
	Complete time.Duration
	SignIn   time.Duration
}

// Lifecycle holds how long terminal assignments stay visible and how often they are swept.
type Lifecycle struct {
	RejectGrace   time.Duration
	CompleteGrace time.Duration
	CancelGrace   time.Duration
	SweepSchedule string
}

// Session holds token settings.
type Session struct {
	Secret        string
	TTL           time.Duration
	AutoProvision bool
}

// Stats holds statistics day boundaries.
type Stats struct {
	TimeZone         string
	Location         *time.Location
	RolloverSchedule string
}

// Kafka holds the dispatch consumer settings. Empty Brokers disable the consumer.
type Kafka struct {
	Brokers []string
	GroupID string
	Topic   string
}

// Seed points at an optional fixture file.
type Seed struct {
	File string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:            defaultPort,
		Env:             defaultEnv,
		ShutdownTimeout: defaultShutdownTimeout,
		Log:             DefaultLog(),
		Latency:         DefaultLatency(),
		Lifecycle:       DefaultLifecycle(),
		Session:         DefaultSession(),
		Stats:           DefaultStats(),
		Kafka:           DefaultKafka(),
	}

	e := envReader{}
	cfg.Port = e.int("PORT", cfg.Port)
	cfg.Env = e.str("APP_ENV", cfg.Env)
	cfg.ShutdownTimeout = e.duration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	cfg.Log.Backend = strings.ToLower(e.str("LOG_BACKEND", cfg.Log.Backend))
	cfg.Log.Level = strings.ToLower(e.str("LOG_LEVEL", cfg.Log.Level))

	cfg.Latency.Fetch = e.duration("LATENCY_FETCH", cfg.Latency.Fetch)
	cfg.Latency.Accept = e.duration("LATENCY_ACCEPT", cfg.Latency.Accept)
	cfg.Latency.Reject = e.duration("LATENCY_REJECT", cfg.Latency.Reject)
	cfg.Latency.Status = e.duration("LATENCY_STATUS", cfg.Latency.Status)
	cfg.Latency.Complete = e.duration("LATENCY_COMPLETE", cfg.Latency.Complete)
	cfg.Latency.SignIn = e.duration("LATENCY_SIGN_IN", cfg.Latency.SignIn)
	if e.bool("LATENCY_DISABLED", false) {
		cfg.Latency = Latency{}
	}

	cfg.Lifecycle.RejectGrace = e.duration("REJECT_GRACE", cfg.Lifecycle.RejectGrace)
	cfg.Lifecycle.CompleteGrace = e.duration("COMPLETE_GRACE", cfg.Lifecycle.CompleteGrace)
	cfg.Lifecycle.CancelGrace = e.duration("CANCEL_GRACE", cfg.Lifecycle.CancelGrace)
	cfg.Lifecycle.SweepSchedule = e.str("SWEEP_SCHEDULE", cfg.Lifecycle.SweepSchedule)

	cfg.Session.Secret = e.str("SESSION_SECRET", cfg.Session.Secret)
	cfg.Session.TTL = e.duration("SESSION_TTL", cfg.Session.TTL)
	cfg.Session.AutoProvision = e.bool("SESSION_AUTO_PROVISION", cfg.Session.AutoProvision)

	cfg.Stats.TimeZone = e.str("STATS_TIMEZONE", cfg.Stats.TimeZone)
	cfg.Stats.RolloverSchedule = e.str("STATS_ROLLOVER_SCHEDULE", cfg.Stats.RolloverSchedule)

	cfg.Kafka.Brokers = e.list("KAFKA_BROKERS", cfg.Kafka.Brokers)
	cfg.Kafka.GroupID = e.str("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.Topic = e.str("KAFKA_TOPIC", cfg.Kafka.Topic)

	cfg.Seed.File = e.str("SEED_FILE", cfg.Seed.File)

	if e.err != nil {
		return nil, e.err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	pflag.StringVar(&cfg.Log.Backend, "log-backend", cfg.Log.Backend, "log backend: slog or zap")
	pflag.StringVar(&cfg.Seed.File, "seed", cfg.Seed.File, "fixture file loaded at startup")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.Log.Backend {
	case "slog", "zap":
	default:
		return fmt.Errorf("invalid log backend: %q", c.Log.Backend)
	}
	for name, d := range map[string]time.Duration{
		"REJECT_GRACE":   c.Lifecycle.RejectGrace,
		"COMPLETE_GRACE": c.Lifecycle.CompleteGrace,
		"CANCEL_GRACE":   c.Lifecycle.CancelGrace,
	} {
		if d < 0 {
			return fmt.Errorf("invalid %s: %s", name, d)
		}
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("invalid SESSION_TTL: %s", c.Session.TTL)
	}
	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	loc, err := time.LoadLocation(c.Stats.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid STATS_TIMEZONE %q: %w", c.Stats.TimeZone, err)
	}
	c.Stats.Location = loc
	return nil
}

// envReader reads typed environment values and keeps the first parse error.
type envReader struct{ err error }

func (e *envReader) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (e *envReader) int(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return n
}

func (e *envReader) bool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return b
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return d
}

func (e *envReader) list(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (e *envReader) fail(key, value string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("invalid %s=%q: %w", key, value, err)
	}
}
