package config

import "time"

const (
	defaultPort            = 8080
	defaultEnv             = "development"
	defaultShutdownTimeout = 10 * time.Second
)

var defaultLog = Log{
	Backend: "slog",
	Level:   "info",
}

var defaultLatency = Latency{
	Fetch:    300 * time.Millisecond,
	Accept:   400 * time.Millisecond,
	Reject:   500 * time.Millisecond,
	Status:   400 * time.Millisecond,
	Complete: time.Second,
	SignIn:   500 * time.Millisecond,
}

var defaultLifecycle = Lifecycle{
	RejectGrace:   500 * time.Millisecond,
	CompleteGrace: time.Second,
	CancelGrace:   time.Second,
	SweepSchedule: "@every 1s",
}

var defaultSession = Session{
	Secret:        "dev-secret-change-me",
	TTL:           24 * time.Hour,
	AutoProvision: true,
}

var defaultStats = Stats{
	TimeZone:         "America/Bogota",
	RolloverSchedule: "0 0 * * *",
}

var defaultKafka = Kafka{
	GroupID: "service-motorizado",
	Topic:   "dispatch.assignments",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultLog returns the default logging settings.
func DefaultLog() Log {
	return defaultLog
}

// DefaultLatency returns the default latency floors.
func DefaultLatency() Latency {
	return defaultLatency
}

// DefaultLifecycle returns the default grace intervals and sweep schedule.
func DefaultLifecycle() Lifecycle {
	return defaultLifecycle
}

// DefaultSession returns the default session settings.
func DefaultSession() Session {
	return defaultSession
}

// DefaultStats returns the default statistics settings.
func DefaultStats() Stats {
	return defaultStats
}

// DefaultKafka returns the default Kafka settings. Brokers are empty, so the consumer is off.
func DefaultKafka() Kafka {
	return defaultKafka
}
