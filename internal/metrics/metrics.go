package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Lifecycle counts assignment transitions and completed deliveries.
type Lifecycle struct {
	transitions *prometheus.CounterVec
	deliveries  prometheus.Counter
	earned      prometheus.Counter
	swept       prometheus.Counter
}

// NewLifecycle creates lifecycle counters and registers them in reg.
func NewLifecycle(reg prometheus.Registerer) (*Lifecycle, error) {
	m := &Lifecycle{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "assignment_transitions_total",
			Help: "Total number of applied assignment and order transitions",
		}, []string{"transition"}),
		deliveries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deliveries_completed_total",
			Help: "Total number of completed deliveries",
		}),
		earned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deliveries_earned_total",
			Help: "Sum of value earned by completed deliveries",
		}),
		swept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "assignments_swept_total",
			Help: "Total number of terminal assignments removed after their grace interval",
		}),
	}
	if err := register(reg, m.transitions, m.deliveries, m.earned, m.swept); err != nil {
		return nil, err
	}
	return m, nil
}

// Transition counts one applied transition.
func (m *Lifecycle) Transition(name string) {
	m.transitions.WithLabelValues(name).Inc()
}

// Delivered counts one completed delivery worth earned.
func (m *Lifecycle) Delivered(earned float64) {
	m.deliveries.Inc()
	m.earned.Add(earned)
}

// Swept counts removed terminal assignments.
func (m *Lifecycle) Swept(n int) {
	m.swept.Add(float64(n))
}

// Dispatch counts dispatch events consumed from the broker.
type Dispatch struct {
	events *prometheus.CounterVec
}

// NewDispatch creates dispatch counters and registers them in reg.
func NewDispatch(reg prometheus.Registerer) (*Dispatch, error) {
	m := &Dispatch{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_events_total",
			Help: "Total number of dispatch events by status and result",
		}, []string{"status", "result"}),
	}
	if err := register(reg, m.events); err != nil {
		return nil, err
	}
	return m, nil
}

// Event counts one handled dispatch event.
func (m *Dispatch) Event(status, result string) {
	m.events.WithLabelValues(status, result).Inc()
}

// HTTP holds request counters used by the observability middleware.
type HTTP struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewHTTP creates HTTP request metrics and registers them in reg.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	m := &HTTP{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
	if err := register(reg, m.Requests, m.Duration); err != nil {
		return nil, err
	}
	return m, nil
}

func register(reg prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("register metric: %w", err)
		}
	}
	return nil
}
