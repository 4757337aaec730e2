package lifecycle

import (
	"time"

	"service-motorizado/internal/domain"
)

type assignmentStore interface {
	ListActive(courierID string) []domain.Assignment
	Get(assignmentID string) (domain.Assignment, error)
	Apply(assignmentID string, mutation func(*domain.Assignment) error) (domain.Assignment, error)
	UpdateOrders(courierID, orderID string, mutation func(*domain.Order)) ([]domain.Assignment, error)
	SweepTerminal(now time.Time, grace func(domain.AssignmentStatus) time.Duration) []string
}

type historyStore interface {
	Append(r domain.DeliveryRecord) error
	List(courierID string, limit, offset *int) []domain.DeliveryRecord
	Delivered(courierID, assignmentID string) bool
	Discard(courierID, recordID string) error
}

type statsAggregator interface {
	GetToday(courierID string) (domain.DailyStatistics, error)
	RecordCompletion(courierID string, c domain.Completion) (domain.DailyStatistics, error)
}

// Recorder receives lifecycle counters.
type Recorder interface {
	Transition(name string)
	Delivered(earned float64)
}

type nopRecorder struct{}

func (nopRecorder) Transition(string) {}
func (nopRecorder) Delivered(float64) {}
