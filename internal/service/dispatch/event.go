package dispatch

import (
	"time"

	"service-motorizado/internal/domain"
)

// Event is a single dispatch decision for a courier.
type Event struct {
	AssignmentID string
	CourierID    string
	Status       string
	Reason       string
	Order        domain.Order
	AssignedAt   time.Time
}
