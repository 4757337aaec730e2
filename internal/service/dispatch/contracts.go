//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch_test

package dispatch

import (
	"context"

	"service-motorizado/internal/domain"
)

// AssignmentPort abstracts the store operations dispatch needs to hand out orders.
type AssignmentPort interface {
	Insert(a domain.Assignment) error
	ActiveFor(orderID string) (domain.Assignment, bool)
}

// CancelPort withdraws an assignment from its courier.
type CancelPort interface {
	Cancel(ctx context.Context, assignmentID, reason string) (domain.Assignment, error)
}

// Recorder receives per-event results.
type Recorder interface {
	Event(status, result string)
}

type nopRecorder struct{}

func (nopRecorder) Event(string, string) {}
