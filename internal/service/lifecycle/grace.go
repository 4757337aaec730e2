package lifecycle

import (
	"time"

	"service-motorizado/internal/domain"
)

// Grace holds how long a terminal assignment stays visible before the sweep removes it.
type Grace struct {
	Reject   time.Duration
	Complete time.Duration
	Cancel   time.Duration
}

// For returns the grace interval of a terminal status.
func (g Grace) For(status domain.AssignmentStatus) time.Duration {
	switch status {
	case domain.AssignmentRejected:
		return g.Reject
	case domain.AssignmentCompleted:
		return g.Complete
	case domain.AssignmentCancelled:
		return g.Cancel
	default:
		return 0
	}
}
