package domain

import (
	"fmt"

	"service-motorizado/internal/apperr"
)

// List of possible assignment statuses
const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentAccepted  AssignmentStatus = "accepted"
	AssignmentRejected  AssignmentStatus = "rejected"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentCancelled AssignmentStatus = "cancelled"
)

// List of possible order statuses
const (
	OrderPending   OrderStatus = "pending"
	OrderAssigned  OrderStatus = "assigned"
	OrderAccepted  OrderStatus = "accepted"
	OrderInTransit OrderStatus = "in_transit"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// List of possible order priorities
const (
	PriorityLow    OrderPriority = "low"
	PriorityNormal OrderPriority = "normal"
	PriorityHigh   OrderPriority = "high"
	PriorityUrgent OrderPriority = "urgent"
)

// List of possible courier availabilities
const (
	AvailabilityAvailable CourierAvailability = "available"
	AvailabilityBusy      CourierAvailability = "busy"
	AvailabilityOffline   CourierAvailability = "offline"
)

var allowedAssignmentStatuses = [...]AssignmentStatus{
	AssignmentPending, AssignmentAccepted, AssignmentRejected, AssignmentCompleted, AssignmentCancelled,
}

var allowedOrderStatuses = [...]OrderStatus{
	OrderPending, OrderAssigned, OrderAccepted, OrderInTransit, OrderDelivered, OrderCancelled,
}

var allowedPriorities = [...]OrderPriority{
	PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent,
}

var allowedAvailabilities = [...]CourierAvailability{
	AvailabilityAvailable, AvailabilityBusy, AvailabilityOffline,
}

// Valid checks if the AssignmentStatus is valid
func (s AssignmentStatus) Valid() bool {
	for _, v := range allowedAssignmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Active reports whether the assignment is still visible on the dashboard.
func (s AssignmentStatus) Active() bool {
	return s == AssignmentPending || s == AssignmentAccepted
}

// Terminal reports whether no further transition is possible.
func (s AssignmentStatus) Terminal() bool {
	return s == AssignmentRejected || s == AssignmentCompleted || s == AssignmentCancelled
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the OrderPriority is valid
func (p OrderPriority) Valid() bool {
	for _, v := range allowedPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// Valid checks if the CourierAvailability is valid
func (a CourierAvailability) Valid() bool {
	for _, v := range allowedAvailabilities {
		if a == v {
			return true
		}
	}
	return false
}

// Assignment lifecycle:
//
//	pending ──accept──> accepted ──complete──> completed
//	   │                   │
//	   ├──reject──> rejected
//	   └───────────────────┴──cancel──> cancelled
//
// advance-status keeps the assignment accepted and only rewrites the order status.

// ValidateAccept checks that the assignment may be accepted.
func (s AssignmentStatus) ValidateAccept() error {
	return s.expect("accept", AssignmentPending)
}

// ValidateReject checks that the assignment may be rejected.
func (s AssignmentStatus) ValidateReject() error {
	return s.expect("reject", AssignmentPending)
}

// ValidateComplete checks that the assignment may be completed.
func (s AssignmentStatus) ValidateComplete() error {
	return s.expect("complete", AssignmentAccepted)
}

// ValidateCancel checks that dispatch may cancel the assignment.
func (s AssignmentStatus) ValidateCancel() error {
	return s.expect("cancel", AssignmentPending, AssignmentAccepted)
}

func (s AssignmentStatus) expect(op string, from ...AssignmentStatus) error {
	for _, f := range from {
		if s == f {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot %s from %q", apperr.ErrInvalidTransition, op, s)
}
