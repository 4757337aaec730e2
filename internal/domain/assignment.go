package domain

import "time"

// AssignmentStatus represents the courier's response lifecycle of an assignment.
type AssignmentStatus string

// Assignment binds one Order to one courier.
// RespondedAt, CompletedAt and TerminalAt are nil until the matching transition happens.
type Assignment struct {
	ID          string
	CourierID   string
	Order       Order
	Status      AssignmentStatus
	AssignedAt  time.Time
	RespondedAt *time.Time
	CompletedAt *time.Time
	Notes       string
	// TerminalAt is when the assignment reached a terminal status; the sweep removes it after a grace interval.
	TerminalAt *time.Time
}

// OrderID returns the id of the linked order.
func (a Assignment) OrderID() string {
	return a.Order.ID
}
