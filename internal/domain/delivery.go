package domain

import "time"

// DeliveryRecord is the immutable fact of a completed delivery.
type DeliveryRecord struct {
	ID              string
	CourierID       string
	OrderID         string
	AssignmentID    string
	OrderNumber     string
	TimeTotal       int
	Distance        *float64
	ValueEarned     float64
	CustomerRating  *int
	CustomerComment string
	DeliveredAt     time.Time
}

// Outcome carries what the courier reports when completing a delivery.
// Pointer fields distinguish "missing" from zero.
type Outcome struct {
	TimeTotal       *int
	ValueEarned     *float64
	Distance        *float64
	CustomerRating  *int
	CustomerComment string
}
