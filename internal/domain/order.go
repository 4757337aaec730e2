package domain

import "time"

type (
	// OrderStatus represents the delivery lifecycle of an order.
	OrderStatus string
	// OrderPriority represents how urgently an order must be delivered.
	OrderPriority string
)

// Address is a street address with an optional landmark reference.
type Address struct {
	Line      string
	Reference string
}

// Order represents a customer's delivery request.
type Order struct {
	ID               string
	Number           string
	CustomerName     string
	CustomerPhone    string
	Pickup           Address
	DropOff          Address
	Description      string
	ItemValue        float64
	DeliveryFee      float64
	PaymentMethod    string
	Notes            string
	Priority         OrderPriority
	Status           OrderStatus
	EstimatedMinutes int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
