package handlers

import "time"

type addressDTO struct {
	Line      string `json:"line"`
	Reference string `json:"reference,omitempty"`
}

type orderDTO struct {
	ID               string     `json:"id"`
	Number           string     `json:"number"`
	CustomerName     string     `json:"customer_name"`
	CustomerPhone    string     `json:"customer_phone"`
	Pickup           addressDTO `json:"pickup"`
	DropOff          addressDTO `json:"drop_off"`
	Description      string     `json:"description,omitempty"`
	ItemValue        float64    `json:"item_value"`
	DeliveryFee      float64    `json:"delivery_fee"`
	PaymentMethod    string     `json:"payment_method"`
	Notes            string     `json:"notes,omitempty"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type assignmentDTO struct {
	ID          string     `json:"id"`
	CourierID   string     `json:"courier_id"`
	Status      string     `json:"status"`
	AssignedAt  time.Time  `json:"assigned_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Order       orderDTO   `json:"order"`
}

type deliveryDTO struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	AssignmentID    string    `json:"assignment_id"`
	OrderNumber     string    `json:"order_number,omitempty"`
	TimeTotal       int       `json:"time_total"`
	Distance        *float64  `json:"distance,omitempty"`
	ValueEarned     float64   `json:"value_earned"`
	CustomerRating  *int      `json:"customer_rating,omitempty"`
	CustomerComment string    `json:"customer_comment,omitempty"`
	DeliveredAt     time.Time `json:"delivered_at"`
}

type statisticsDTO struct {
	CourierID      string  `json:"courier_id"`
	Day            string  `json:"day"`
	TotalDelivered int     `json:"total_delivered"`
	TotalEarned    float64 `json:"total_earned"`
	TotalWorkTime  int     `json:"total_work_time"`
	TotalDistance  float64 `json:"total_distance"`
	AverageRating  float64 `json:"average_rating"`
}

type courierDTO struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Email         string  `json:"email,omitempty"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone,omitempty"`
	Document      string  `json:"document,omitempty"`
	VehiclePlate  string  `json:"vehicle_plate,omitempty"`
	VehicleType   string  `json:"vehicle_type,omitempty"`
	Availability  string  `json:"availability"`
	Rating        float64 `json:"rating"`
	TotalDelivery int     `json:"total_delivery"`
	Active        bool    `json:"active"`
}

type sessionDTO struct {
	Token     string     `json:"token"`
	Courier   courierDTO `json:"courier"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type availabilityRequest struct {
	Status string `json:"status"`
}

type rejectRequest struct {
	Notes string `json:"notes"`
}

type completeRequest struct {
	TimeTotal       *int     `json:"time_total"`
	ValueEarned     *float64 `json:"value_earned"`
	Distance        *float64 `json:"distance"`
	CustomerRating  *int     `json:"customer_rating"`
	CustomerComment string   `json:"customer_comment"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}
