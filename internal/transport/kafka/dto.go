package kafka

import (
	"strings"
	"time"

	"service-motorizado/internal/domain"
	"service-motorizado/internal/service/dispatch"
)

// EventDTO is the wire form of a dispatch.Event
type EventDTO struct {
	AssignmentID string    `json:"assignment_id"`
	CourierID    string    `json:"courier_id"`
	Status       string    `json:"status"`
	Reason       string    `json:"reason"`
	Order        OrderDTO  `json:"order"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// OrderDTO is the wire form of a dispatched order
type OrderDTO struct {
	ID               string     `json:"id"`
	Number           string     `json:"number"`
	CustomerName     string     `json:"customer_name"`
	CustomerPhone    string     `json:"customer_phone"`
	Pickup           AddressDTO `json:"pickup"`
	DropOff          AddressDTO `json:"drop_off"`
	Description      string     `json:"description"`
	ItemValue        float64    `json:"item_value"`
	DeliveryFee      float64    `json:"delivery_fee"`
	PaymentMethod    string     `json:"payment_method"`
	Notes            string     `json:"notes"`
	Priority         string     `json:"priority"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	CreatedAt        time.Time  `json:"created_at"`
}

// AddressDTO is the wire form of domain.Address
type AddressDTO struct {
	Line      string `json:"line"`
	Reference string `json:"reference"`
}

// ToDomain converts EventDTO to dispatch.Event
func ToDomain(dto EventDTO) (dispatch.Event, error) {
	status := strings.ToLower(strings.TrimSpace(dto.Status))
	if status == "" {
		return dispatch.Event{}, invalid("status", "empty")
	}
	assignmentID := strings.TrimSpace(dto.AssignmentID)
	orderID := strings.TrimSpace(dto.Order.ID)
	if assignmentID == "" && orderID == "" {
		return dispatch.Event{}, invalid("assignment_id", "empty assignment_id and order.id")
	}

	priority := domain.OrderPriority(strings.ToLower(strings.TrimSpace(dto.Order.Priority)))
	if priority != "" && !priority.Valid() {
		return dispatch.Event{}, invalid("order.priority", "unknown value "+dto.Order.Priority)
	}

	return dispatch.Event{
		AssignmentID: assignmentID,
		CourierID:    strings.TrimSpace(dto.CourierID),
		Status:       status,
		Reason:       dto.Reason,
		AssignedAt:   dto.AssignedAt,
		Order: domain.Order{
			ID:               orderID,
			Number:           dto.Order.Number,
			CustomerName:     dto.Order.CustomerName,
			CustomerPhone:    dto.Order.CustomerPhone,
			Pickup:           domain.Address(dto.Order.Pickup),
			DropOff:          domain.Address(dto.Order.DropOff),
			Description:      dto.Order.Description,
			ItemValue:        dto.Order.ItemValue,
			DeliveryFee:      dto.Order.DeliveryFee,
			PaymentMethod:    dto.Order.PaymentMethod,
			Notes:            dto.Order.Notes,
			Priority:         priority,
			EstimatedMinutes: dto.Order.EstimatedMinutes,
			CreatedAt:        dto.Order.CreatedAt,
		},
	}, nil
}
