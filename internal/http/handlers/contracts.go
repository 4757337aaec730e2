//go:generate mockgen -source=contracts.go -destination=handlers_mocks_test.go -package=handlers_test

package handlers

import (
	"context"

	"service-motorizado/internal/domain"
)

// LifecycleUsecase is what the courier-facing endpoints need from the lifecycle service.
type LifecycleUsecase interface {
	ListActive(ctx context.Context, courierID string) ([]domain.Assignment, error)
	Get(ctx context.Context, courierID, assignmentID string) (domain.Assignment, error)
	Accept(ctx context.Context, courierID, assignmentID string) (domain.Assignment, error)
	Reject(ctx context.Context, courierID, assignmentID, notes string) (domain.Assignment, error)
	AdvanceOrderStatus(ctx context.Context, courierID, orderID string, status domain.OrderStatus) (domain.Order, error)
	Complete(ctx context.Context, courierID, assignmentID string, out domain.Outcome) (domain.DeliveryRecord, error)
	History(ctx context.Context, courierID string, limit, offset *int) ([]domain.DeliveryRecord, error)
	TodayStatistics(ctx context.Context, courierID string) (domain.DailyStatistics, error)
}

// SessionUsecase is what the session endpoints need from the session provider.
type SessionUsecase interface {
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	SignOut(ctx context.Context, token string) error
	Current(ctx context.Context, token string) (domain.Session, error)
	UpdateAvailability(ctx context.Context, courierID string, availability domain.CourierAvailability) (domain.Courier, error)
}
