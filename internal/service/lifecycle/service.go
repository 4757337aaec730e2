package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"service-motorizado/internal/apperr"
	"service-motorizado/internal/clock"
	"service-motorizado/internal/domain"
	"service-motorizado/internal/latency"
	"service-motorizado/internal/logx"
)

// Service enforces the assignment state machine and coordinates the store, the delivery
// history and the statistics aggregator.
type Service struct {
	store   assignmentStore
	history historyStore
	stats   statsAggregator
	floor   *latency.Floor
	grace   Grace
	clock   clock.Clock
	logger  logx.Logger
	metrics Recorder
	newID   func() string
}

// NewService creates a lifecycle Service.
func NewService(
	store assignmentStore,
	history historyStore,
	stats statsAggregator,
	floor *latency.Floor,
	grace Grace,
	c clock.Clock,
	logger logx.Logger,
	metrics Recorder,
) *Service {
	if floor == nil {
		floor = latency.None()
	}
	if c == nil {
		c = clock.New()
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		store:   store,
		history: history,
		stats:   stats,
		floor:   floor,
		grace:   grace,
		clock:   c,
		logger:  logger,
		metrics: metrics,
		newID:   uuid.NewString,
	}
}

// ListActive returns the courier's pending and accepted assignments, most recent first.
func (s *Service) ListActive(ctx context.Context, courierID string) ([]domain.Assignment, error) {
	defer s.floor.Hold(ctx, latency.OpFetch, s.floor.Start())

	courierID, err := requireID("courier id", courierID)
	if err != nil {
		return nil, err
	}
	return s.store.ListActive(courierID), nil
}

// Get returns one of the courier's assignments.
func (s *Service) Get(ctx context.Context, courierID, assignmentID string) (domain.Assignment, error) {
	defer s.floor.Hold(ctx, latency.OpFetch, s.floor.Start())

	a, err := s.store.Get(assignmentID)
	if err != nil {
		return domain.Assignment{}, err
	}
	if a.CourierID != courierID {
		return domain.Assignment{}, notOwned(assignmentID)
	}
	return a, nil
}

// Accept moves a pending assignment to accepted and the linked order to accepted.
func (s *Service) Accept(ctx context.Context, courierID, assignmentID string) (domain.Assignment, error) {
	defer s.floor.Hold(ctx, latency.OpAccept, s.floor.Start())

	a, err := s.transition(courierID, assignmentID, func(a *domain.Assignment, now time.Time) error {
		if err := a.Status.ValidateAccept(); err != nil {
			return err
		}
		a.Status = domain.AssignmentAccepted
		a.RespondedAt = &now
		a.Order.Status = domain.OrderAccepted
		a.Order.UpdatedAt = now
		return nil
	})
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("accept: %w", err)
	}

	s.metrics.Transition("accept")
	s.logger.Info("assignment accepted",
		logx.Event("assignment_accepted"),
		logx.String("courier_id", a.CourierID),
		logx.String("assignment_id", a.ID),
		logx.String("order_id", a.OrderID()),
	)
	return a, nil
}

// Reject marks a pending assignment as rejected. The order is left untouched; the
// assignment is removed by the sweep once the reject grace has elapsed.
func (s *Service) Reject(ctx context.Context, courierID, assignmentID, notes string) (domain.Assignment, error) {
	defer s.floor.Hold(ctx, latency.OpReject, s.floor.Start())

	a, err := s.transition(courierID, assignmentID, func(a *domain.Assignment, now time.Time) error {
		if err := a.Status.ValidateReject(); err != nil {
			return err
		}
		a.Status = domain.AssignmentRejected
		a.RespondedAt = &now
		a.TerminalAt = &now
		a.Notes = notes
		return nil
	})
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("reject: %w", err)
	}

	s.metrics.Transition("reject")
	s.logger.Info("assignment rejected",
		logx.Event("assignment_rejected"),
		logx.String("courier_id", a.CourierID),
		logx.String("assignment_id", a.ID),
		logx.String("order_id", a.OrderID()),
		logx.String("notes", notes),
		logx.Duration("grace", s.grace.Reject),
	)
	return a, nil
}

// AdvanceOrderStatus overwrites the status of an order linked to any of the courier's assignments.
// No transition validation is applied: any non-empty status is written as-is. Every assignment
// carries its own copy of the order; the returned order is the copy held by the active assignment
// when there is one.
func (s *Service) AdvanceOrderStatus(ctx context.Context, courierID, orderID string, status domain.OrderStatus) (domain.Order, error) {
	defer s.floor.Hold(ctx, latency.OpStatus, s.floor.Start())

	courierID, err := requireID("courier id", courierID)
	if err != nil {
		return domain.Order{}, err
	}
	orderID, err = requireID("order id", orderID)
	if err != nil {
		return domain.Order{}, err
	}
	status = domain.OrderStatus(strings.TrimSpace(string(status)))
	if status == "" {
		return domain.Order{}, fmt.Errorf("advance order status: %w: status is required", apperr.ErrValidation)
	}
	if !status.Valid() {
		s.logger.Warn("unknown order status written",
			logx.String("courier_id", courierID),
			logx.String("order_id", orderID),
			logx.String("status", string(status)),
		)
	}

	now := s.clock.Now()
	touched, err := s.store.UpdateOrders(courierID, orderID, func(o *domain.Order) {
		o.Status = status
		o.UpdatedAt = now
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("advance order status: %w", err)
	}

	s.metrics.Transition("advance_status")
	s.logger.Info("order status changed",
		logx.Event("order_status_changed"),
		logx.String("courier_id", courierID),
		logx.String("order_id", orderID),
		logx.String("status", string(status)),
	)
	return touched[0].Order, nil
}

// Complete finishes an accepted assignment: the store is updated first, then one delivery
// record is appended, then today's statistics are updated. If either later step fails the
// assignment is restored to its accepted state and no record is kept.
func (s *Service) Complete(ctx context.Context, courierID, assignmentID string, out domain.Outcome) (domain.DeliveryRecord, error) {
	defer s.floor.Hold(ctx, latency.OpComplete, s.floor.Start())

	if err := validateOutcome(out); err != nil {
		return domain.DeliveryRecord{}, fmt.Errorf("complete: %w", err)
	}

	var prev domain.Assignment
	a, err := s.transition(courierID, assignmentID, func(a *domain.Assignment, now time.Time) error {
		if err := a.Status.ValidateComplete(); err != nil {
			return err
		}
		if s.history.Delivered(a.CourierID, a.ID) {
			return fmt.Errorf("assignment %q: %w: delivery already recorded", a.ID, apperr.ErrConflict)
		}
		prev = *a
		a.Status = domain.AssignmentCompleted
		a.CompletedAt = &now
		a.TerminalAt = &now
		a.Order.Status = domain.OrderDelivered
		a.Order.UpdatedAt = now
		return nil
	})
	if err != nil {
		return domain.DeliveryRecord{}, fmt.Errorf("complete: %w", err)
	}

	rec := domain.DeliveryRecord{
		ID:              s.newID(),
		CourierID:       a.CourierID,
		OrderID:         a.OrderID(),
		AssignmentID:    a.ID,
		OrderNumber:     a.Order.Number,
		TimeTotal:       *out.TimeTotal,
		Distance:        out.Distance,
		ValueEarned:     *out.ValueEarned,
		CustomerRating:  out.CustomerRating,
		CustomerComment: out.CustomerComment,
		DeliveredAt:     *a.CompletedAt,
	}
	if err := s.history.Append(rec); err != nil {
		s.logger.Error("delivery record not stored",
			logx.String("assignment_id", a.ID),
			logx.Err(err),
		)
		s.restore(prev)
		return domain.DeliveryRecord{}, fmt.Errorf("complete: append history: %w", err)
	}

	daily, err := s.stats.RecordCompletion(a.CourierID, domain.Completion{
		ValueEarned:    rec.ValueEarned,
		TimeTotal:      rec.TimeTotal,
		Distance:       rec.Distance,
		CustomerRating: rec.CustomerRating,
	})
	if err != nil {
		s.logger.Error("statistics not updated",
			logx.String("assignment_id", a.ID),
			logx.Err(err),
		)
		if derr := s.history.Discard(a.CourierID, rec.ID); derr != nil {
			s.logger.Error("delivery record not discarded",
				logx.String("assignment_id", a.ID),
				logx.String("delivery_id", rec.ID),
				logx.Err(derr),
			)
		}
		s.restore(prev)
		return domain.DeliveryRecord{}, fmt.Errorf("complete: record statistics: %w", err)
	}

	s.metrics.Transition("complete")
	s.metrics.Delivered(rec.ValueEarned)
	s.logger.Info("delivery completed",
		logx.Event("delivery_completed"),
		logx.String("courier_id", a.CourierID),
		logx.String("assignment_id", a.ID),
		logx.String("order_id", a.OrderID()),
		logx.String("delivery_id", rec.ID),
		logx.Float64("value_earned", rec.ValueEarned),
		logx.Int("total_delivered_today", daily.TotalDelivered),
	)
	return rec, nil
}

// Cancel is used by dispatch to withdraw a pending or accepted assignment; the linked order
// becomes cancelled.
func (s *Service) Cancel(ctx context.Context, assignmentID, reason string) (domain.Assignment, error) {
	a, err := s.store.Apply(assignmentID, func(a *domain.Assignment) error {
		if err := a.Status.ValidateCancel(); err != nil {
			return err
		}
		now := s.clock.Now()
		a.Status = domain.AssignmentCancelled
		a.TerminalAt = &now
		a.Notes = reason
		a.Order.Status = domain.OrderCancelled
		a.Order.UpdatedAt = now
		return nil
	})
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("cancel: %w", err)
	}

	s.metrics.Transition("cancel")
	s.logger.Info("assignment cancelled",
		logx.Event("assignment_cancelled"),
		logx.String("courier_id", a.CourierID),
		logx.String("assignment_id", a.ID),
		logx.String("order_id", a.OrderID()),
	)
	return a, nil
}

// Sweep removes terminal assignments whose grace interval has elapsed.
func (s *Service) Sweep(ctx context.Context) []string {
	removed := s.store.SweepTerminal(s.clock.Now(), s.grace.For)
	if len(removed) > 0 {
		s.logger.Debug("terminal assignments swept",
			logx.Event("assignments_swept"),
			logx.Int("count", len(removed)),
		)
	}
	return removed
}

// History returns the courier's delivery records, newest first.
func (s *Service) History(ctx context.Context, courierID string, limit, offset *int) ([]domain.DeliveryRecord, error) {
	defer s.floor.Hold(ctx, latency.OpFetch, s.floor.Start())

	courierID, err := requireID("courier id", courierID)
	if err != nil {
		return nil, err
	}
	if (limit != nil && *limit < 0) || (offset != nil && *offset < 0) {
		return nil, fmt.Errorf("history: %w: negative pagination", apperr.ErrValidation)
	}
	return s.history.List(courierID, limit, offset), nil
}

// TodayStatistics returns the courier's aggregate for the current day.
func (s *Service) TodayStatistics(ctx context.Context, courierID string) (domain.DailyStatistics, error) {
	defer s.floor.Hold(ctx, latency.OpFetch, s.floor.Start())
	return s.stats.GetToday(courierID)
}

func (s *Service) transition(
	courierID, assignmentID string,
	fn func(a *domain.Assignment, now time.Time) error,
) (domain.Assignment, error) {
	courierID, err := requireID("courier id", courierID)
	if err != nil {
		return domain.Assignment{}, err
	}
	assignmentID, err = requireID("assignment id", assignmentID)
	if err != nil {
		return domain.Assignment{}, err
	}
	return s.store.Apply(assignmentID, func(a *domain.Assignment) error {
		if a.CourierID != courierID {
			return notOwned(assignmentID)
		}
		return fn(a, s.clock.Now())
	})
}

// restore puts back the state an assignment had before a completion that could not be finished.
func (s *Service) restore(prev domain.Assignment) {
	_, err := s.store.Apply(prev.ID, func(a *domain.Assignment) error {
		*a = prev
		return nil
	})
	if err != nil {
		s.logger.Error("assignment not restored",
			logx.String("assignment_id", prev.ID),
			logx.Err(err),
		)
	}
}

func validateOutcome(out domain.Outcome) error {
	switch {
	case out.TimeTotal == nil:
		return fmt.Errorf("%w: time_total is required", apperr.ErrValidation)
	case out.ValueEarned == nil:
		return fmt.Errorf("%w: value_earned is required", apperr.ErrValidation)
	case *out.TimeTotal < 0:
		return fmt.Errorf("%w: time_total must not be negative", apperr.ErrValidation)
	case *out.ValueEarned < 0:
		return fmt.Errorf("%w: value_earned must not be negative", apperr.ErrValidation)
	case out.Distance != nil && *out.Distance < 0:
		return fmt.Errorf("%w: distance must not be negative", apperr.ErrValidation)
	case out.CustomerRating != nil && (*out.CustomerRating < 1 || *out.CustomerRating > 5):
		return fmt.Errorf("%w: customer_rating must be between 1 and 5", apperr.ErrValidation)
	}
	return nil
}

func requireID(name, raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", fmt.Errorf("%w: %s is required", apperr.ErrValidation, name)
	}
	return id, nil
}

// notOwned hides assignments of other couriers behind a not-found.
func notOwned(assignmentID string) error {
	return fmt.Errorf("assignment %q: %w", assignmentID, apperr.ErrNotFound)
}
