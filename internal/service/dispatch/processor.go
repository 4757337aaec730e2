package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"service-motorizado/internal/apperr"
	"service-motorizado/internal/clock"
	"service-motorizado/internal/domain"
	"service-motorizado/internal/logx"
)

// Processor applies dispatch events to the assignment store.
type Processor struct {
	assignments AssignmentPort
	canceller   CancelPort
	clock       clock.Clock
	logger      logx.Logger
	metrics     Recorder
	factory     *actionFactory
	newID       func() string
}

// NewProcessor creates a dispatch Processor.
func NewProcessor(assignments AssignmentPort, canceller CancelPort, c clock.Clock, logger logx.Logger, metrics Recorder) *Processor {
	if c == nil {
		c = clock.New()
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	p := &Processor{
		assignments: assignments,
		canceller:   canceller,
		clock:       c,
		logger:      logger,
		metrics:     metrics,
		newID:       uuid.NewString,
	}
	p.factory = newActionFactory(p.onAssigned, p.onCancelled)
	return p
}

// Handle processes a single Event. Unknown statuses are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.metrics.Event(e.Status, "ignored")
		return nil
	}
	if err := fn(ctx, e); err != nil {
		p.metrics.Event(e.Status, "error")
		return err
	}
	p.metrics.Event(e.Status, "ok")
	return nil
}

func (p *Processor) onAssigned(_ context.Context, e Event) error {
	if e.CourierID == "" || e.Order.ID == "" {
		return fmt.Errorf("dispatch assign: %w: courier_id and order.id are required", apperr.ErrValidation)
	}

	now := p.clock.Now()
	a := domain.Assignment{
		ID:         e.AssignmentID,
		CourierID:  e.CourierID,
		Order:      e.Order,
		Status:     domain.AssignmentPending,
		AssignedAt: e.AssignedAt,
	}
	if a.ID == "" {
		a.ID = p.newID()
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = now
	}
	a.Order.Status = domain.OrderAssigned
	if a.Order.Priority == "" {
		a.Order.Priority = domain.PriorityNormal
	}
	if a.Order.CreatedAt.IsZero() {
		a.Order.CreatedAt = now
	}
	a.Order.UpdatedAt = now

	err := p.assignments.Insert(a)
	if errors.Is(err, apperr.ErrConflict) {
		// redelivered event or order already held by someone
		p.logger.Warn("dispatch assignment skipped",
			logx.String("assignment_id", a.ID),
			logx.String("order_id", a.Order.ID),
			logx.Err(err),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("dispatch assign: %w", err)
	}

	p.logger.Info("order assigned",
		logx.Event("assignment_created"),
		logx.String("courier_id", a.CourierID),
		logx.String("assignment_id", a.ID),
		logx.String("order_id", a.Order.ID),
	)
	return nil
}

func (p *Processor) onCancelled(ctx context.Context, e Event) error {
	id := e.AssignmentID
	if id == "" {
		active, ok := p.assignments.ActiveFor(e.Order.ID)
		if !ok {
			return nil
		}
		id = active.ID
	}

	_, err := p.canceller.Cancel(ctx, id, e.Reason)
	if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrInvalidTransition) {
		p.logger.Debug("dispatch cancel skipped",
			logx.String("assignment_id", id),
			logx.Err(err),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("dispatch cancel: %w", err)
	}
	return nil
}
