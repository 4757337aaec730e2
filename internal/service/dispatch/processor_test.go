package dispatch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"service-motorizado/internal/apperr"
	"service-motorizado/internal/domain"
	"service-motorizado/internal/repository"
	"service-motorizado/internal/service/dispatch"
	"service-motorizado/internal/service/lifecycle"
	"service-motorizado/internal/service/statistics"
	"service-motorizado/internal/testutil"
)

var now = time.Date(2024, 1, 22, 15, 30, 0, 0, time.UTC)

type fixture struct {
	store    *MockAssignmentPort
	cancel   *MockCancelPort
	recorder *MockRecorder
	p        *dispatch.Processor
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		store:    NewMockAssignmentPort(ctrl),
		cancel:   NewMockCancelPort(ctrl),
		recorder: NewMockRecorder(ctrl),
	}
	f.p = dispatch.NewProcessor(f.store, f.cancel, testutil.NewManualClock(now), nil, f.recorder)
	return f
}

func TestProcessor_Assigned_Inserts(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(a domain.Assignment) error {
			require.Equal(t, "asignacion-7", a.ID)
			require.Equal(t, "motorizado-123", a.CourierID)
			require.Equal(t, domain.AssignmentPending, a.Status)
			require.Equal(t, domain.OrderAssigned, a.Order.Status)
			require.Equal(t, domain.PriorityNormal, a.Order.Priority)
			require.True(t, a.AssignedAt.Equal(now))
			return nil
		})
	f.recorder.EXPECT().Event("assigned", "ok")

	err := f.p.Handle(context.Background(), dispatch.Event{
		AssignmentID: "asignacion-7",
		CourierID:    "motorizado-123",
		Status:       "assigned",
		Order:        domain.Order{ID: "pedido-7", Number: "PED-2024-007"},
	})
	require.NoError(t, err)
}

func TestProcessor_Assigned_GeneratesID(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(a domain.Assignment) error {
			require.NotEmpty(t, a.ID)
			return nil
		})
	f.recorder.EXPECT().Event("assigned", "ok")

	require.NoError(t, f.p.Handle(context.Background(), dispatch.Event{
		CourierID: "motorizado-123",
		Status:    " ASSIGNED ",
		Order:     domain.Order{ID: "pedido-7"},
	}))
}

func TestProcessor_Assigned_ConflictIsSkipped(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().Insert(gomock.Any()).Return(apperr.ErrConflict)
	f.recorder.EXPECT().Event("assigned", "ok")

	require.NoError(t, f.p.Handle(context.Background(), dispatch.Event{
		AssignmentID: "asignacion-1",
		CourierID:    "motorizado-123",
		Status:       "assigned",
		Order:        domain.Order{ID: "pedido-1"},
	}))
}

func TestProcessor_Assigned_Invalid(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.recorder.EXPECT().Event("assigned", "error")

	err := f.p.Handle(context.Background(), dispatch.Event{Status: "assigned", Order: domain.Order{ID: "pedido-1"}})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestProcessor_Assigned_StoreError(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	boom := errors.New("boom")
	f.store.EXPECT().Insert(gomock.Any()).Return(boom)
	f.recorder.EXPECT().Event("assigned", "error")

	err := f.p.Handle(context.Background(), dispatch.Event{
		CourierID: "motorizado-123",
		Status:    "assigned",
		Order:     domain.Order{ID: "pedido-1"},
	})
	require.ErrorIs(t, err, boom)
}

func TestProcessor_Cancelled_ByAssignmentID(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.cancel.EXPECT().
		Cancel(gomock.Any(), "asignacion-1", "customer withdrew").
		Return(domain.Assignment{ID: "asignacion-1"}, nil)
	f.recorder.EXPECT().Event("cancelled", "ok")

	require.NoError(t, f.p.Handle(context.Background(), dispatch.Event{
		AssignmentID: "asignacion-1",
		Status:       "cancelled",
		Reason:       "customer withdrew",
	}))
}

func TestProcessor_Cancelled_ByOrder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ActiveFor("pedido-2").Return(domain.Assignment{ID: "asignacion-2"}, true)
	f.cancel.EXPECT().Cancel(gomock.Any(), "asignacion-2", "").Return(domain.Assignment{}, nil)
	f.recorder.EXPECT().Event("canceled", "ok")

	require.NoError(t, f.p.Handle(context.Background(), dispatch.Event{
		Status: "canceled",
		Order:  domain.Order{ID: "pedido-2"},
	}))
}

func TestProcessor_Cancelled_NothingActive(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.store.EXPECT().ActiveFor("pedido-2").Return(domain.Assignment{}, false)
	f.recorder.EXPECT().Event("cancelled", "ok")

	require.NoError(t, f.p.Handle(context.Background(), dispatch.Event{
		Status: "cancelled",
		Order:  domain.Order{ID: "pedido-2"},
	}))
}

func TestProcessor_Cancelled_AlreadyTerminal(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.cancel.EXPECT().
		Cancel(gomock.Any(), "asignacion-3", "").
		Return(domain.Assignment{}, apperr.ErrInvalidTransition)
	f.recorder.EXPECT().Event("cancelled", "ok")

	require.NoError(t, f.p.Handle(context.Background(), dispatch.Event{
		AssignmentID: "asignacion-3",
		Status:       "cancelled",
	}))
}

func TestProcessor_UnknownStatusIgnored(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.recorder.EXPECT().Event("delivered", "ignored")

	require.NoError(t, f.p.Handle(context.Background(), dispatch.Event{Status: "delivered"}))
}

func TestProcessor_RedeliveryAfterSweepDoesNotReopen(t *testing.T) {
	t.Parallel()

	clk := testutil.NewManualClock(now)
	store := repository.NewAssignmentStore()
	history := repository.NewHistoryStore()
	svc := lifecycle.NewService(store, history, statistics.NewAggregator(clk, time.UTC, nil), nil,
		lifecycle.Grace{Complete: time.Second}, clk, nil, nil)
	p := dispatch.NewProcessor(store, svc, clk, nil, nil)
	ctx := context.Background()

	event := dispatch.Event{
		AssignmentID: "asignacion-7",
		CourierID:    "motorizado-123",
		Status:       "assigned",
		Order:        domain.Order{ID: "pedido-7", Number: "PED-2024-007"},
	}
	require.NoError(t, p.Handle(ctx, event))

	_, err := svc.Accept(ctx, "motorizado-123", "asignacion-7")
	require.NoError(t, err)
	minutes, earned := 20, 150.0
	_, err = svc.Complete(ctx, "motorizado-123", "asignacion-7", domain.Outcome{
		TimeTotal:   &minutes,
		ValueEarned: &earned,
	})
	require.NoError(t, err)

	// same message again before and after the sweep
	require.NoError(t, p.Handle(ctx, event))
	clk.Advance(2 * time.Second)
	require.Equal(t, []string{"asignacion-7"}, svc.Sweep(ctx))
	require.NoError(t, p.Handle(ctx, event))

	active, err := svc.ListActive(ctx, "motorizado-123")
	require.NoError(t, err)
	require.Empty(t, active)
	require.Equal(t, 1, history.Count("motorizado-123"))
}
