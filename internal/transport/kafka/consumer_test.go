package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	"service-motorizado/internal/domain"
	"service-motorizado/internal/service/dispatch"
	"service-motorizado/internal/testutil"
)

type fakeGroup struct {
	consumed chan struct{}
	closed   bool
}

func (g *fakeGroup) Consume(ctx context.Context, _ []string, _ sarama.ConsumerGroupHandler) error {
	select {
	case g.consumed <- struct{}{}:
	default:
	}
	<-ctx.Done()
	return nil
}

func (g *fakeGroup) Errors() <-chan error {
	ch := make(chan error)
	close(ch)
	return ch
}

func (g *fakeGroup) Close() error {
	g.closed = true
	return nil
}

func (g *fakeGroup) Pause(map[string][]int32)  {}
func (g *fakeGroup) Resume(map[string][]int32) {}
func (g *fakeGroup) PauseAll()                 {}
func (g *fakeGroup) ResumeAll()                {}

func TestNewConsumer_SkipsWhenNoKafkaConfig(t *testing.T) {
	t.Parallel()

	rec := testutil.NewRecorder()
	noop := func(context.Context, dispatch.Event) error { return nil }

	got, err := NewConsumer(rec.Logger(), nil, "gid", "topic", noop)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = NewConsumer(rec.Logger(), []string{"b:9092"}, "", "topic", noop)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = NewConsumer(rec.Logger(), []string{"b:9092"}, "gid", "   ", noop)
	require.NoError(t, err)
	require.Nil(t, got)

	// nil consumer is safe to run and close
	require.NoError(t, got.Run(context.Background()))
	require.NoError(t, got.Close())
}

func TestNewConsumer_ReturnsErrorWhenSaramaFails(t *testing.T) {
	orig := newConsumerGroup
	t.Cleanup(func() { newConsumerGroup = orig })

	sentinel := errors.New("boom")
	newConsumerGroup = func(_ []string, _ string, _ *sarama.Config) (sarama.ConsumerGroup, error) {
		return nil, sentinel
	}

	got, err := NewConsumer(nil, []string{"b:9092"}, "gid", "topic", nil)
	require.ErrorIs(t, err, sentinel)
	require.Nil(t, got)
}

func TestConsumer_RunStopsOnCancel(t *testing.T) {
	orig := newConsumerGroup
	t.Cleanup(func() { newConsumerGroup = orig })

	g := &fakeGroup{consumed: make(chan struct{}, 1)}
	newConsumerGroup = func(_ []string, _ string, _ *sarama.Config) (sarama.ConsumerGroup, error) {
		return g, nil
	}

	c, err := NewConsumer(nil, []string{"b:9092"}, "gid", "topic", nil)
	require.NoError(t, err)
	require.NotNil(t, c)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	<-g.consumed
	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
	require.NoError(t, c.Close())
	require.True(t, g.closed)
}

func TestToDomain(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 1, 22, 15, 30, 0, 0, time.UTC)
	ev, err := ToDomain(EventDTO{
		AssignmentID: " asignacion-1 ",
		CourierID:    "motorizado-123",
		Status:       " Assigned ",
		AssignedAt:   at,
		Order: OrderDTO{
			ID:       "pedido-1",
			Number:   "PED-2024-001",
			Pickup:   AddressDTO{Line: "Calle 45 #23-12", Reference: "Local comercial"},
			Priority: "URGENT",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "asignacion-1", ev.AssignmentID)
	require.Equal(t, "assigned", ev.Status)
	require.Equal(t, domain.PriorityUrgent, ev.Order.Priority)
	require.Equal(t, "Calle 45 #23-12", ev.Order.Pickup.Line)
	require.True(t, ev.AssignedAt.Equal(at))

	_, err = ToDomain(EventDTO{Status: "assigned", Order: OrderDTO{ID: "pedido-1", Priority: "whenever"}})
	var perm PermanentError
	require.ErrorAs(t, err, &perm)
	require.Equal(t, "order.priority", perm.Field)

	_, err = ToDomain(EventDTO{Order: OrderDTO{ID: "pedido-1"}})
	require.ErrorAs(t, err, &perm)
	require.Equal(t, "status", perm.Field)
	require.EqualError(t, err, "invalid dispatch event: status: empty")
}
