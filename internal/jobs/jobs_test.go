package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"service-motorizado/internal/logx"
	"service-motorizado/internal/testutil"
)

type stubSweeper struct{ ids []string }

func (s stubSweeper) Sweep(context.Context) []string { return s.ids }

type stubPruner struct{ n int }

func (s stubPruner) PruneRevoked() int { return s.n }

type countingSwept struct{ total int }

func (c *countingSwept) Swept(n int) { c.total += n }

type stubStats struct {
	today  string
	pruned []string
}

func (s *stubStats) Today() string { return s.today }

func (s *stubStats) PruneBefore(day string) int {
	s.pruned = append(s.pruned, day)
	return 2
}

func TestSweepJob_Run(t *testing.T) {
	t.Parallel()

	rec := testutil.NewRecorder()
	m := &countingSwept{}
	j := NewSweepJob(stubSweeper{ids: []string{"asignacion-1", "asignacion-3"}}, stubPruner{n: 1}, m, rec.Logger())

	j.Run(context.Background())
	require.Equal(t, 2, m.total)
	require.Len(t, rec.Entries(), 2)

	empty := NewSweepJob(stubSweeper{}, nil, m, logx.Nop())
	empty.Run(context.Background())
	require.Equal(t, 2, m.total)
}

func TestRolloverJob_Run(t *testing.T) {
	t.Parallel()

	rec := testutil.NewRecorder()
	stats := &stubStats{today: "2024-01-23"}
	NewRolloverJob(stats, rec.Logger()).Run(context.Background())

	require.Equal(t, []string{"2024-01-23"}, stats.pruned)
	require.Equal(t, []string{"statistics_rollover"}, rec.Events())
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	t.Parallel()

	jm := NewJobManager(
		NewSweepJob(stubSweeper{}, nil, &countingSwept{}, logx.Nop()),
		NewRolloverJob(&stubStats{}, logx.Nop()),
		Schedules{Sweep: "not a schedule", Rollover: "0 0 * * *"},
		nil, logx.Nop(),
	)
	require.Error(t, jm.StartAll())
}

type signalSweeper struct{ ch chan struct{} }

func (s signalSweeper) Sweep(context.Context) []string {
	select {
	case s.ch <- struct{}{}:
	default:
	}
	return nil
}

func TestJobManager_RunsSweep(t *testing.T) {
	t.Parallel()

	ch := make(chan struct{}, 1)
	jm := NewJobManager(
		NewSweepJob(signalSweeper{ch: ch}, nil, &countingSwept{}, logx.Nop()),
		NewRolloverJob(&stubStats{}, logx.Nop()),
		Schedules{Sweep: "@every 1s", Rollover: "0 0 * * *"},
		time.UTC, logx.Nop(),
	)
	require.NoError(t, jm.StartAll())
	t.Cleanup(func() { jm.StopAll(context.Background()) })

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep job did not run")
	}
}

func TestPairs(t *testing.T) {
	t.Parallel()

	got := pairs([]any{"entry", 1, "err", errors.New("x"), "dangling"})
	require.Len(t, got, 2)
	require.Equal(t, "entry", got[0].Key)
}
