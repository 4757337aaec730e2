package latency

import (
	"context"
	"time"

	"service-motorizado/internal/clock"
)

// Op names an operation that carries a minimum perceived latency.
type Op string

// List of operations with a latency floor
const (
	OpFetch    Op = "fetch"
	OpAccept   Op = "accept"
	OpReject   Op = "reject"
	OpStatus   Op = "status"
	OpComplete Op = "complete"
	OpSignIn   Op = "sign_in"
)

// Floor delays the return of an operation until a minimum time has passed since it started.
// The operation itself is never delayed, only the moment its result is handed back.
type Floor struct {
	clock  clock.Clock
	floors map[Op]time.Duration
}

// NewFloor creates a Floor. Operations missing from floors have no minimum.
func NewFloor(c clock.Clock, floors map[Op]time.Duration) *Floor {
	cp := make(map[Op]time.Duration, len(floors))
	for k, v := range floors {
		cp[k] = v
	}
	return &Floor{clock: c, floors: cp}
}

// None returns a Floor that never waits.
func None() *Floor {
	return &Floor{clock: clock.New()}
}

// Start returns the current time on the floor's clock.
func (f *Floor) Start() time.Time {
	return f.clock.Now()
}

// Hold blocks until start+floor(op) or until ctx is done, whichever is first.
func (f *Floor) Hold(ctx context.Context, op Op, start time.Time) {
	if f == nil {
		return
	}
	remaining := f.floors[op] - f.clock.Now().Sub(start)
	if remaining <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-f.clock.After(remaining):
	}
}
