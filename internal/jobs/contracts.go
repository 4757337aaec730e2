package jobs

import "context"

type sweeper interface {
	Sweep(ctx context.Context) []string
}

type revocationPruner interface {
	PruneRevoked() int
}

type sweepRecorder interface {
	Swept(n int)
}

type statsPruner interface {
	Today() string
	PruneBefore(day string) int
}
