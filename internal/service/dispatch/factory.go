package dispatch

import (
	"context"
	"strings"
)

// List of dispatch statuses
const (
	StatusAssigned  = "assigned"
	StatusCancelled = "cancelled"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byStatus map[string]actionFunc
}

func newActionFactory(onAssigned, onCancelled actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[string]actionFunc{
			StatusAssigned:  onAssigned,
			StatusCancelled: onCancelled,
			"canceled":      onCancelled,
		},
	}
}

func (f *actionFactory) get(status string) (actionFunc, bool) {
	status = strings.ToLower(strings.TrimSpace(status))
	fn, ok := f.byStatus[status]
	return fn, ok
}
