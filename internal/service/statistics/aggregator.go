package statistics

import (
	"fmt"
	"sync"
	"time"

	"service-motorizado/internal/apperr"
	"service-motorizado/internal/clock"
	"service-motorizado/internal/domain"
	"service-motorizado/internal/logx"
)

// DayLayout formats the day key of a DailyStatistics.
const DayLayout = "2006-01-02"

type key struct {
	courierID string
	day       string
}

// Aggregator maintains the running daily summary per courier.
type Aggregator struct {
	mu     sync.Mutex
	days   map[key]*domain.DailyStatistics
	clock  clock.Clock
	loc    *time.Location
	logger logx.Logger
}

// NewAggregator creates an Aggregator. Days are cut in loc (UTC when nil).
func NewAggregator(c clock.Clock, loc *time.Location, logger logx.Logger) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Aggregator{
		days:   make(map[key]*domain.DailyStatistics),
		clock:  c,
		loc:    loc,
		logger: logger,
	}
}

// Today returns the day key for the current time.
func (a *Aggregator) Today() string {
	return a.clock.Now().In(a.loc).Format(DayLayout)
}

// GetToday returns today's aggregate for the courier, creating it if absent.
func (a *Aggregator) GetToday(courierID string) (domain.DailyStatistics, error) {
	if courierID == "" {
		return domain.DailyStatistics{}, fmt.Errorf("today statistics: %w: courier id is required", apperr.ErrValidation)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return *a.todayLocked(courierID), nil
}

// RecordCompletion folds a completed delivery into today's aggregate of the courier.
func (a *Aggregator) RecordCompletion(courierID string, c domain.Completion) (domain.DailyStatistics, error) {
	if courierID == "" {
		return domain.DailyStatistics{}, fmt.Errorf("record completion: %w: courier id is required", apperr.ErrValidation)
	}
	if c.ValueEarned < 0 || c.TimeTotal < 0 || (c.Distance != nil && *c.Distance < 0) {
		return domain.DailyStatistics{}, fmt.Errorf("record completion: %w: negative totals", apperr.ErrValidation)
	}
	if c.CustomerRating != nil && (*c.CustomerRating < 1 || *c.CustomerRating > 5) {
		return domain.DailyStatistics{}, fmt.Errorf("record completion: %w: rating must be 1..5", apperr.ErrValidation)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.todayLocked(courierID)
	next := fold(*s, c)
	next.UpdatedAt = a.clock.Now()
	*s = next

	a.logger.Debug("statistics updated",
		logx.String("courier_id", courierID),
		logx.String("day", next.Day),
		logx.Int("total_delivered", next.TotalDelivered),
		logx.Float64("average_rating", next.AverageRating),
	)
	return next, nil
}

// Seed installs a snapshot as-is, replacing any aggregate for the same courier and day.
func (a *Aggregator) Seed(s domain.DailyStatistics) error {
	if s.CourierID == "" || s.Day == "" {
		return fmt.Errorf("seed statistics: %w: courier id and day are required", apperr.ErrValidation)
	}
	if _, err := time.Parse(DayLayout, s.Day); err != nil {
		return fmt.Errorf("seed statistics: %w: day %q", apperr.ErrValidation, s.Day)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := s
	a.days[key{courierID: s.CourierID, day: s.Day}] = &cp
	return nil
}

// PruneBefore drops aggregates of days strictly before day and returns how many were dropped.
func (a *Aggregator) PruneBefore(day string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for k := range a.days {
		// DayLayout sorts lexicographically
		if k.day < day {
			delete(a.days, k)
			n++
		}
	}
	return n
}

func (a *Aggregator) todayLocked(courierID string) *domain.DailyStatistics {
	k := key{courierID: courierID, day: a.Today()}
	s, ok := a.days[k]
	if !ok {
		now := a.clock.Now()
		s = &domain.DailyStatistics{
			CourierID:     courierID,
			Day:           k.day,
			AverageRating: domain.BaselineRating,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		a.days[k] = s
	}
	return s
}

// fold applies one completion to a snapshot. Unrated deliveries still count towards the
// divisor of later ratings.
func fold(s domain.DailyStatistics, c domain.Completion) domain.DailyStatistics {
	old := s.TotalDelivered
	s.TotalDelivered = old + 1
	s.TotalEarned += c.ValueEarned
	s.TotalWorkTime += c.TimeTotal
	if c.Distance != nil {
		s.TotalDistance += *c.Distance
	}
	if c.CustomerRating != nil {
		s.AverageRating = (s.AverageRating*float64(old) + float64(*c.CustomerRating)) / float64(s.TotalDelivered)
	}
	return s
}
