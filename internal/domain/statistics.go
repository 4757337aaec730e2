package domain

import "time"

// BaselineRating seeds the running average of a fresh day.
const BaselineRating = 5.0

// DailyStatistics is a per-courier, per-day rollup of delivery performance.
type DailyStatistics struct {
	CourierID      string
	Day            string
	TotalDelivered int
	TotalEarned    float64
	TotalWorkTime  int
	TotalDistance  float64
	AverageRating  float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Completion is the slice of a finished delivery the statistics care about.
type Completion struct {
	ValueEarned    float64
	TimeTotal      int
	Distance       *float64
	CustomerRating *int
}
