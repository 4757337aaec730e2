package statistics_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"service-motorizado/internal/apperr"
	"service-motorizado/internal/domain"
	"service-motorizado/internal/service/statistics"
	"service-motorizado/internal/testutil"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func newAggregator(t *testing.T) (*statistics.Aggregator, *testutil.ManualClock) {
	t.Helper()
	clk := testutil.NewManualClock(time.Date(2024, 1, 22, 15, 30, 0, 0, time.UTC))
	return statistics.NewAggregator(clk, time.UTC, nil), clk
}

func TestGetToday_CreatesBaseline(t *testing.T) {
	t.Parallel()

	agg, _ := newAggregator(t)

	got, err := agg.GetToday("motorizado-123")
	require.NoError(t, err)
	require.Equal(t, "motorizado-123", got.CourierID)
	require.Equal(t, "2024-01-22", got.Day)
	require.Zero(t, got.TotalDelivered)
	require.Zero(t, got.TotalEarned)
	require.Equal(t, domain.BaselineRating, got.AverageRating)
}

func TestGetToday_RequiresCourier(t *testing.T) {
	t.Parallel()

	agg, _ := newAggregator(t)
	_, err := agg.GetToday("")
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRecordCompletion_WeightedRating(t *testing.T) {
	t.Parallel()

	agg, _ := newAggregator(t)
	require.NoError(t, agg.Seed(domain.DailyStatistics{
		CourierID:      "motorizado-123",
		Day:            "2024-01-22",
		TotalDelivered: 3,
		TotalEarned:    16500,
		TotalWorkTime:  85,
		TotalDistance:  14.1,
		AverageRating:  4.7,
	}))

	got, err := agg.RecordCompletion("motorizado-123", domain.Completion{
		ValueEarned:    5000,
		TimeTotal:      30,
		Distance:       floatPtr(4.2),
		CustomerRating: intPtr(5),
	})
	require.NoError(t, err)
	require.Equal(t, 4, got.TotalDelivered)
	require.InDelta(t, 21500, got.TotalEarned, 1e-9)
	require.Equal(t, 115, got.TotalWorkTime)
	require.InDelta(t, 18.3, got.TotalDistance, 1e-9)
	require.InDelta(t, 4.775, got.AverageRating, 1e-9)

	today, err := agg.GetToday("motorizado-123")
	require.NoError(t, err)
	require.Equal(t, got.TotalDelivered, today.TotalDelivered)
}

func TestRecordCompletion_UnratedKeepsAverage(t *testing.T) {
	t.Parallel()

	agg, _ := newAggregator(t)
	require.NoError(t, agg.Seed(domain.DailyStatistics{
		CourierID: "c-1", Day: "2024-01-22", TotalDelivered: 2, AverageRating: 4.5,
	}))

	got, err := agg.RecordCompletion("c-1", domain.Completion{ValueEarned: 4000, TimeTotal: 22})
	require.NoError(t, err)
	require.Equal(t, 3, got.TotalDelivered)
	require.Equal(t, 4.5, got.AverageRating)
	require.Zero(t, got.TotalDistance)
}

func TestRecordCompletion_FirstRatingFromBaseline(t *testing.T) {
	t.Parallel()

	agg, _ := newAggregator(t)
	got, err := agg.RecordCompletion("c-1", domain.Completion{ValueEarned: 1, TimeTotal: 1, CustomerRating: intPtr(3)})
	require.NoError(t, err)
	require.Equal(t, 3.0, got.AverageRating)
}

func TestRecordCompletion_Validation(t *testing.T) {
	t.Parallel()

	agg, _ := newAggregator(t)

	tests := []struct {
		name      string
		courierID string
		c         domain.Completion
	}{
		{"missing courier", "", domain.Completion{}},
		{"negative value", "c-1", domain.Completion{ValueEarned: -1}},
		{"negative time", "c-1", domain.Completion{TimeTotal: -1}},
		{"negative distance", "c-1", domain.Completion{Distance: floatPtr(-0.1)}},
		{"rating too low", "c-1", domain.Completion{CustomerRating: intPtr(0)}},
		{"rating too high", "c-1", domain.Completion{CustomerRating: intPtr(6)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := agg.RecordCompletion(tt.courierID, tt.c)
			require.ErrorIs(t, err, apperr.ErrValidation)
		})
	}

	today, err := agg.GetToday("c-1")
	require.NoError(t, err)
	require.Zero(t, today.TotalDelivered)
}

func TestRecordCompletion_PartitionedByCourierAndDay(t *testing.T) {
	t.Parallel()

	agg, clk := newAggregator(t)

	_, err := agg.RecordCompletion("c-1", domain.Completion{ValueEarned: 100, TimeTotal: 10})
	require.NoError(t, err)

	other, err := agg.GetToday("c-2")
	require.NoError(t, err)
	require.Zero(t, other.TotalDelivered)

	clk.Advance(24 * time.Hour)
	next, err := agg.GetToday("c-1")
	require.NoError(t, err)
	require.Equal(t, "2024-01-23", next.Day)
	require.Zero(t, next.TotalDelivered)

	require.Equal(t, 2, agg.PruneBefore("2024-01-23"))
	require.Zero(t, agg.PruneBefore("2024-01-23"))
}

func TestRecordCompletion_DayFollowsLocation(t *testing.T) {
	t.Parallel()

	bogota := time.FixedZone("COT", -5*60*60)
	clk := testutil.NewManualClock(time.Date(2024, 1, 23, 3, 0, 0, 0, time.UTC))
	agg := statistics.NewAggregator(clk, bogota, nil)

	got, err := agg.GetToday("c-1")
	require.NoError(t, err)
	require.Equal(t, "2024-01-22", got.Day)
}

func TestSeed_Validation(t *testing.T) {
	t.Parallel()

	agg, _ := newAggregator(t)
	require.ErrorIs(t, agg.Seed(domain.DailyStatistics{Day: "2024-01-22"}), apperr.ErrValidation)
	require.ErrorIs(t, agg.Seed(domain.DailyStatistics{CourierID: "c-1", Day: "22/01/2024"}), apperr.ErrValidation)
}

func TestRecordCompletion_Concurrent(t *testing.T) {
	t.Parallel()

	agg, _ := newAggregator(t)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = agg.RecordCompletion("c-1", domain.Completion{ValueEarned: 10, TimeTotal: 1, CustomerRating: intPtr(5)})
		}()
	}
	wg.Wait()

	got, err := agg.GetToday("c-1")
	require.NoError(t, err)
	require.Equal(t, 100, got.TotalDelivered)
	require.InDelta(t, 1000, got.TotalEarned, 1e-9)
	require.InDelta(t, 5.0, got.AverageRating, 1e-9)
}
