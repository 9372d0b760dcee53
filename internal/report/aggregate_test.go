package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kubyshka/internal/model"
)

// The January 2024 worked example: two expenses in a past month yield a fixed
// total, a descending category breakdown and a fully zero-filled 31-day
// series.
func TestAggregates_JanuaryExample(t *testing.T) {
	now := time.Date(2024, 9, 4, 12, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		expenseOn(t, "1", 10, "Продукты", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
		expenseOn(t, "2", 20, "Транспорт", time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
	}

	rng, err := Resolve(model.MonthPeriod(2024, time.January), now)
	require.NoError(t, err)
	filtered := Filter(expenses, rng)
	require.Len(t, filtered, 2)

	summary := Summarize(filtered, rng)
	assert.InDelta(t, 30, summary.Total, 1e-9)
	assert.InDelta(t, 30.0/31.0, summary.AveragePerDay, 1e-9)
	assert.InDelta(t, 20, summary.MaxDay, 1e-9)
	assert.Equal(t, 2, summary.Categories)

	breakdown := ByCategory(filtered)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "Транспорт", breakdown[0].Name)
	assert.InDelta(t, 20, breakdown[0].Amount, 1e-9)
	assert.Equal(t, "Продукты", breakdown[1].Name)
	assert.InDelta(t, 10, breakdown[1].Amount, 1e-9)

	daily := Daily(filtered, rng)
	require.Len(t, daily, 31)
	for i, bucket := range daily {
		assert.Equal(t, time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC), bucket.Date,
			"every day of the range appears exactly once")
		switch i {
		case 0:
			assert.InDelta(t, 10, bucket.Amount, 1e-9)
		case 14:
			assert.InDelta(t, 20, bucket.Amount, 1e-9)
		default:
			assert.Zero(t, bucket.Amount, "gap days are zero, not missing")
		}
	}
}

func TestByCategory_ConservationAndFallback(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(t, "1", 12.30, "Продукты", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		expenseOn(t, "2", 7.70, "Продукты", time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)),
		expenseOn(t, "3", 5, "Старая категория", time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)),
	}

	breakdown := ByCategory(expenses)
	require.Len(t, breakdown, 2)

	var sum float64
	for _, ct := range breakdown {
		sum += ct.Amount
	}
	assert.InDelta(t, 25, sum, 1e-9, "per-category sums must add up to the total")

	orphan := breakdown[1]
	assert.Equal(t, "Старая категория", orphan.Name)
	assert.Equal(t, model.FallbackColor, orphan.Color, "orphaned categories aggregate with fallback visuals")

	known := breakdown[0]
	assert.Equal(t, "#FF9800", known.Color)
}

func TestByCategory_Empty(t *testing.T) {
	assert.Empty(t, ByCategory(nil))
}

func TestDaily_AllTimeDerivesBoundsFromData(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(t, "1", 1, "Продукты", time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC)),
		expenseOn(t, "2", 2, "Продукты", time.Date(2024, 3, 9, 1, 0, 0, 0, time.UTC)),
	}

	daily := Daily(expenses, Range{Unbounded: true})
	require.Len(t, daily, 5)
	assert.InDelta(t, 1, daily[0].Amount, 1e-9)
	assert.InDelta(t, 2, daily[4].Amount, 1e-9)
	for i := 1; i < 4; i++ {
		assert.Zero(t, daily[i].Amount)
	}
}

func TestDaily_Empty(t *testing.T) {
	assert.Empty(t, Daily(nil, Range{Unbounded: true}))
}

func TestMonthly(t *testing.T) {
	var expenses []model.Expense
	// 14 consecutive months, one expense each, amounts 1..14.
	for i := 0; i < 14; i++ {
		date := time.Date(2023, time.Month(1+i), 10, 0, 0, 0, 0, time.UTC)
		expenses = append(expenses, expenseOn(t, date.Format("200601"), float64(i+1), "Продукты", date))
	}

	trend := Monthly(expenses, 12)
	require.Len(t, trend, 12, "only the most recent 12 months are kept")

	assert.Equal(t, 2023, trend[0].Year)
	assert.Equal(t, time.March, trend[0].Month, "oldest two months fall off")
	assert.Equal(t, 2024, trend[11].Year)
	assert.Equal(t, time.February, trend[11].Month)

	for i := 1; i < len(trend); i++ {
		prev := trend[i-1].Year*12 + int(trend[i-1].Month)
		cur := trend[i].Year*12 + int(trend[i].Month)
		assert.Equal(t, prev+1, cur, "trend is sorted ascending")
	}

	assert.InDelta(t, 3, trend[0].Amount, 1e-9)
	assert.InDelta(t, 14, trend[11].Amount, 1e-9)
}

func TestMonthly_YearBoundary(t *testing.T) {
	expenses := []model.Expense{
		expenseOn(t, "1", 5, "Продукты", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)),
		expenseOn(t, "2", 7, "Продукты", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	trend := Monthly(expenses, 12)
	require.Len(t, trend, 2)
	assert.Equal(t, time.December, trend[0].Month)
	assert.Equal(t, 2023, trend[0].Year)
	assert.Equal(t, time.January, trend[1].Month)
	assert.Equal(t, 2024, trend[1].Year)
}

func TestSummarize_Empty(t *testing.T) {
	now := time.Date(2024, 9, 4, 12, 0, 0, 0, time.UTC)
	rng, err := Resolve(model.CurrentMonthPeriod(now), now)
	require.NoError(t, err)

	summary := Summarize(nil, rng)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.AveragePerDay)
	assert.Zero(t, summary.MaxDay)
}

// The ongoing-month average divides by elapsed days only.
func TestSummarize_OngoingMonthUsesElapsedDays(t *testing.T) {
	now := time.Date(2024, 9, 4, 12, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		expenseOn(t, "1", 40, "Продукты", time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)),
	}

	rng, err := Resolve(model.CurrentMonthPeriod(now), now)
	require.NoError(t, err)

	summary := Summarize(Filter(expenses, rng), rng)
	assert.InDelta(t, 10, summary.AveragePerDay, 1e-9, "40 over 4 elapsed days")
	assert.Equal(t, 4, summary.Days)
}

func TestSummarize_WeekAveragesOverElapsedDaysOnly(t *testing.T) {
	now := time.Date(2024, 9, 4, 12, 0, 0, 0, time.UTC) // Wednesday
	expenses := []model.Expense{
		expenseOn(t, "1", 30, "Продукты", time.Date(2024, 9, 3, 10, 0, 0, 0, time.UTC)),
	}

	rng, err := Resolve(model.WeekPeriod(), now)
	require.NoError(t, err)

	summary := Summarize(Filter(expenses, rng), rng)
	assert.InDelta(t, 10, summary.AveragePerDay, 1e-9, "30 over Mon-Wed")
	assert.Len(t, Daily(Filter(expenses, rng), rng), 7, "buckets still span the full week")
}
