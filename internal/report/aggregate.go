package report

import (
	"sort"
	"time"

	"kubyshka/internal/model"
)

// CategoryTotal is one slice of the category breakdown, carrying the display
// attributes resolved from the catalog (fallbacks for orphaned categories).
type CategoryTotal struct {
	Name   string
	Color  string
	Icon   string
	Amount float64
}

// DayBucket holds one calendar day's summed amount.
type DayBucket struct {
	Date   time.Time
	Amount float64
}

// MonthBucket holds one calendar month's summed amount.
type MonthBucket struct {
	Month  time.Month
	Year   int
	Amount float64
}

// Summary carries the derived scalars of a reporting window.
type Summary struct {
	Total         float64
	AveragePerDay float64
	MaxDay        float64
	Days          int
	Categories    int
}

// ByCategory sums amounts per category name and sorts descending by sum.
// Ties break on name so output order is deterministic.
func ByCategory(expenses []model.Expense) []CategoryTotal {
	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}

	out := make([]CategoryTotal, 0, len(totals))
	for name, amount := range totals {
		cat, _ := model.CategoryByName(name)
		out = append(out, CategoryTotal{
			Name:   name,
			Color:  cat.Color,
			Icon:   cat.Icon,
			Amount: amount,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Daily buckets the expenses into one entry per calendar day of the range,
// ascending. Every day is zero-initialized first so gaps chart as zero rather
// than going missing. Expenses outside the bucket range (already filtered in
// practice) are dropped.
func Daily(expenses []model.Expense, r Range) []DayBucket {
	bounded, ok := Bounds(r, expenses)
	if !ok || bounded.Days <= 0 {
		return nil
	}

	buckets := make([]DayBucket, bounded.Days)
	index := make(map[string]int, bounded.Days)
	for i := range buckets {
		day := bounded.Start.AddDate(0, 0, i)
		buckets[i].Date = day
		index[dayKey(day)] = i
	}

	for _, e := range expenses {
		if i, ok := index[dayKey(e.Date)]; ok {
			buckets[i].Amount += e.Amount
		}
	}
	return buckets
}

// Monthly groups expenses by calendar month regardless of any period filter,
// keeping at most the latest maxMonths, sorted ascending.
func Monthly(expenses []model.Expense, maxMonths int) []MonthBucket {
	totals := make(map[int]float64)
	for _, e := range expenses {
		totals[e.Date.Year()*12+int(e.Date.Month())-1] += e.Amount
	}

	keys := make([]int, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	if maxMonths > 0 && len(keys) > maxMonths {
		keys = keys[len(keys)-maxMonths:]
	}

	out := make([]MonthBucket, len(keys))
	for i, k := range keys {
		out[i] = MonthBucket{
			Year:   k / 12,
			Month:  time.Month(k%12 + 1),
			Amount: totals[k],
		}
	}
	return out
}

// Summarize computes the derived scalars for an already-filtered expense set.
// An empty set yields all zeros.
func Summarize(expenses []model.Expense, r Range) Summary {
	var s Summary
	if len(expenses) == 0 {
		return s
	}

	for _, e := range expenses {
		s.Total += e.Amount
	}
	s.Categories = len(ByCategory(expenses))

	bounded, ok := Bounds(r, expenses)
	if !ok || bounded.AvgDays <= 0 {
		return s
	}
	s.Days = bounded.AvgDays
	s.AveragePerDay = s.Total / float64(bounded.AvgDays)

	for _, b := range Daily(expenses, r) {
		if b.Amount > s.MaxDay {
			s.MaxDay = b.Amount
		}
	}
	return s
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
