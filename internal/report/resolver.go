// Package report computes period ranges and chart-ready aggregates over the
// expense collection.
package report

import (
	"fmt"
	"time"

	"kubyshka/internal/model"
)

// Range is a resolved reporting window. Days is the number of day buckets the
// window spans; AvgDays is the divisor for per-day averages and counts only
// elapsed days when the window is still ongoing. Unbounded marks the all-time
// window, whose bucket bounds derive from the data instead.
type Range struct {
	Start     time.Time
	End       time.Time
	Days      int
	AvgDays   int
	Ongoing   bool
	Unbounded bool
}

// Resolve computes the inclusive date range for a period relative to now.
//
// Week starts Monday 00:00:00 (ISO convention, Sunday counts as the last day)
// and always spans 7 buckets, though averages cover only elapsed days. A month
// ends at its last second, except the month containing now, which ends at now
// so that averages reflect only elapsed days. Both branches must stay in sync
// with the daily bucket construction in Daily.
func Resolve(p model.Period, now time.Time) (Range, error) {
	if err := p.Validate(); err != nil {
		return Range{}, err
	}

	switch p.Kind {
	case model.PeriodWeek:
		// Monday offset: Sunday maps to -6, not 0.
		offset := int(now.Weekday()) - 1
		if now.Weekday() == time.Sunday {
			offset = 6
		}
		start := truncateDay(now).AddDate(0, 0, -offset)
		return Range{
			Start:   start,
			End:     now,
			Days:    7,
			AvgDays: offset + 1,
			Ongoing: true,
		}, nil

	case model.PeriodMonth:
		start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, now.Location())
		daysInMonth := start.AddDate(0, 1, -1).Day()

		if p.Year == now.Year() && p.Month == now.Month() {
			elapsed := now.Day()
			return Range{
				Start:   start,
				End:     now,
				Days:    elapsed,
				AvgDays: elapsed,
				Ongoing: true,
			}, nil
		}

		end := time.Date(p.Year, p.Month, daysInMonth, 23, 59, 59, 0, now.Location())
		return Range{
			Start:   start,
			End:     end,
			Days:    daysInMonth,
			AvgDays: daysInMonth,
		}, nil

	case model.PeriodAll:
		return Range{Unbounded: true}, nil

	default:
		return Range{}, fmt.Errorf("unknown period kind %q", p.Kind)
	}
}

// Filter returns the expenses falling inside the range, preserving order. An
// unbounded range returns the input unchanged.
func Filter(expenses []model.Expense, r Range) []model.Expense {
	if r.Unbounded {
		return expenses
	}
	var out []model.Expense
	for _, e := range expenses {
		if !e.Date.Before(r.Start) && !e.Date.After(r.End) {
			out = append(out, e)
		}
	}
	return out
}

// Bounds concretizes an unbounded range from the min/max expense dates so it
// can be bucketed by day. Bounded ranges pass through unchanged. The second
// return value is false when there is nothing to derive bounds from.
func Bounds(r Range, expenses []model.Expense) (Range, bool) {
	if !r.Unbounded {
		return r, true
	}
	if len(expenses) == 0 {
		return r, false
	}

	min, max := expenses[0].Date, expenses[0].Date
	for _, e := range expenses[1:] {
		if e.Date.Before(min) {
			min = e.Date
		}
		if e.Date.After(max) {
			max = e.Date
		}
	}

	start := truncateDay(min)
	days := int(truncateDay(max).Sub(start).Hours()/24) + 1
	return Range{
		Start:     start,
		End:       max,
		Days:      days,
		AvgDays:   days,
		Unbounded: true,
	}, true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
