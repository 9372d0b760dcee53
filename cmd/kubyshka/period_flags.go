package main

import (
	"fmt"
	"time"

	"kubyshka/internal/model"

	"github.com/spf13/cobra"
)

// periodFlags is the shared period selection for the list and stats commands.
type periodFlags struct {
	period string
	month  string
}

func (f *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.period, "period", "", "Time period: week, month or all")
	cmd.Flags().StringVar(&f.month, "month", "", "Specific month, YYYY-MM (implies --period month)")
}

// resolve picks the effective period: explicit flags win, then the saved
// preference, then the current month. The second return value reports whether
// the user selected the period explicitly (and it should be saved back).
func (f *periodFlags) resolve(saved model.Period, haveSaved bool, now time.Time) (model.Period, bool, error) {
	if f.month != "" {
		parsed, err := time.Parse("2006-01", f.month)
		if err != nil {
			return model.Period{}, false, fmt.Errorf("invalid month %q (want YYYY-MM): %w", f.month, err)
		}
		return model.MonthPeriod(parsed.Year(), parsed.Month()), true, nil
	}

	switch f.period {
	case "":
		if haveSaved {
			return saved, false, nil
		}
		return model.CurrentMonthPeriod(now), false, nil
	case "week":
		return model.WeekPeriod(), true, nil
	case "month":
		return model.CurrentMonthPeriod(now), true, nil
	case "all":
		return model.AllTimePeriod(), true, nil
	default:
		return model.Period{}, false, fmt.Errorf("invalid period %q (want week, month or all)", f.period)
	}
}

// periodTitle renders a period for headers.
func periodTitle(p model.Period) string {
	switch p.Kind {
	case model.PeriodWeek:
		return "this week"
	case model.PeriodAll:
		return "all time"
	default:
		return fmt.Sprintf("%s %d", p.Month, p.Year)
	}
}
