package main

import (
	"fmt"
	"time"

	"kubyshka/internal/cli"
	"kubyshka/internal/model"
	"kubyshka/internal/report"
	"kubyshka/internal/storage"

	"github.com/spf13/cobra"
)

const (
	barWidth    = 30
	trendMonths = 12
	// Daily series rendering is suppressed beyond this many buckets; the
	// all-time window over years of history would not fit a terminal.
	maxDailyRows = 62
)

func statsCmd() *cobra.Command {
	var flags periodFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Expense analytics",
		Long:  `Show totals, per-category breakdown, the daily series and the monthly trend for the selected period.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()

			kv, err := openKV(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = kv.Close() }()

			store := storage.NewStore(kv)
			session := storage.NewSession(kv)
			_ = session.SetActiveTab(ctx, "analytics")

			saved, haveSaved := session.AnalyticsPeriod(ctx)
			period, explicit, err := flags.resolve(saved, haveSaved, now)
			if err != nil {
				return err
			}
			if explicit {
				if err := session.SetAnalyticsPeriod(ctx, period); err != nil {
					fmt.Println(cli.FormatWarning("could not save period preference"))
				}
			}

			all := store.List(ctx)
			if len(all) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No data yet. Add a few expenses to see analytics."))
				return nil
			}

			rng, err := report.Resolve(period, now)
			if err != nil {
				return err
			}
			filtered := report.Filter(all, rng)

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Analytics — %s", periodTitle(period))))

			if len(filtered) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses in this period. Pick another one or add expenses."))
				return nil
			}

			summary := report.Summarize(filtered, rng)
			fmt.Printf("%s %s    %s %s/day    %s %s max day\n\n",
				cli.BoldStyle.Render("Total:"), cli.FormatMoney(summary.Total, currency()),
				cli.BoldStyle.Render("Average:"), cli.FormatMoney(summary.AveragePerDay, currency()),
				cli.BoldStyle.Render("Peak:"), cli.FormatMoney(summary.MaxDay, currency()))

			printCategoryBreakdown(filtered, summary.Total)
			printDailySeries(filtered, rng)
			printMonthlyTrend(all)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printCategoryBreakdown(filtered []model.Expense, total float64) {
	breakdown := report.ByCategory(filtered)
	if len(breakdown) == 0 {
		return
	}

	fmt.Println(cli.BoldStyle.Render("By category"))
	for _, ct := range breakdown {
		fraction := 0.0
		if total > 0 {
			fraction = ct.Amount / total
		}
		fmt.Printf("  %s %-20s %s %6.1f%%  %s\n",
			ct.Icon, ct.Name, cli.Bar(fraction, barWidth), fraction*100,
			cli.FormatMoney(ct.Amount, currency()))
	}
	fmt.Println()
}

func printDailySeries(filtered []model.Expense, rng report.Range) {
	buckets := report.Daily(filtered, rng)
	if len(buckets) == 0 {
		return
	}
	if len(buckets) > maxDailyRows {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("Daily series spans %d days; narrow the period to see it.", len(buckets))))
		fmt.Println()
		return
	}

	var max float64
	for _, b := range buckets {
		if b.Amount > max {
			max = b.Amount
		}
	}

	fmt.Println(cli.BoldStyle.Render("By day"))
	for _, b := range buckets {
		fraction := 0.0
		if max > 0 {
			fraction = b.Amount / max
		}
		fmt.Printf("  %s %s %s\n",
			cli.SubtleStyle.Render(b.Date.Format("Mon 02.01")),
			cli.Bar(fraction, barWidth),
			cli.FormatMoney(b.Amount, currency()))
	}
	fmt.Println()
}

func printMonthlyTrend(all []model.Expense) {
	trend := report.Monthly(all, trendMonths)
	if len(trend) == 0 {
		return
	}

	var max float64
	for _, m := range trend {
		if m.Amount > max {
			max = m.Amount
		}
	}

	fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Monthly trend (last %d months)", trendMonths)))
	for _, m := range trend {
		fraction := 0.0
		if max > 0 {
			fraction = m.Amount / max
		}
		fmt.Printf("  %s %s %s\n",
			cli.SubtleStyle.Render(fmt.Sprintf("%04d-%02d", m.Year, m.Month)),
			cli.Bar(fraction, barWidth),
			cli.FormatMoney(m.Amount, currency()))
	}
	fmt.Println()
}
