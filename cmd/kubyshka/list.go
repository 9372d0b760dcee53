package main

import (
	"fmt"
	"sort"
	"time"

	"kubyshka/internal/cli"
	"kubyshka/internal/model"
	"kubyshka/internal/report"
	"kubyshka/internal/storage"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var flags periodFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse expense history",
		Long:  `Show recorded expenses grouped by day, newest first. The last explicitly selected period is remembered between runs.`,
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
			_ = session.SetActiveTab(ctx, "expenses")

			saved, haveSaved := session.ListPeriod(ctx)
			period, explicit, err := flags.resolve(saved, haveSaved, now)
			if err != nil {
				return err
			}
			if explicit {
				if err := session.SetListPeriod(ctx, period); err != nil {
					fmt.Println(cli.FormatWarning("could not save period preference"))
				}
			}

			rng, err := report.Resolve(period, now)
			if err != nil {
				return err
			}

			expenses := report.Filter(store.List(ctx), rng)
			if len(expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("No expenses for %s. Use 'kubyshka add' to record one.", periodTitle(period))))
				return nil
			}

			printHistory(expenses, period)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// dayGroup is one calendar day of history.
type dayGroup struct {
	date     time.Time
	expenses []model.Expense
	total    float64
}

// groupByDay groups expenses per calendar day, newest day first; within a day,
// newest createdAt first.
func groupByDay(expenses []model.Expense) []dayGroup {
	byKey := make(map[string]*dayGroup)
	for _, e := range expenses {
		key := e.Date.Format("2006-01-02")
		g, ok := byKey[key]
		if !ok {
			day := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, e.Date.Location())
			g = &dayGroup{date: day}
			byKey[key] = g
		}
		g.expenses = append(g.expenses, e)
		g.total += e.Amount
	}

	groups := make([]dayGroup, 0, len(byKey))
	for _, g := range byKey {
		sort.Slice(g.expenses, func(i, j int) bool {
			return g.expenses[i].CreatedAt.After(g.expenses[j].CreatedAt)
		})
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].date.After(groups[j].date)
	})
	return groups
}

func printHistory(expenses []model.Expense, period model.Period) {
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Expenses — %s", periodTitle(period))))

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	for _, group := range groupByDay(expenses) {
		fmt.Printf("%s  %s\n",
			cli.DayHeaderStyle.Render(formatDay(group.date)),
			cli.SubtleStyle.Render(cli.FormatMoney(group.total, currency())))

		for _, e := range group.expenses {
			cat, _ := model.CategoryByName(e.Category)
			line := fmt.Sprintf("  %s %-20s %s", cat.Icon, e.Category, cli.AmountStyle.Render("-"+cli.FormatMoney(e.Amount, currency())))
			if e.Description != "" && e.Description != e.Category {
				line += "  " + cli.SubtleStyle.Render(e.Description)
			}
			line += "  " + cli.SubtleStyle.Render("id "+e.ID)
			fmt.Println(line)
		}
	}

	fmt.Printf("\n%s %s\n", cli.BoldStyle.Render("Total:"), cli.FormatMoney(total, currency()))
}

// formatDay renders "Today"/"Yesterday" for the two most recent days.
func formatDay(day time.Time) string {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	case day.Year() == now.Year():
		return day.Format("2 January")
	default:
		return day.Format("2 January 2006")
	}
}
