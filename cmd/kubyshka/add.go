package main

import (
	"fmt"
	"strconv"
	"time"

	"kubyshka/internal/cli"
	"kubyshka/internal/model"
	"kubyshka/internal/storage"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		category    string
		description string
		dateStr     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a new expense",
		Long:  `Record an expense. Amount and category are required; a blank description defaults to the category name.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			if amount < 0 {
				return fmt.Errorf("amount must not be negative")
			}
			if category == "" {
				return fmt.Errorf("--category is required")
			}

			now := time.Now()
			date := now
			if dateStr != "" {
				date, err = time.ParseInLocation("2006-01-02", dateStr, now.Location())
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateStr, err)
				}
			}

			if !model.IsKnownCategory(category) {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("category %q is not in the catalog; it will render with fallback visuals", category)))
			}

			kv, err := openKV(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = kv.Close() }()

			store := storage.NewStore(kv)
			expense := model.NewExpense(amount, category, description, date, now)
			if err := store.Add(ctx, expense); err != nil {
				return fmt.Errorf("failed to add expense: %w", err)
			}

			cat, _ := model.CategoryByName(category)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %s — %s (id %s)",
				cat.Icon, cli.FormatMoney(amount, currency()), expense.Description, expense.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Expense category (required, see 'kubyshka categories')")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&dateStr, "date", "", "Effective date, YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
