package main

import (
	"fmt"
	"time"

	"kubyshka/internal/cli"
	"kubyshka/internal/model"
	"kubyshka/internal/storage"

	"github.com/spf13/cobra"
)

func editCmd() *cobra.Command {
	var (
		amount      float64
		category    string
		description string
		dateStr     string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an expense",
		Long:  `Change fields of an existing expense. Only the supplied flags change; id and creation time are preserved.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			var patch model.ExpensePatch
			if cmd.Flags().Changed("amount") {
				if amount < 0 {
					return fmt.Errorf("amount must not be negative")
				}
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				if category == "" {
					return fmt.Errorf("category cannot be blank")
				}
				if !model.IsKnownCategory(category) {
					fmt.Println(cli.FormatWarning(fmt.Sprintf("category %q is not in the catalog", category)))
				}
				patch.Category = &category
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("date") {
				date, err := time.ParseInLocation("2006-01-02", dateStr, time.Now().Location())
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateStr, err)
				}
				patch.Date = &date
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change: supply at least one of --amount, --category, --description, --date")
			}

			kv, err := openKV(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = kv.Close() }()

			store := storage.NewStore(kv)
			if store.Get(ctx, id) == nil {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("no expense with id %s", id)))
				return nil
			}

			if err := store.Update(ctx, id, patch); err != nil {
				return fmt.Errorf("failed to update expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated expense %s", id)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "New amount")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&dateStr, "date", "", "New effective date, YYYY-MM-DD")

	return cmd
}
