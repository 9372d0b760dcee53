package main

import (
	"fmt"
	"strings"

	"kubyshka/internal/cli"
	"kubyshka/internal/storage"

	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			kv, err := openKV(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = kv.Close() }()

			store := storage.NewStore(kv)
			expense := store.Get(ctx, id)
			if expense == nil {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("no expense with id %s", id)))
				return nil
			}

			// Confirm deletion
			if !force {
				fmt.Printf("Delete %s (%s, %s)? (y/N): ",
					id, expense.Category, cli.FormatMoney(expense.Amount, currency()))
				var response string
				_, _ = fmt.Scanln(&response)
				if strings.ToLower(response) != "y" {
					fmt.Println("Deletion cancelled.")
					return nil
				}
			}

			if err := store.Delete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted expense %s", id)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
