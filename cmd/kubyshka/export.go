package main

import (
	"fmt"
	"os"
	"time"

	"kubyshka/internal/backup"
	"kubyshka/internal/cli"
	"kubyshka/internal/storage"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export all data to a backup file",
		Long:  `Write the full expense collection and the category catalog to a portable JSON document.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()

			path := backup.DefaultFileName(now)
			if len(args) == 1 {
				path = args[0]
			}

			kv, err := openKV(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = kv.Close() }()

			store := storage.NewStore(kv)
			doc := backup.NewDocument(store.List(ctx), now)

			data, err := doc.Encode()
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("failed to write backup file: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d expenses and %d categories to %s",
				len(doc.Expenses), len(doc.Categories), path)))
			return nil
		},
	}
}
