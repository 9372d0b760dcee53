package main

import (
	"fmt"
	"os"
	"strings"

	"kubyshka/internal/backup"
	"kubyshka/internal/cli"
	"kubyshka/internal/storage"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var (
		modeStr string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import data from a backup file",
		Long: `Validate and import a previously exported backup document. With --mode merge
(the default) only expenses with unseen ids are appended; --mode replace
overwrites the whole collection. A rejected file leaves the store untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mode, err := backup.ParseMode(modeStr)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup file: %w", err)
			}

			var bar *progressbar.ProgressBar
			preview, err := backup.Parse(data, func(done, total int) {
				if bar == nil {
					bar = progressbar.NewOptions(total,
						progressbar.OptionSetWriter(os.Stderr),
						progressbar.OptionShowCount(),
						progressbar.OptionSetWidth(40),
						progressbar.OptionSetDescription("Validating records..."),
					)
				}
				_ = bar.Set(done)
			})
			if bar != nil {
				_ = bar.Finish()
				fmt.Fprintln(os.Stderr)
			}
			if err != nil {
				return err
			}

			fmt.Printf("File contains %d valid expenses and %d categories (exported %s)\n",
				len(preview.Expenses), len(preview.Categories), preview.ExportDate.Format("2006-01-02"))
			if preview.Skipped > 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%d invalid records will be skipped", preview.Skipped)))
			}
			if len(preview.Categories) > 0 {
				fmt.Println(cli.SubtleStyle.Render("Categories are not merged; the catalog is fixed."))
			}

			if !force {
				verb := "merge into"
				if mode == backup.ModeReplace {
					verb = "REPLACE"
				}
				fmt.Printf("This will %s the current collection. Continue? (y/N): ", verb)
				var response string
				_, _ = fmt.Scanln(&response)
				if strings.ToLower(response) != "y" {
					fmt.Println("Import cancelled.")
					return nil
				}
			}

			kv, err := openKV(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = kv.Close() }()

			store := storage.NewStore(kv)
			merged, added := backup.Merge(store.List(ctx), preview, mode)
			if err := store.Replace(ctx, merged); err != nil {
				return fmt.Errorf("failed to apply import: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d expenses (%s mode), collection now holds %d",
				added, mode, len(merged))))
			return nil
		},
	}

	cmd.Flags().StringVar(&modeStr, "mode", string(backup.ModeMerge), "Import mode: merge or replace")
	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
