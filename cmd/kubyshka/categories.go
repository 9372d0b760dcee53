package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"kubyshka/internal/cli"
	"kubyshka/internal/model"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category catalog",
		Long:  `Display the fixed category catalog. Categories cannot be added or edited; expenses reference them by name.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Color"))

			for _, cat := range model.Categories() {
				fmt.Fprintf(w, "%s\t%s %s\t%s\n", cat.ID, cat.Icon, cat.Name, cli.SubtleStyle.Render(cat.Color))
			}
			return nil
		},
	}
}
