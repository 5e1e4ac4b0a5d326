package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"postgrid/internal/pager"
)

func newWindowCmd() *cobra.Command {
	var (
		pages   int
		current int
		sep     string
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the page numbers the pager shows",
		Example: `  postgrid window --pages 10 --current 5
  1 ... 4 5 6 ... 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pages < 0 {
				return fmt.Errorf("--pages must not be negative, got %d", pages)
			}
			items := pager.Window(pages, current)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), pager.Format(items, sep))
			return err
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 0, "total number of pages")
	cmd.Flags().IntVar(&current, "current", 1, "selected page")
	cmd.Flags().StringVar(&sep, "sep", " ", "separator between items")
	_ = cmd.MarkFlagRequired("pages")
	return cmd
}
