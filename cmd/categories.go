package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/gildedrose/internal/domain/inventory"
	"github.com/zjrosen/gildedrose/internal/presentation"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the name markers that decide an item's category",
		Long: `List the categorization markers as JSON, in precedence order.

An item takes the category of the first marker found in its name. Names
matching no marker are Standard.

Examples:
  gildedrose categories
  gildedrose categories | jq '.[].substring'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatter := presentation.NewFormatter(cmd.OutOrStdout())
			return formatter.FormatMarkers(presentation.FromMarkers(inventory.Markers()))
		},
	}
}
