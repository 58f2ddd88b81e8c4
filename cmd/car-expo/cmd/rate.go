package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/carexpo/car-expo/internal/catalog"
	"github.com/carexpo/car-expo/internal/query"
	"github.com/carexpo/car-expo/internal/recommend"
)

var (
	rateFilter string
	rateQuery  string
	rateSortBy string
)

var rateCmd = &cobra.Command{
	Use:   "rate [listing-id]",
	Short: "Rate the built-in inventory without starting a server",
	Long: "Rates the built-in fixture inventory and prints the ranked result.\n" +
		"With a listing ID argument, prints the full rating breakdown for\n" +
		"that one listing instead.",
	Args: cobra.MaximumNArgs(1),
	RunE: runRate,
}

func init() {
	rateCmd.Flags().StringVar(&rateFilter, "type", recommend.FilterAll, "vehicle type filter")
	rateCmd.Flags().StringVar(&rateQuery, "query", "", "free-text search query")
	rateCmd.Flags().StringVar(&rateSortBy, "sort", recommend.SortOverall, "sort key")
	rootCmd.AddCommand(rateCmd)
}

func runRate(_ *cobra.Command, args []string) error {
	listings := catalog.FixtureListings()

	scored := recommend.Select(listings, recommend.Options{
		Filter: rateFilter,
		Query:  query.Parse(rateQuery),
		SortBy: rateSortBy,
	}, time.Now())

	if len(args) == 1 {
		for i := range scored {
			if scored[i].Listing.ID == args[0] {
				if jsonOutput() {
					return outputJSON(scored[i])
				}
				return printScoredDetail(&scored[i])
			}
		}
		return fmt.Errorf("listing %q not found", args[0])
	}

	if jsonOutput() {
		return outputJSON(scored)
	}
	return printScoredTable(scored)
}
