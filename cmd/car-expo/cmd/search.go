package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/carexpo/car-expo/internal/api/client"
	"github.com/carexpo/car-expo/internal/recommend"
)

func searchCmd() *cobra.Command {
	var (
		searchType   string
		searchSortBy string
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search and rank the server's inventory",
		Long: "Asks the API server for scored recommendations. The free-text\n" +
			"query is parsed server-side for a vehicle type and a price cap.",
		Example: `  car-expo search "SUV under $30k"
  car-expo search --type ev --sort efficiency`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) == 1 {
				text = args[0]
			}
			return runSearch(cmd, text, searchType, searchSortBy)
		},
	}
	cmd.Flags().StringVar(&searchType, "type", recommend.FilterAll, "vehicle type filter")
	cmd.Flags().StringVar(&searchSortBy, "sort", recommend.SortOverall, "sort key")

	return cmd
}

func init() {
	rootCmd.AddCommand(searchCmd())
}

func runSearch(cmd *cobra.Command, text, vehicleType, sortBy string) error {
	c := newClient()

	if text != "" {
		parsed, err := c.ParseQuery(cmd.Context(), text)
		if err != nil {
			return err
		}
		if parsed.Degraded {
			fmt.Println("note: LLM extraction unavailable, using deterministic parse only")
		}
	}

	resp, err := c.ListRecommendations(cmd.Context(), &apiclient.RecommendationsParams{
		Type:   vehicleType,
		Query:  text,
		SortBy: sortBy,
	})
	if err != nil {
		return err
	}

	if jsonOutput() {
		return outputJSON(resp)
	}
	return printScoredTable(resp.Recommendations)
}
