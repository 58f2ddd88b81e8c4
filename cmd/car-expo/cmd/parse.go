package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carexpo/car-expo/internal/query"
)

var parseCmd = &cobra.Command{
	Use:   "parse <query text>",
	Short: "Parse a search query into structured filters",
	Long: "Runs the deterministic query parser on the given text and prints\n" +
		"the inferred filters. This is the same parser the API applies to\n" +
		"every search, with or without an LLM backend.",
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	parsed := query.Parse(text)

	if jsonOutput() {
		return outputJSON(parsed)
	}

	tw := newTabWriter(os.Stdout)
	tw.writef("Query:\t%s\n", text)
	if parsed.Type != nil {
		tw.writef("Type:\t%s\n", *parsed.Type)
	} else {
		tw.writef("Type:\t-\n")
	}
	if parsed.MaxPrice != nil {
		tw.writef("Max Price:\t$%.0f\n", *parsed.MaxPrice)
	} else {
		tw.writef("Max Price:\t-\n")
	}
	return tw.finish()
}
