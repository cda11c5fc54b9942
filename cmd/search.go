package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkvale/clashwatch/filter"
)

var (
	searchName          string
	searchWarFrequency  string
	searchLocationID    int
	searchMinMembers    int
	searchMaxMembers    int
	searchMinClanPoints int
	searchMinClanLevel  int
	searchLimit         int
	searchAfter         string
	searchBefore        string
	searchFilterExpr    string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for clans by filter criteria",
	Long: `Search for clans. The API requires at least one criterion, and a name of
at least three characters; it rejects requests that violate either.

The --filter flag applies an additional client-side expression to the
returned items, e.g.:

  clashwatch search --min-members 30 --filter 'clanLevel >= 10'`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchName, "name", "", "clan name to search for")
	searchCmd.Flags().StringVar(&searchWarFrequency, "war-frequency", "", "war frequency (always, moreThanOncePerWeek, ...)")
	searchCmd.Flags().IntVar(&searchLocationID, "location-id", 0, "location identifier")
	searchCmd.Flags().IntVar(&searchMinMembers, "min-members", 0, "minimum member count")
	searchCmd.Flags().IntVar(&searchMaxMembers, "max-members", 0, "maximum member count")
	searchCmd.Flags().IntVar(&searchMinClanPoints, "min-clan-points", 0, "minimum clan points")
	searchCmd.Flags().IntVar(&searchMinClanLevel, "min-clan-level", 0, "minimum clan level")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum number of items to return")
	searchCmd.Flags().StringVar(&searchAfter, "after", "", "paging cursor: items after this marker")
	searchCmd.Flags().StringVar(&searchBefore, "before", "", "paging cursor: items before this marker")
	searchCmd.Flags().StringVarP(&searchFilterExpr, "filter", "f", "", "client-side filter expression applied to results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	search := client.SearchClans()

	// Only criteria the user actually set go into the query; zero values for
	// fields like min-members are legitimate API inputs.
	flags := cmd.Flags()
	if flags.Changed("name") {
		search.WithName(searchName)
	}
	if flags.Changed("war-frequency") {
		search.WithWarFrequency(searchWarFrequency)
	}
	if flags.Changed("location-id") {
		search.WithLocationID(searchLocationID)
	}
	if flags.Changed("min-members") {
		search.WithMinMembers(searchMinMembers)
	}
	if flags.Changed("max-members") {
		search.WithMaxMembers(searchMaxMembers)
	}
	if flags.Changed("min-clan-points") {
		search.WithMinClanPoints(searchMinClanPoints)
	}
	if flags.Changed("min-clan-level") {
		search.WithMinClanLevel(searchMinClanLevel)
	}
	if flags.Changed("limit") {
		search.WithLimit(searchLimit)
	}
	if flags.Changed("after") {
		search.WithAfter(searchAfter)
	}
	if flags.Changed("before") {
		search.WithBefore(searchBefore)
	}

	raw, err := search.Fetch(context.Background())
	if err != nil {
		return err
	}

	if searchFilterExpr == "" {
		return printJSON(raw)
	}

	return printFiltered(raw, searchFilterExpr)
}

// printFiltered applies a filter expression to the items array of a response
// and prints the matching items.
func printFiltered(raw json.RawMessage, expression string) error {
	f, err := filter.Compile(expression)
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}

	var response struct {
		Items []filter.Item `json:"items"`
	}
	if err := json.Unmarshal(raw, &response); err != nil {
		return fmt.Errorf("failed to decode response items: %w", err)
	}

	matched, err := f.Apply(response.Items)
	if err != nil {
		return err
	}

	logger.Debug().
		Int("total", len(response.Items)).
		Int("matched", len(matched)).
		Str("filter", expression).
		Msg("Applied client-side filter")

	if matched == nil {
		matched = []filter.Item{}
	}
	out, err := json.MarshalIndent(map[string]any{"items": matched}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format filtered items: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
