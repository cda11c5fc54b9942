package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var rankKind string

// locationsCmd represents the locations command
var locationsCmd = &cobra.Command{
	Use:   "locations [id]",
	Short: "List locations or show one location's details and rankings",
	Long: `Without arguments, list all locations. With a location id, show that
location; add --rank to fetch one of its leaderboards instead:

  clashwatch locations
  clashwatch locations 32000007
  clashwatch locations 32000007 --rank clans
  clashwatch locations 32000007 --rank players`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLocations,
}

func init() {
	rootCmd.AddCommand(locationsCmd)

	locationsCmd.Flags().StringVar(&rankKind, "rank", "", "fetch a leaderboard: clans or players")
}

func runLocations(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	locations := client.Locations()

	if len(args) == 0 {
		if rankKind != "" {
			return fmt.Errorf("--rank requires a location id")
		}
		raw, err := locations.Fetch(ctx)
		if err != nil {
			return err
		}
		return printJSON(raw)
	}

	location := locations.WithID(args[0])

	var raw json.RawMessage
	var err error
	switch rankKind {
	case "":
		raw, err = location.Fetch(ctx)
	case "clans":
		raw, err = location.ByClan().Fetch(ctx)
	case "players":
		raw, err = location.ByPlayer().Fetch(ctx)
	default:
		return fmt.Errorf("invalid rank kind %q (must be 'clans' or 'players')", rankKind)
	}
	if err != nil {
		return err
	}
	return printJSON(raw)
}
