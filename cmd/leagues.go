package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// leaguesCmd represents the leagues command
var leaguesCmd = &cobra.Command{
	Use:   "leagues",
	Short: "List all leagues",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.Leagues(context.Background())
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

func init() {
	rootCmd.AddCommand(leaguesCmd)
}
