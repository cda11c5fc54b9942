package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// playerCmd represents the player command
var playerCmd = &cobra.Command{
	Use:   "player <tag>",
	Short: "Look up a player by tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.Player(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

func init() {
	rootCmd.AddCommand(playerCmd)
}
