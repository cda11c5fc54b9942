package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// clanCmd represents the clan command
var clanCmd = &cobra.Command{
	Use:   "clan <tag>",
	Short: "Look up a clan by tag",
	Long: `Look up a clan by tag, e.g. clashwatch clan '#2PP'.

Tags start with '#', so quote them to keep the shell from treating the rest
of the argument as a comment.`,
	Args: cobra.ExactArgs(1),
	RunE: runClan,
}

var clanMembersCmd = &cobra.Command{
	Use:   "members <tag>",
	Short: "List the members of a clan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.ClanMembers(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var clanWarLogCmd = &cobra.Command{
	Use:   "warlog <tag>",
	Short: "Show a clan's war log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.ClanWarLog(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var clanWarCmd = &cobra.Command{
	Use:   "war <tag>",
	Short: "Show a clan's current war",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.ClanCurrentWar(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var clanLeagueGroupCmd = &cobra.Command{
	Use:   "leaguegroup <tag>",
	Short: "Show a clan's current war league group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.ClanLeagueGroup(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var clanLeagueWarCmd = &cobra.Command{
	Use:   "leaguewar <war-tag>",
	Short: "Show a single clan war league war by war tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := client.ClanLeagueWar(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var clanOverviewCmd = &cobra.Command{
	Use:   "overview <tag>",
	Short: "Fetch clan, members and war log in one go",
	Long: `Fetch a clan's profile, member list and war log concurrently and print
them as one combined JSON document.`,
	Args: cobra.ExactArgs(1),
	RunE: runClanOverview,
}

func init() {
	rootCmd.AddCommand(clanCmd)

	clanCmd.AddCommand(clanMembersCmd)
	clanCmd.AddCommand(clanWarLogCmd)
	clanCmd.AddCommand(clanWarCmd)
	clanCmd.AddCommand(clanLeagueGroupCmd)
	clanCmd.AddCommand(clanLeagueWarCmd)
	clanCmd.AddCommand(clanOverviewCmd)
}

func runClan(cmd *cobra.Command, args []string) error {
	raw, err := client.Clan(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printJSON(raw)
}

func runClanOverview(cmd *cobra.Command, args []string) error {
	tag := args[0]

	var clanInfo, members, warLog json.RawMessage

	// The three fetches are independent; completion order does not matter.
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		clanInfo, err = client.Clan(ctx, tag)
		return err
	})
	g.Go(func() error {
		var err error
		members, err = client.ClanMembers(ctx, tag)
		return err
	})
	g.Go(func() error {
		var err error
		warLog, err = client.ClanWarLog(ctx, tag)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch clan overview: %w", err)
	}

	overview := map[string]json.RawMessage{
		"clan":    clanInfo,
		"members": members,
		"warLog":  warLog,
	}
	out, err := json.MarshalIndent(overview, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format overview: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
