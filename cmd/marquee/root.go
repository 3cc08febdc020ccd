package main

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:3000"

// cli holds the persistent flag values shared by every subcommand.
type cli struct {
	serverURL  string
	token      string
	jsonOutput bool
}

func (c *cli) client() *Client {
	return NewClient(c.serverURL, c.token)
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "marquee",
		Short: "CLI client for the marquee watchlist server",
		Long: `marquee - CLI client for the marquee watchlist server

Track the movies and series you want to watch, rate them, and record
which episodes you have seen.

Run 'marqueed' to start the server daemon. Log in with 'marquee login'
and export the printed token as MARQUEE_TOKEN.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&c.serverURL, "server", defaultServer, "Server URL")
	rootCmd.PersistentFlags().StringVar(&c.token, "token", os.Getenv("MARQUEE_TOKEN"), "Access token (default $MARQUEE_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("marquee {{.Version}}\n")

	rootCmd.AddCommand(
		newRegisterCmd(c),
		newLoginCmd(c),
		newListCmd(c),
		newGetCmd(c),
		newAddCmd(c),
		newUpdateCmd(c),
		newDeleteCmd(c),
		newToggleCmd(c),
		newEpisodesCmd(c),
		newStatsCmd(c),
		newSearchCmd(c),
		newExportCmd(c),
		newImportCmd(c),
		newCompletionCmd(rootCmd),
	)
	return rootCmd
}
