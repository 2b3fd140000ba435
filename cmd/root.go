package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagData     string
	flagLogLevel string
	flagTab      string
)

var rootCmd = &cobra.Command{
	Use:   "kraken",
	Short: "UiA Kraken Esports in the terminal",
	Long:  "kraken browses the UiA Kraken Esports news, media, matches, teams and leadership feeds, and renders the site's page fragments.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(cmd, "home", "", "")
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "feed directory or base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error")

	for _, name := range []string{"news", "media", "board"} {
		rootCmd.AddCommand(pageCmd(name))
	}
	matches := pageCmd("matches")
	matches.Flags().StringVar(&flagTab, "tab", "", "initial tab: upcoming, results or vods")
	teams := pageCmd("teams")
	teams.Flags().StringVar(&flagTab, "tab", "", "initial team tab key")

	rootCmd.AddCommand(matches, teams, articleCmd, playerCmd, renderCmd, versionCmd)
}

var pageShort = map[string]string{
	"news":    "Browse news articles",
	"media":   "Browse videos and VODs",
	"matches": "Open the match center",
	"teams":   "Browse teams and rosters",
	"board":   "Show the board and stakeholders",
}

func pageCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: pageShort[name],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, name, "", "")
		},
	}
}

var articleCmd = &cobra.Command{
	Use:   "article <slug>",
	Short: "Read one news article",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(cmd, "article", firstArg(args), "")
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <handle>",
	Short: "Show a player profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(cmd, "player", "", firstArg(args))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kraken %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// firstArg tolerates a missing key; detail pages then show their not-found view.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
