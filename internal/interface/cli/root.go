package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath      string
	configDir   string
	tzOverride  string
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zenstudy",
	Short: "Personal study tracker",
	Long: `zenstudy - time your study sessions and see where the hours went

Run a count-up timer against a subject, then browse daily, monthly and
yearly views of everything you've recorded. Data stays in a local SQLite
file; export a JSON backup to move it elsewhere.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to TUI if no subcommand specified
		return tuiCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default: ~/.config/zenstudy/zenstudy.db)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "Config directory (default: ~/.config/zenstudy)")
	rootCmd.PersistentFlags().StringVar(&tzOverride, "tz", "", "IANA timezone that decides which day it is")
}
