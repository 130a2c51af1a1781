package cli

import (
	"fmt"
	"strings"

	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/stats"
	"github.com/spf13/cobra"
)

var weekDays int

var weekCmd = &cobra.Command{
	Use:   "week [date]",
	Short: "Show the days leading up to a date",
	Long: `Show a bar per day for the window ending at date (default today).

Examples:
  zenstudy week
  zenstudy week "last sunday"
  zenstudy week 2026-03-01 --days 14`,
	RunE: runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().IntVarP(&weekDays, "days", "n", 7, "Number of days to show")
}

func runWeek(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	end, err := clock.ParseNatural(strings.Join(args, " "), a.clock)
	if err != nil {
		return err
	}

	snap := a.store.Snapshot()
	bars, err := snap.ActivityWindow(end, clock.TodayKey(a.clock), weekDays)
	if err != nil {
		return err
	}

	total := 0
	for _, b := range bars {
		total += b.Total
	}

	out := cmd.OutOrStdout()
	if len(bars) > 0 {
		fmt.Fprintf(out, "%s .. %s  total %s\n", bars[0].Date, end, stats.FormatDuration(total))
	}
	printBars(out, bars)
	return nil
}
