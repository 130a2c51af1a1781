package cli

import (
	"fmt"
	"strconv"

	"github.com/neilberkman/zenstudy/internal/core/stats"
	"github.com/spf13/cobra"
)

var yearCmd = &cobra.Command{
	Use:   "year [YYYY]",
	Short: "Show a year of study, month by month",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runYear,
}

func init() {
	rootCmd.AddCommand(yearCmd)
}

func runYear(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	snap := a.store.Snapshot()
	year := a.clock.Now().In(a.clock.Location()).Year()
	if len(args) == 1 {
		year, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("year %q: %w", args[0], err)
		}
	}
	if first := snap.FirstYear(a.cfg.StartYear); year < first {
		return fmt.Errorf("no history before %d", first)
	}

	out := cmd.OutOrStdout()
	total := 0
	for _, grid := range snap.Year(year) {
		total += grid.Total
		line := ""
		for _, d := range grid.Days {
			line += heat(d.Bucket)
		}
		fmt.Fprintf(out, "%-3s %-31s %9s\n", grid.Month.String()[:3], line, stats.FormatDuration(grid.Total))
	}
	fmt.Fprintf(out, "\n%d total %s\n", year, stats.FormatDuration(total))
	printLegend(out)
	return nil
}
