package cli

import (
	"fmt"
	"time"

	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/spf13/cobra"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Show a month as a heatmap",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	now := a.clock.Now().In(a.clock.Location())
	year, month := now.Year(), now.Month()
	if len(args) == 1 {
		year, month, err = parseMonthArg(args[0])
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	printMonth(out, a.store.Snapshot().Month(year, month))
	printLegend(out)
	return nil
}

func parseMonthArg(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("month %q: want YYYY-MM: %w", s, clock.ErrInvalidDateKey)
	}
	return t.Year(), t.Month(), nil
}
