package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/stats"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's study time",
	Long: `Show today's per-subject totals and the recent activity window.

"Today" is computed in the configured timezone, not the machine's.`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	snap := a.store.Snapshot()
	today := clock.TodayKey(a.clock)

	fmt.Fprintf(out, "Today %s (%s)  total %s\n\n", today, a.clock.Location(), stats.FormatDuration(snap.DayTotal(today)))

	fmt.Fprintln(out, "Subjects")
	for _, sub := range a.store.ActiveSubjects() {
		fmt.Fprintf(out, "  %s %-24s %9s\n", swatch(sub.Color), sub.Name, stats.FormatDuration(snap.SubjectDayTotal(today, sub.ID)))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Breakdown")
	printBreakdown(out, snap.SubjectBreakdown(today))
	fmt.Fprintln(out)

	bars, err := snap.ActivityWindow(today, today, a.cfg.ActivityDays)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Last %d days\n", a.cfg.ActivityDays)
	printBars(out, bars)
	fmt.Fprintln(out)

	printLastBackup(out, a)
	return nil
}

func printLastBackup(out io.Writer, a *app) {
	if last, ok := a.store.LastBackup(); ok {
		fmt.Fprintf(out, "Last backup: %s (%s)\n", humanize.Time(last), last.In(a.clock.Location()).Format(time.DateTime))
		return
	}
	fmt.Fprintln(out, "Last backup: Never  (run 'zenstudy export')")
}
