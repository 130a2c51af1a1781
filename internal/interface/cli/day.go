package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/report"
	"github.com/neilberkman/zenstudy/internal/core/stats"
	"github.com/spf13/cobra"
)

var dayCopy bool

var dayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show one day in detail",
	Long: `Show a day's per-subject breakdown with every session and memo.

The date can be a key (2026-03-01) or natural language ("yesterday",
"last friday"). Defaults to today.

Examples:
  zenstudy day
  zenstudy day yesterday
  zenstudy day 2026-03-01 --copy`,
	RunE: runDay,
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.Flags().BoolVarP(&dayCopy, "copy", "c", false, "Copy a text summary to the clipboard")
}

func runDay(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	date, err := clock.ParseNatural(strings.Join(args, " "), a.clock)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	snap := a.store.Snapshot()
	loc := a.clock.Location()

	fmt.Fprintf(out, "%s  total %s\n\n", date, stats.FormatDuration(snap.DayTotal(date)))
	rows := snap.SubjectBreakdown(date)
	printBreakdown(out, rows)

	for _, r := range rows {
		fmt.Fprintf(out, "\n%s %s\n", swatch(r.Color), r.Name)
		for _, sess := range r.Sessions {
			fmt.Fprintf(out, "  %s  %9s\n", sess.CompletedAt().In(loc).Format("15:04"), stats.FormatDuration(sess.Duration))
			if sess.Memo != "" {
				fmt.Fprintln(out, indent.String(wordwrap.String(sess.Memo, 60), 4))
			}
		}
	}

	if dayCopy {
		summary, err := report.DaySummary(a.cfg.DaySummaryTemplate, snap, date, loc)
		if err != nil {
			return err
		}
		if err := clipboard.WriteAll(summary); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(out, "\nSummary copied to clipboard.")
	}
	return nil
}
