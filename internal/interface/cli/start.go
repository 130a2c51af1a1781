package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/stats"
	"github.com/neilberkman/zenstudy/internal/core/timer"
	"github.com/spf13/cobra"
)

var (
	startFor  time.Duration
	startMemo string
)

var startCmd = &cobra.Command{
	Use:   "start <subject>",
	Short: "Run a study timer in the terminal",
	Long: `Start a count-up timer for a subject (by name or id).

The timer runs until you press Ctrl-C or the --for duration elapses, then the
session is recorded under today's date. Sessions shorter than one second are
discarded.

Examples:
  zenstudy start Mathematics
  zenstudy start language --for 25m --memo "vocab deck 3"`,
	Args: cobra.ExactArgs(1),
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().DurationVar(&startFor, "for", 0, "Stop automatically after this long (e.g. 25m)")
	startCmd.Flags().StringVarP(&startMemo, "memo", "m", "", "Memo to attach to the session")
}

func runStart(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	sub, err := a.store.FindSubject(args[0])
	if err != nil {
		return err
	}
	if sub.Archived {
		return fmt.Errorf("subject %q is archived; restore it first", sub.Name)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if startFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, startFor)
		defer cancel()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s  (Ctrl-C to finish)\n", swatch(sub.Color), sub.Name)

	t := timer.New(sub.ID)
	err = timer.Run(ctx, t, time.Second, func(elapsed int) {
		fmt.Fprintf(out, "\r  %s ", stats.FormatDuration(elapsed))
	})
	fmt.Fprintln(out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	completion, ok, err := t.Complete(startMemo)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Discarded: less than one second recorded.")
		return nil
	}

	today := clock.TodayKey(a.clock)
	sess, err := a.store.RecordSession(cmd.Context(), completion.SubjectID, completion.Duration, completion.Memo, today)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}

	snap := a.store.Snapshot()
	fmt.Fprintf(out, "Recorded %s of %s on %s (today: %s)\n",
		stats.FormatDuration(sess.Duration), sub.Name, today, stats.FormatDuration(snap.DayTotal(today)))
	return nil
}
