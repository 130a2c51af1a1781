package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/neilberkman/zenstudy/internal/core/db"
	"github.com/neilberkman/zenstudy/internal/core/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study and database statistics",
	Long: `Display totals across all recorded history plus storage info: database
location and size, export and import counts, and the last backup.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	snap := a.store.Snapshot()

	fmt.Fprintln(out, "Study Statistics")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Subjects:          %d active, %d archived\n", len(a.store.ActiveSubjects()), len(a.store.ArchivedSubjects()))
	fmt.Fprintf(out, "Sessions:          %s\n", humanize.Comma(int64(snap.SessionCount())))
	fmt.Fprintf(out, "Days studied:      %s\n", humanize.Comma(int64(snap.StudyDays())))
	fmt.Fprintf(out, "Total time:        %s\n", stats.FormatDuration(snap.TotalSeconds()))
	fmt.Fprintf(out, "Timezone:          %s\n", a.clock.Location())
	fmt.Fprintln(out)

	dbStats, err := a.db.GetStats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read database stats: %w", err)
	}

	fmt.Fprintf(out, "Exports:           %d\n", dbStats.Exports)
	last, err := a.db.LastExport(cmd.Context())
	switch {
	case errors.Is(err, db.ErrNotFound):
		// never exported; printLastBackup says so below
	case err != nil:
		return fmt.Errorf("failed to read export log: %w", err)
	default:
		fmt.Fprintf(out, "Last export:       %s -> %s\n", formatWhen(last.ExportedAt), last.FilePath)
	}
	fmt.Fprintf(out, "Imports:           %d\n", dbStats.Imports)
	if !dbStats.LastImport.IsZero() {
		fmt.Fprintf(out, "Last import:       %s\n", formatWhen(dbStats.LastImport))
	}
	if !dbStats.LastWriteAt.IsZero() {
		fmt.Fprintf(out, "Last change:       %s\n", formatWhen(dbStats.LastWriteAt))
	}
	printLastBackup(out, a)
	fmt.Fprintln(out)

	keys, err := a.db.Keys(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list stored keys: %w", err)
	}

	fmt.Fprintf(out, "Database Location: %s\n", a.db.Path())
	fmt.Fprintf(out, "Stored Keys:       %s\n", strings.Join(keys, ", "))
	fmt.Fprintf(out, "Database Size:     %s\n", humanize.Bytes(uint64(dbStats.SizeBytes)))
	return nil
}

func formatWhen(t time.Time) string {
	return fmt.Sprintf("%s (%s)", humanize.Time(t), t.Local().Format("Jan 2, 2006 3:04 PM"))
}
