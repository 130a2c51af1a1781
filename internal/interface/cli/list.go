package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/neilberkman/zenstudy/internal/core/stats"
	"github.com/spf13/cobra"
)

var (
	listLimit   int
	listSubject string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions",
	Long: `List recorded study sessions, newest first.

Examples:
  zenstudy list
  zenstudy list --limit 10
  zenstudy list --subject Mathematics`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")
	listCmd.Flags().StringVar(&listSubject, "subject", "", "Filter by subject name or id")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	subjectID := ""
	if listSubject != "" {
		sub, err := a.store.FindSubject(listSubject)
		if err != nil {
			return err
		}
		subjectID = sub.ID
	}

	out := cmd.OutOrStdout()
	entries := a.store.Snapshot().Recent(subjectID, listLimit)
	if len(entries) == 0 {
		fmt.Fprintln(out, "No sessions found. Run 'zenstudy start <subject>' to record one.")
		return nil
	}

	fmt.Fprintf(out, "Showing %s session(s)\n\n", humanize.Comma(int64(len(entries))))
	for _, e := range entries {
		completed := e.Session.CompletedAt()
		fmt.Fprintf(out, "%s %s  %s %-20s %9s  %s\n",
			e.Date, completed.In(a.clock.Location()).Format("15:04"),
			swatch(e.Subject.Color), e.Subject.Name,
			stats.FormatDuration(e.Session.Duration), humanize.Time(completed))
		if e.Session.Memo != "" {
			fmt.Fprintf(out, "    %s\n", truncateMemo(e.Session.Memo, 80))
		}
	}
	return nil
}

// truncateMemo flattens and shortens a memo for one-line display
func truncateMemo(memo string, maxLen int) string {
	memo = strings.Join(strings.Fields(memo), " ")

	runes := []rune(memo)
	if len(runes) <= maxLen {
		return memo
	}

	// Find a good break point (end of word)
	truncated := string(runes[:maxLen])
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > 0 && lastSpace > len(truncated)-20 {
		truncated = truncated[:lastSpace]
	}

	return truncated + "..."
}
