package cli

import (
	"fmt"

	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/stats"
	"github.com/spf13/cobra"
)

var (
	subjectColor string
	subjectAll   bool
	purgeYes     bool
)

var subjectCmd = &cobra.Command{
	Use:     "subject",
	Aliases: []string{"subjects"},
	Short:   "Manage study subjects",
}

var subjectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a subject",
	Long: `Add a subject. Without --color the next palette color is used.

Examples:
  zenstudy subject add Physics
  zenstudy subject add "Organic Chemistry" --color "#D45FFF"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		sub, err := a.store.AddSubject(cmd.Context(), args[0], subjectColor)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (%s)\n", swatch(sub.Color), sub.Name, sub.ID)
		return nil
	},
}

var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		snap := a.store.Snapshot()
		today := clock.TodayKey(a.clock)

		subjects := a.store.ActiveSubjects()
		if subjectAll {
			subjects = a.store.Subjects()
		}
		if len(subjects) == 0 {
			fmt.Fprintln(out, "No subjects. Add one with 'zenstudy subject add <name>'.")
			return nil
		}
		for _, sub := range subjects {
			state := ""
			if sub.Archived {
				state = " [archived]"
			}
			fmt.Fprintf(out, "%s %-24s %9s today  id=%s%s\n",
				swatch(sub.Color), sub.Name, stats.FormatDuration(snap.SubjectDayTotal(today, sub.ID)), sub.ID, state)
		}
		return nil
	},
}

var subjectArchiveCmd = &cobra.Command{
	Use:   "archive <subject>",
	Short: "Archive a subject (history is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		sub, err := a.store.FindSubject(args[0])
		if err != nil {
			return err
		}
		if _, err := a.store.ArchiveSubject(cmd.Context(), sub.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Archived %s\n", sub.Name)
		return nil
	},
}

var subjectRestoreCmd = &cobra.Command{
	Use:   "restore <subject>",
	Short: "Restore an archived subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		sub, err := a.store.FindSubject(args[0])
		if err != nil {
			return err
		}
		if _, err := a.store.RestoreSubject(cmd.Context(), sub.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", sub.Name)
		return nil
	},
}

var subjectPurgeCmd = &cobra.Command{
	Use:   "purge <subject>",
	Short: "Permanently delete a subject",
	Long: `Permanently delete a subject. Its recorded sessions are kept and show
up as "Deleted Subject" in every view. Requires --yes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		sub, err := a.store.FindSubject(args[0])
		if err != nil {
			return err
		}
		if !purgeYes {
			return fmt.Errorf("permanently delete %q? logs will become generic; re-run with --yes", sub.Name)
		}
		if err := a.store.PurgeSubject(cmd.Context(), sub.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Purged %s\n", sub.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subjectCmd)
	subjectCmd.AddCommand(subjectAddCmd, subjectListCmd, subjectArchiveCmd, subjectRestoreCmd, subjectPurgeCmd)

	subjectAddCmd.Flags().StringVar(&subjectColor, "color", "", "Hex color like #5F9FFF")
	subjectListCmd.Flags().BoolVarP(&subjectAll, "all", "a", false, "Include archived subjects")
	subjectPurgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "Confirm permanent deletion")
}
