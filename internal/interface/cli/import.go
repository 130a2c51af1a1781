package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/neilberkman/zenstudy/internal/core/backup"
	"github.com/spf13/cobra"
)

var importForce bool

var importCmd = &cobra.Command{
	Use:   "import <backup.json>",
	Short: "Restore a JSON backup",
	Long: `Replace all subjects and sessions with the contents of a backup file.

The file must contain "subjects" and "logs". If it doesn't, nothing changes.
Re-importing a file that was already imported needs --force.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "Import even if this exact file was imported before")
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	path := args[0]
	if !importForce {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		seen, err := a.db.ImportedBefore(cmd.Context(), backup.Hash(data))
		if err != nil {
			return fmt.Errorf("failed to check import log: %w", err)
		}
		if seen {
			fmt.Fprintf(cmd.OutOrStdout(), "%s was already imported; use --force to import it again.\n", path)
			return nil
		}
	}

	res, err := a.backup.ImportFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d subject(s) and %s session(s) from %s\n", res.Subjects, humanize.Comma(int64(res.Sessions)), path)
	if res.ExportedAt != "" {
		fmt.Fprintf(out, "Backup taken %s", res.ExportedAt)
		if res.Timezone != "" {
			fmt.Fprintf(out, " (%s)", res.Timezone)
		}
		fmt.Fprintln(out)
	}
	return nil
}
