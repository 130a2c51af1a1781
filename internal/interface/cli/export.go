package cli

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/neilberkman/zenstudy/internal/core/backup"
	"github.com/spf13/cobra"
)

var (
	exportOutput  string
	exportDir     string
	exportHistory bool
	exportLimit   int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a JSON backup",
	Long: `Write every subject and session to a JSON backup file.

By default the file goes to the configured export directory, named from the
backup_filename template (ZenStudy_Backup_<date>.json).

Examples:
  zenstudy export
  zenstudy export --dir ~/Backups
  zenstudy export -o zen.json
  zenstudy export --history`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (overrides --dir and the filename template)")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Output directory (default: export_dir from config)")
	exportCmd.Flags().BoolVar(&exportHistory, "history", false, "List previous exports instead of writing a new one")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 10, "Number of exports to show with --history (0 for all)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if exportHistory {
		return printExportHistory(cmd, a)
	}

	var res backup.ExportResult
	if exportOutput != "" {
		res, err = a.backup.ExportTo(cmd.Context(), exportOutput)
	} else {
		dir := exportDir
		if dir == "" {
			dir = a.cfg.ExportDir
		}
		res, err = a.backup.Export(cmd.Context(), dir, a.cfg.BackupFilename)
	}
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(res.Path)
	if err != nil {
		abs = res.Path
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d subject(s) and %s session(s) to %s (%s)\n",
		res.Subjects, humanize.Comma(int64(res.Sessions)), abs, humanize.Bytes(uint64(res.Bytes)))
	return nil
}

func printExportHistory(cmd *cobra.Command, a *app) error {
	recs, err := a.db.ListExports(cmd.Context(), exportLimit)
	if err != nil {
		return fmt.Errorf("failed to read export log: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(out, "No exports yet. Run 'zenstudy export' to write one.")
		return nil
	}
	for _, r := range recs {
		fmt.Fprintf(out, "%s  %-14s %2d subject(s) %6s session(s)  %s\n",
			r.ExportedAt.In(a.clock.Location()).Format("2006-01-02 15:04"), humanize.Time(r.ExportedAt),
			r.SubjectCount, humanize.Comma(int64(r.SessionCount)), r.FilePath)
	}
	return nil
}
