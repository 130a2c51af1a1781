package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/neilberkman/zenstudy/internal/interface/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive study timer",
	Long:  "Launch the terminal UI: pick a subject, run the timer, and browse your history",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	model := tui.New(tui.Deps{
		Store:  a.store,
		Backup: a.backup,
		Config: a.cfg,
		Logger: a.logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	a.logger.Info("tui started", "db", a.cfg.DBPath, "timezone", a.cfg.Timezone)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
