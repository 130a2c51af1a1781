package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

func (m Model) updateBackup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmImport {
		m.confirmImport = false
		if msg.String() == "y" {
			return m, importBackup(m.backup, strings.TrimSpace(m.importInput.Value()))
		}
		m.status = "Import cancelled"
		cmd := m.importInput.Focus()
		return m, cmd
	}

	if m.importing {
		switch msg.String() {
		case "enter":
			if strings.TrimSpace(m.importInput.Value()) == "" {
				return m, nil
			}
			m.confirmImport = true
			m.importInput.Blur()
			return m, nil
		case "esc":
			m.importing = false
			m.importInput.Blur()
			m.importInput.SetValue("")
			return m, nil
		}
		var cmd tea.Cmd
		m.importInput, cmd = m.importInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Export):
		return m, exportBackup(m.backup, m.cfg.ExportDir, m.cfg.BackupFilename)
	case key.Matches(msg, keys.Import):
		m.importing = true
		cmd := m.importInput.Focus()
		return m, cmd
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Backup):
		m.mode = focusView
	}
	return m, nil
}

func (m Model) viewBackup() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Data Management"))
	b.WriteString("\n\n")

	last := "Never"
	if t, ok := m.store.LastBackup(); ok {
		last = humanize.Time(t)
	}
	b.WriteString(timestampStyle.Render("Last backup: "))
	if last == "Never" {
		b.WriteString(warnDotStyle.Render(last))
	} else {
		b.WriteString(last)
	}
	b.WriteString("\n")

	snap := m.store.Snapshot()
	b.WriteString(timestampStyle.Render("Stored: "))
	b.WriteString(pluralize(len(snap.Subjects), "subject") + ", " + pluralize(snap.SessionCount(), "session"))
	b.WriteString("\n")
	b.WriteString(timestampStyle.Render("Database: " + m.cfg.DBPath))
	b.WriteString("\n\n")

	b.WriteString(itemStyle.Render("e  export backup to " + m.cfg.ExportDir))
	b.WriteString("\n")
	b.WriteString(itemStyle.Render("i  restore from a backup file (replaces all data)"))
	b.WriteString("\n")

	if m.importing {
		b.WriteString("\n")
		b.WriteString(m.importInput.View())
		b.WriteString("\n")
		if m.confirmImport {
			b.WriteString(errorStyle.Render("Restore this backup? This will overwrite all subjects and sessions. (y/N)"))
		} else {
			b.WriteString(helpStyle.Render("enter restore · esc cancel"))
		}
	}
	return b.String()
}
