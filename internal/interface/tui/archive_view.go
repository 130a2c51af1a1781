package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateArchive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	archived := m.store.ArchivedSubjects()
	if m.archiveCursor >= len(archived) {
		m.archiveCursor = max(len(archived)-1, 0)
	}

	if m.confirmPurge {
		m.confirmPurge = false
		if msg.String() == "y" && len(archived) > 0 {
			return m, purgeSubject(m.store, archived[m.archiveCursor])
		}
		m.status = "Delete cancelled"
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if m.archiveCursor > 0 {
			m.archiveCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.archiveCursor < len(archived)-1 {
			m.archiveCursor++
		}
	case key.Matches(msg, keys.Restore):
		if len(archived) > 0 {
			return m, restoreSubject(m.store, archived[m.archiveCursor])
		}
	case key.Matches(msg, keys.Purge):
		if len(archived) > 0 {
			m.confirmPurge = true
		}
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Archived):
		m.mode = focusView
		m.archiveCursor = 0
	}
	return m, nil
}

func (m Model) viewArchive() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Archived Subjects"))
	b.WriteString("\n\n")

	archived := m.store.ArchivedSubjects()
	if len(archived) == 0 {
		b.WriteString(archivedStyle.Render("No archived subjects."))
		return b.String()
	}

	snap := m.store.Snapshot()
	totals := make(map[string]int)
	for _, l := range snap.Logs {
		for _, s := range l.Sessions {
			totals[s.SubjectID] += s.Duration
		}
	}

	for i, sub := range archived {
		line := fmt.Sprintf("%s %s  %s", colorDot(sub.Color), sub.Name, timestampStyle.Render(formatDuration(totals[sub.ID])+" total"))
		if i == m.archiveCursor {
			b.WriteString(selectedItemStyle.Render("▸ ") + line)
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.confirmPurge && m.archiveCursor < len(archived) {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Permanently delete %q? Logs will become generic. (y/N)", archived[m.archiveCursor].Name)))
	}
	return b.String()
}
