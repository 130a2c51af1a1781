package tui

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = m.prevMode
	return m, nil
}

func (m Model) viewHelp() string {
	help := `
ZenStudy - Help
═══════════════

FOCUS
─────
  ↑/↓, j/k     Choose a subject
  Enter        Start the timer
  +, n         Add a subject
  a            Archive the selected subject
  A            Show archived subjects
  b            Backup and restore
  tab          Switch to History
  q            Quit

TIMER
─────
  space        Pause / resume
  m            Write a memo
  Enter        Complete and record
  x            Discard without saving

HISTORY
───────
  ←/→, ↑/↓     Move between months or days
  [ ]          Previous / next year
  Enter        Zoom into a month or day
  c            Copy the day summary to the clipboard
  esc          Zoom out
  tab          Switch to Focus

ARCHIVE
───────
  r            Restore subject
  D            Delete permanently (sessions become "Deleted Subject")

BACKUP
──────
  e            Export a JSON backup
  i            Import a backup (replaces everything)

Press any key to return
`

	return helpStyle.Render(help)
}
