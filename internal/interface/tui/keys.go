package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Back     key.Binding
	Tab      key.Binding
	Add      key.Binding
	Archive  key.Binding
	Archived key.Binding
	Backup   key.Binding
	Copy     key.Binding
	Pause    key.Binding
	Finish   key.Binding
	Memo     key.Binding
	Discard  key.Binding
	Restore  key.Binding
	Purge    key.Binding
	Export   key.Binding
	Import   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus/history")),
	Add:      key.NewBinding(key.WithKeys("+", "n"), key.WithHelp("+", "add subject")),
	Archive:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "archive")),
	Archived: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "archived")),
	Backup:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "backup")),
	Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy summary")),
	Pause:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
	Finish:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "complete")),
	Memo:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "memo")),
	Discard:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "discard")),
	Restore:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restore")),
	Purge:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete forever")),
	Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	Import:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// shortHelp returns the footer bindings for a mode.
func (k keyMap) shortHelp(mode viewMode) []key.Binding {
	switch mode {
	case focusView:
		return []key.Binding{k.Up, k.Down, k.Select, k.Add, k.Archive, k.Archived, k.Backup, k.Tab, k.Help, k.Quit}
	case timerView:
		return []key.Binding{k.Pause, k.Finish, k.Memo, k.Discard}
	case historyView:
		return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Select, k.Back, k.Copy, k.Tab, k.Quit}
	case archiveView:
		return []key.Binding{k.Up, k.Down, k.Restore, k.Purge, k.Back}
	case backupView:
		return []key.Binding{k.Export, k.Import, k.Back}
	default:
		return []key.Binding{k.Back}
	}
}
