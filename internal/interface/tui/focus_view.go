package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/neilberkman/zenstudy/internal/core/models"
	"github.com/neilberkman/zenstudy/internal/core/timer"
)

type subjectListItem struct {
	subject models.Subject
	today   int
}

func (i subjectListItem) FilterValue() string {
	return i.subject.Name
}

func (i subjectListItem) Title() string {
	return i.subject.Name
}

func (i subjectListItem) Description() string {
	return "Today " + formatDuration(i.today)
}

// subjectDelegate renders a subject card: swatch, name, today's time.
type subjectDelegate struct {
	list.DefaultDelegate
}

func (d subjectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	s, ok := item.(subjectListItem)
	if !ok {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	title := colorDot(s.subject.Color) + " " + s.Title()
	desc := s.Description()

	if index == m.Index() {
		title = selectedItemStyle.Render("▸" + title)
		desc = selectedItemStyle.Faint(true).Render(" " + desc)
	} else {
		title = itemStyle.Render(title)
		desc = itemStyle.Render(timestampStyle.Render(desc))
	}

	fmt.Fprintf(w, "%s\n%s", title, desc)
}

func createSubjectList(items []list.Item, width, height int) list.Model {
	delegate := subjectDelegate{DefaultDelegate: list.NewDefaultDelegate()}

	l := list.New(items, delegate, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false) // q and esc are handled by the model
	return l
}

// refreshSubjects rebuilds the focus list from the store, keeping the cursor.
func (m *Model) refreshSubjects() {
	snap := m.store.Snapshot()
	today := m.todayKey()

	active := m.store.ActiveSubjects()
	items := make([]list.Item, len(active))
	for i, sub := range active {
		items[i] = subjectListItem{subject: sub, today: snap.SubjectDayTotal(today, sub.ID)}
	}

	idx := m.subjects.Index()
	m.subjects.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.subjects.Select(idx)
	}

	if archived := m.store.ArchivedSubjects(); m.archiveCursor >= len(archived) {
		m.archiveCursor = max(len(archived)-1, 0)
	}
}

func (m Model) selectedSubject() (models.Subject, bool) {
	item, ok := m.subjects.SelectedItem().(subjectListItem)
	if !ok {
		return models.Subject{}, false
	}
	return item.subject, true
}

func (m Model) updateFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Select):
		sub, ok := m.selectedSubject()
		if !ok {
			return m, nil
		}
		return m.startTimer(sub)

	case key.Matches(msg, keys.Add):
		m.mode = addSubjectView
		m.nameInput.SetValue("")
		m.colorIdx = len(m.store.Subjects()) % len(m.cfg.Palette)
		cmd := m.nameInput.Focus()
		return m, cmd

	case key.Matches(msg, keys.Archive):
		if sub, ok := m.selectedSubject(); ok {
			return m, archiveSubject(m.store, sub)
		}
		return m, nil

	case key.Matches(msg, keys.Archived):
		m.mode = archiveView
		m.confirmPurge = false
		return m, nil

	case key.Matches(msg, keys.Backup):
		m.prevMode = m.mode
		m.mode = backupView
		return m, nil

	case key.Matches(msg, keys.Tab):
		m.mode = historyView
		return m, nil
	}

	var cmd tea.Cmd
	m.subjects, cmd = m.subjects.Update(msg)
	return m, cmd
}

func (m Model) startTimer(sub models.Subject) (tea.Model, tea.Cmd) {
	m.timer = timer.New(sub.ID)
	m.timerSubject = sub
	m.tickGen++
	m.memo.SetValue("")
	m.memo.Blur()
	m.memoFocused = false
	m.mode = timerView
	m.status = ""
	m.logger.Debug("timer started", "subject", sub.ID)
	return m, tickCmd(m.tickGen)
}

func (m Model) viewFocus() string {
	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	snap := m.store.Snapshot()
	today := m.todayKey()

	header := titleStyle.Render("Focus") + "  " +
		timestampStyle.Render(m.clock.Location().String()+" · ") + formatDuration(snap.DayTotal(today))
	if _, ok := m.store.LastBackup(); !ok {
		header += "  " + warnDotStyle.Render("●") + timestampStyle.Render(" no backup yet (b)")
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	bars, err := snap.ActivityWindow(today, today, m.cfg.ActivityDays)
	if err == nil {
		b.WriteString(renderActivity(bars, 3))
		b.WriteString("\n\n")
	}

	if len(m.subjects.Items()) == 0 {
		b.WriteString(archivedStyle.Render("Press + to add your first subject."))
		return b.String()
	}

	b.WriteString(m.subjects.View())
	return b.String()
}

func (m Model) viewTabs() string {
	focus, history := tabStyle.Render("Focus"), tabStyle.Render("History")
	if m.mode == historyView {
		history = activeTabStyle.Render("History")
	} else {
		focus = activeTabStyle.Render("Focus")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, focus, history)
}
