package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/stats"
)

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Tab) {
		m.mode = focusView
		m.histLevel = yearLevel
		return m, nil
	}

	switch m.histLevel {
	case yearLevel:
		return m.updateYear(msg)
	case monthLevel:
		return m.updateMonth(msg)
	case dayLevel:
		return m.updateDay(msg)
	}
	return m, nil
}

func (m Model) currentYear() int {
	return m.clock.Now().In(m.clock.Location()).Year()
}

func (m Model) firstYear() int {
	return m.store.Snapshot().FirstYear(m.cfg.StartYear)
}

func (m Model) updateYear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		m.histMonth = shiftMonth(m.histMonth, -1)
	case key.Matches(msg, keys.Right):
		m.histMonth = shiftMonth(m.histMonth, 1)
	case key.Matches(msg, keys.Up):
		m.histMonth = shiftMonth(m.histMonth, -4)
	case key.Matches(msg, keys.Down):
		m.histMonth = shiftMonth(m.histMonth, 4)
	case msg.String() == "[":
		if m.histYear > m.firstYear() {
			m.histYear--
		}
	case msg.String() == "]":
		if m.histYear < m.currentYear() {
			m.histYear++
		}
	case key.Matches(msg, keys.Select):
		m.histLevel = monthLevel
		m.histDay = clampDay(m.histYear, m.histMonth, m.histDay)
	case key.Matches(msg, keys.Back):
		m.mode = focusView
	}
	return m, nil
}

func (m Model) updateMonth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	days := clock.DaysInMonth(m.histYear, m.histMonth)
	switch {
	case key.Matches(msg, keys.Left):
		m.histDay = max(m.histDay-1, 1)
	case key.Matches(msg, keys.Right):
		m.histDay = min(m.histDay+1, days)
	case key.Matches(msg, keys.Up):
		m.histDay = max(m.histDay-7, 1)
	case key.Matches(msg, keys.Down):
		m.histDay = min(m.histDay+7, days)
	case key.Matches(msg, keys.Select):
		m.histLevel = dayLevel
		m.viewport = m.createDayViewport()
	case key.Matches(msg, keys.Copy):
		return m, copySummary(m.cfg.DaySummaryTemplate, m.store.Snapshot(), m.histDate(), m.clock.Location())
	case key.Matches(msg, keys.Back):
		m.histLevel = yearLevel
	}
	return m, nil
}

func (m Model) updateDay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.histLevel = monthLevel
		return m, nil
	case key.Matches(msg, keys.Copy):
		return m, copySummary(m.cfg.DaySummaryTemplate, m.store.Snapshot(), m.histDate(), m.clock.Location())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) histDate() string {
	return clock.FormatKey(time.Date(m.histYear, m.histMonth, m.histDay, 0, 0, 0, 0, time.UTC))
}

func (m Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.histLevel {
	case yearLevel:
		b.WriteString(m.viewYear())
	case monthLevel:
		b.WriteString(m.viewMonth())
	case dayLevel:
		b.WriteString(m.viewport.View())
	}
	return b.String()
}

func (m Model) viewYear() string {
	snap := m.store.Snapshot()
	months := snap.Year(m.histYear)

	total := 0
	for _, g := range months {
		total += g.Total
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d", m.histYear)))
	b.WriteString(timestampStyle.Render("  total " + formatDuration(total) + "   [ ] change year"))
	b.WriteString("\n\n")

	var rows []string
	for r := 0; r < 3; r++ {
		var cells []string
		for c := 0; c < 4; c++ {
			g := months[r*4+c]
			cells = append(cells, renderMiniMonth(g, g.Month == m.histMonth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n")
	b.WriteString(renderLegend())
	return b.String()
}

// renderMiniMonth draws a Sunday-first grid of heat cells.
func renderMiniMonth(g stats.MonthGrid, selected bool) string {
	var b strings.Builder
	name := g.Month.String()[:3]
	if selected {
		name = cursorCellStyle.Render("▸" + name)
	} else {
		name = " " + name
	}
	b.WriteString(name)
	b.WriteString("\n")

	col := 0
	for i := 0; i < g.Leading; i++ {
		b.WriteString("  ")
		col++
	}
	for _, d := range g.Days {
		b.WriteString(heatCell(d.Bucket, "  "))
		col++
		if col%7 == 0 && d.Day != len(g.Days) {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().Width(16).MarginRight(2).MarginBottom(1).Render(b.String())
}

func (m Model) viewMonth() string {
	snap := m.store.Snapshot()
	g := snap.Month(m.histYear, m.histMonth)
	today := m.todayKey()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", g.Month, g.Year)))
	b.WriteString(timestampStyle.Render("  total " + formatDuration(g.Total)))
	b.WriteString("\n\n")
	b.WriteString(timestampStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	col := 0
	for i := 0; i < g.Leading; i++ {
		b.WriteString("    ")
		col++
	}
	for _, d := range g.Days {
		label := fmt.Sprintf(" %2d ", d.Day)
		switch {
		case d.Day == m.histDay:
			b.WriteString(cursorCellStyle.Render(fmt.Sprintf("[%2d]", d.Day)))
		case d.Date == today:
			b.WriteString(heatCell(d.Bucket, fmt.Sprintf("*%2d ", d.Day)))
		default:
			b.WriteString(heatCell(d.Bucket, label))
		}
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")

	date := m.histDate()
	b.WriteString(fmt.Sprintf("%s  %s\n", date, formatDuration(snap.DayTotal(date))))
	rows := snap.SubjectBreakdown(date)
	b.WriteString(renderShareBar(rows, 28))
	b.WriteString("\n")
	b.WriteString(renderLegend())
	return b.String()
}

func renderLegend() string {
	cells := make([]string, len(heatColors))
	for i := range heatColors {
		cells[i] = heatCell(i, "  ")
	}
	return timestampStyle.Render("less ") + strings.Join(cells, " ") + timestampStyle.Render(" more")
}

func (m Model) createDayViewport() viewport.Model {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height - 8
	if height < 5 {
		height = 5
	}
	vp := viewport.New(width, height)
	vp.SetContent(m.renderDayDetail(width))
	return vp
}

// renderDayDetail lists every subject studied on the selected day with its
// sessions and memos.
func (m Model) renderDayDetail(width int) string {
	snap := m.store.Snapshot()
	date := m.histDate()
	loc := m.clock.Location()

	var b strings.Builder
	heading := date
	if t, err := clock.ParseKey(date); err == nil {
		heading = t.Format("Monday, January 2, 2006")
	}
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(timestampStyle.Render("Total study time: ") + formatDuration(snap.DayTotal(date)))
	b.WriteString("\n\n")

	rows := snap.SubjectBreakdown(date)
	if len(rows) == 0 {
		b.WriteString(archivedStyle.Render("No sessions recorded for this day."))
		return b.String()
	}

	barWidth := width - 4
	if barWidth > 60 {
		barWidth = 60
	}
	b.WriteString(renderShareBar(rows, barWidth))
	b.WriteString("\n\n")

	wrapWidth := width - 8
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	for _, r := range rows {
		name := r.Name
		if r.Archived {
			name = archivedStyle.Render(name + " (Archived)")
		}
		b.WriteString(fmt.Sprintf("%s %s  %s  %d%%\n", colorDot(r.Color), name, formatDuration(r.Duration), r.Percent))
		for _, sess := range r.Sessions {
			at := sess.CompletedAt().In(loc).Format("15:04")
			b.WriteString(fmt.Sprintf("    %s  %s\n", timestampStyle.Render(at), formatDuration(sess.Duration)))
			if sess.Memo != "" {
				for _, line := range strings.Split(wordwrap.String(sess.Memo, wrapWidth), "\n") {
					b.WriteString("      " + archivedStyle.Render(line) + "\n")
				}
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func shiftMonth(month time.Month, delta int) time.Month {
	n := (int(month)-1+delta)%12 + 12
	return time.Month(n%12 + 1)
}

func clampDay(year int, month time.Month, day int) int {
	if days := clock.DaysInMonth(year, month); day > days {
		return days
	}
	if day < 1 {
		return 1
	}
	return day
}
