package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/neilberkman/zenstudy/internal/core/timer"
)

func (m Model) updateTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if m.timer == nil || msg.gen != m.tickGen || m.timer.State() != timer.Running {
		return m, nil
	}
	m.timer.Tick()
	return m, tickCmd(m.tickGen)
}

func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.timer == nil {
		m.mode = focusView
		return m, nil
	}

	if m.memoFocused {
		switch msg.String() {
		case "enter", "esc":
			m.memoFocused = false
			m.memo.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.memo, cmd = m.memo.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Pause):
		if err := m.timer.Toggle(); err != nil {
			m.err = err
			return m, nil
		}
		// Drop any tick already in flight; resuming schedules a fresh one.
		m.tickGen++
		if m.timer.State() == timer.Running {
			return m, tickCmd(m.tickGen)
		}
		return m, nil

	case key.Matches(msg, keys.Memo):
		m.memoFocused = true
		cmd := m.memo.Focus()
		return m, cmd

	case key.Matches(msg, keys.Finish):
		return m.finishTimer()

	case key.Matches(msg, keys.Discard):
		if err := m.timer.Discard(); err != nil {
			m.err = err
			return m, nil
		}
		m.status = "Session discarded"
		m.endTimer()
		return m, nil
	}

	return m, nil
}

func (m Model) finishTimer() (tea.Model, tea.Cmd) {
	completion, ok, err := m.timer.Complete(m.memo.Value())
	if err != nil {
		m.err = err
		return m, nil
	}
	sub := m.timerSubject
	date := m.todayKey()
	m.endTimer()

	if !ok {
		m.status = "Nothing to record"
		return m, nil
	}
	m.logger.Info("timer completed", "subject", sub.ID, "duration", completion.Duration)
	return m, recordSession(m.store, completion, sub.Name, date)
}

// endTimer leaves the timer screen and invalidates pending ticks.
func (m *Model) endTimer() {
	m.tickGen++
	m.timer = nil
	m.memo.Blur()
	m.memoFocused = false
	m.mode = focusView
}

func (m Model) viewTimer() string {
	if m.timer == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(timestampStyle.Render("STUDYING"))
	b.WriteString("\n")
	b.WriteString(colorDot(m.timerSubject.Color) + " " + titleStyle.Render(m.timerSubject.Name))
	b.WriteString("\n\n")

	clockFace := bigTimeStyle.Render(formatDuration(m.timer.Elapsed()))
	if m.timer.State() == timer.Paused {
		clockFace = lipgloss.JoinHorizontal(lipgloss.Center, clockFace, "  "+pausedStyle.Render("PAUSED"))
	}
	b.WriteString(clockFace)
	b.WriteString("\n\n")

	b.WriteString(timestampStyle.Render("SESSION MEMO (OPTIONAL)"))
	b.WriteString("\n")
	if m.memoFocused {
		b.WriteString(m.memo.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc done"))
	} else if v := m.memo.Value(); v != "" {
		b.WriteString(v)
	} else {
		b.WriteString(archivedStyle.Render("press m to add a memo"))
	}
	return b.String()
}
