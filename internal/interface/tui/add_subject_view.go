package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateAddSubject(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = focusView
		m.nameInput.Blur()
		return m, nil
	case "tab":
		if len(m.cfg.Palette) > 0 {
			m.colorIdx = (m.colorIdx + 1) % len(m.cfg.Palette)
		}
		return m, nil
	case "shift+tab":
		if n := len(m.cfg.Palette); n > 0 {
			m.colorIdx = (m.colorIdx - 1 + n) % n
		}
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.mode = focusView
		m.nameInput.Blur()
		return m, addSubject(m.store, name, m.selectedColor())
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) selectedColor() string {
	if len(m.cfg.Palette) == 0 {
		return ""
	}
	return m.cfg.Palette[m.colorIdx%len(m.cfg.Palette)]
}

func (m Model) viewAddSubject() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New Subject"))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")

	for i, c := range m.cfg.Palette {
		if i == m.colorIdx {
			b.WriteString("[" + colorDot(c) + "]")
		} else {
			b.WriteString(" " + colorDot(c) + " ")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab color · enter add · esc cancel"))
	return b.String()
}
