package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/neilberkman/zenstudy/internal/core/stats"
)

var barRunes = []rune(" ▁▂▃▄▅▆▇█")

// renderShareBar draws one segment per subject, each as wide as its share
// of the day, in the subject's color.
func renderShareBar(rows []stats.SubjectShare, width int) string {
	if len(rows) == 0 || width <= 0 {
		return ""
	}
	total := 0
	for _, r := range rows {
		total += r.Duration
	}
	if total == 0 {
		return ""
	}

	var b strings.Builder
	used := 0
	for i, r := range rows {
		w := r.Duration * width / total
		if i == len(rows)-1 {
			w = width - used
		}
		if w <= 0 {
			continue
		}
		used += w
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(r.Color)).Render(strings.Repeat("█", w)))
	}
	return b.String()
}

// renderActivity draws the recent-activity window as a row of vertical
// bars, height rows tall.
func renderActivity(bars []stats.Bar, height int) string {
	if len(bars) == 0 || height <= 0 {
		return ""
	}

	levels := height * (len(barRunes) - 1)
	lines := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		for _, bar := range bars {
			fill := bar.HeightPercent * levels / 100
			// Rows count down from the top.
			cellBase := (height - 1 - row) * (len(barRunes) - 1)
			n := fill - cellBase
			if n < 0 {
				n = 0
			}
			if n > len(barRunes)-1 {
				n = len(barRunes) - 1
			}
			b.WriteString(barStyle(bar).Render(strings.Repeat(string(barRunes[n]), 2)))
			b.WriteString(" ")
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

func barStyle(bar stats.Bar) lipgloss.Style {
	switch {
	case bar.IsToday:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	case bar.Total > 0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#71717A"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#27272A"))
	}
}
