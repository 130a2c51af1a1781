package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/neilberkman/zenstudy/internal/core/stats"
)

var heatGlyphs = []string{"·", "░", "▒", "▓", "█"}

// swatch renders a colored dot for a subject.
func swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// hbar renders a horizontal bar percent/100 of width cells wide.
func hbar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func heat(bucket int) string {
	if bucket < 0 || bucket >= len(heatGlyphs) {
		return heatGlyphs[0]
	}
	return heatGlyphs[bucket]
}

func printBreakdown(w io.Writer, rows []stats.SubjectShare) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "  No study time recorded.")
		return
	}
	for _, r := range rows {
		name := r.Name
		if r.Archived {
			name += " (archived)"
		}
		fmt.Fprintf(w, "  %s %-24s %9s %4d%%  %s\n", swatch(r.Color), name, stats.FormatDuration(r.Duration), r.Percent, hbar(r.Percent, 20))
	}
}

func printBars(w io.Writer, bars []stats.Bar) {
	for _, b := range bars {
		marker := " "
		if b.IsToday {
			marker = "*"
		}
		label := b.Date[5:]
		fmt.Fprintf(w, "  %s%s %s %9s\n", marker, label, hbar(b.HeightPercent, 30), stats.FormatDuration(b.Total))
	}
}

func printMonth(w io.Writer, grid stats.MonthGrid) {
	fmt.Fprintf(w, "%s %d  (%s)\n", grid.Month, grid.Year, stats.FormatDuration(grid.Total))
	fmt.Fprintln(w, "  Su Mo Tu We Th Fr Sa")
	fmt.Fprint(w, "  ")
	col := 0
	for i := 0; i < grid.Leading; i++ {
		fmt.Fprint(w, "   ")
		col++
	}
	for _, d := range grid.Days {
		fmt.Fprintf(w, "%2s ", strings.Repeat(heat(d.Bucket), 2))
		col++
		if col%7 == 0 {
			fmt.Fprint(w, "\n  ")
		}
	}
	fmt.Fprintln(w)
}

func printLegend(w io.Writer) {
	fmt.Fprintf(w, "  %s none  %s <1h  %s <2h  %s <4h  %s 4h+\n", heat(0), heat(1), heat(2), heat(3), heat(4))
}
