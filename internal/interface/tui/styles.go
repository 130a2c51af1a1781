package tui

import "github.com/charmbracelet/lipgloss"

// Heatmap shades, lightest for the most study time.
var heatColors = []lipgloss.Color{
	"#18181B",
	"#3F3F46",
	"#71717A",
	"#D4D4D8",
	"#FFFFFF",
}

// Global styles used across views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("240"))

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Underline(true)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("170")).
				Bold(true)

	archivedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")) // Lighter gray that works better in dark terminals

	bigTimeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	warnDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("120"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	cursorCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	// Help view styles
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func colorDot(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

func heatCell(bucket int, label string) string {
	if bucket < 0 || bucket >= len(heatColors) {
		bucket = 0
	}
	fg := lipgloss.Color("246")
	if bucket >= 3 {
		fg = lipgloss.Color("#000000")
	}
	return lipgloss.NewStyle().Background(heatColors[bucket]).Foreground(fg).Render(label)
}
