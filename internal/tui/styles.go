package tui

import "github.com/charmbracelet/lipgloss"

// Styles for the drive view, defined with lipgloss. Adaptive colors keep
// the grid readable on both light and dark terminals.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
			Padding(0, 1)

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	emptyCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#C0C0C0", Dark: "#404040"})

	obstacleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#AA0000", Dark: "#FF5555"})

	roverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#006600", Dark: "#55FF55"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	blockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#AA0000", Dark: "#FF5555"})

	logLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)

// headingGlyphs maps heading letters to the arrow drawn on the grid.
var headingGlyphs = map[string]string{
	"N": "▲",
	"E": "▶",
	"S": "▼",
	"W": "◀",
}
