package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this file.
var (
	// ColorBlue is used for directories and component labels.
	ColorBlue = lipgloss.Color("12")

	// ColorCyan is used for file names and identifiable nouns.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for task announcements.
	ColorGreen = lipgloss.Color("10")

	// ColorRed is used for failed tasks.
	ColorRed = lipgloss.Color("196")

	// ColorBrightBlue is used for section headings.
	ColorBrightBlue = lipgloss.Color("33")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorYellow is used for outdated tools.
	ColorYellow = lipgloss.Color("220")
)

// Semantic styles.
var (
	// StyleDir styles directory names in trees.
	StyleDir = lipgloss.NewStyle().Foreground(ColorBlue)

	// StyleFile styles file names in trees.
	StyleFile = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleNoun styles identifiable nouns (project names, component paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleTask styles task announcements.
	StyleTask = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleFailed styles failed task announcements.
	StyleFailed = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleHeading styles section headings.
	StyleHeading = lipgloss.NewStyle().Foreground(ColorBrightBlue)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// Tool status constants used by the environment report.
const (
	StatusFound   = "found"
	StatusMissing = "missing"
	StatusOld     = "too old"
)

// StatusStyle returns the lipgloss style for a tool status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusFound:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusMissing:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	case StatusOld:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreen).Render("✔")
	return check + " " + msg
}
