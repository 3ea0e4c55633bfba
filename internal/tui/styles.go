// Package tui implements the terminal user interface using Bubbletea.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorCyan    = lipgloss.Color("86")
	ColorGreen   = lipgloss.Color("78")
	ColorYellow  = lipgloss.Color("221")
	ColorRed     = lipgloss.Color("196")
	ColorMagenta = lipgloss.Color("213")
	ColorGray    = lipgloss.Color("245")
	ColorDimGray = lipgloss.Color("239")
)

// Priority colors
var PriorityColors = map[string]lipgloss.Color{
	"HIGH":   ColorRed,
	"MEDIUM": ColorYellow,
	"LOW":    ColorGreen,
}

// Common styles
var (
	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	// Subtitle/dim text
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	// Echoed user input
	InputEchoStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)

	// Done task lines
	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	// Dim text style
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	// Prompt box
	PromptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	// Help key style
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	// Help text style
	HelpTextStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	// Error style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Prefixes used to recognise transcript lines when styling.
const (
	InputPrefix = "> "
	ErrorPrefix = "☹"
)

// GetPriorityStyle returns the style for a priority name.
func GetPriorityStyle(priority string) lipgloss.Style {
	color, ok := PriorityColors[priority]
	if !ok {
		color = ColorGray
	}
	return lipgloss.NewStyle().Foreground(color)
}
