// ABOUTME: Shared lipgloss styles for capctl output
// ABOUTME: Defines colors and text styles used across commands

package cmd

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primary = lipgloss.Color("#7C3AED") // Purple
	good    = lipgloss.Color("#10B981") // Green
	warning = lipgloss.Color("#F59E0B") // Amber
	danger  = lipgloss.Color("#EF4444") // Red
	muted   = lipgloss.Color("#6B7280") // Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(muted)

	nameStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(muted)

	goodStyle = lipgloss.NewStyle().
			Foreground(good).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(warning).
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)
)

// scoreStyle picks a style by obtainability band: green at or above 0.9,
// amber at or above 0.5, red below.
func scoreStyle(value float64) lipgloss.Style {
	switch {
	case value >= 0.9:
		return goodStyle
	case value >= 0.5:
		return warnStyle
	default:
		return dangerStyle
	}
}
