package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	mutedColor   = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	ruleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// banner renders a title line and a rule sized to width characters.
func banner(title string, width int) string {
	rule := strings.Repeat("═", max(width, len(title)))
	if noColor {
		return title + "\n" + rule
	}
	return titleStyle.Render(title) + "\n" + ruleStyle.Render(rule)
}
