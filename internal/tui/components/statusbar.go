package components

import (
	"strings"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and a message on the right. A flash message takes the accent color.
func RenderStatusBar(width int, hints, info string, flash bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	rightStyle := style
	if flash {
		rightStyle = rightStyle.Foreground(t.Green).Bold(true)
	}

	left := style.Render(" " + hints)
	right := rightStyle.Render(info + " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return lipgloss.NewStyle().Background(t.Surface).Width(width).
		Render(left + style.Render(strings.Repeat(" ", padding)) + right)
}
