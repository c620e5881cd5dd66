package components

import (
	"strings"

	"github.com/theirongolddev/spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// an optional flash message in the middle, and info on the right.
func RenderStatusBar(width int, hints, flash, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	flashStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	left := style.Render(" " + hints)
	mid := ""
	if flash != "" {
		mid = flashStyle.Render("  " + flash)
	}
	right := style.Render(info + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return left + mid + style.Render(strings.Repeat(" ", gap)) + right
}
