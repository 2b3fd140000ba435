package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(left, hints string, width int) string {
	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}

// listStatus is the left side of the status bar on list pages.
func listStatus(shown, total int, noun, filterLabel, loadMore string) string {
	left := fmt.Sprintf(" %d of %d %s", shown, total, noun)
	if filterLabel != "All" {
		left += " · " + filterLabel
	}
	if loadMore != "" {
		left += " · " + loadMore
	}
	return left
}
