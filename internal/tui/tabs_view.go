package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uiakraken/kraken/internal/tabs"
)

func renderTabStrip(set *tabs.Set, width int) string {
	if set == nil || set.Len() == 0 {
		return ""
	}
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string
	for _, t := range set.Tabs() {
		style := tabInactiveStyle
		if set.IsActive(t.Key) {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(t.Title))
	}
	return lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1).
		Render(strings.Join(parts, sep))
}

// entry is one selectable block of lines on the match center and teams pages.
type entry struct {
	lines []string
	link  string
}

func renderEntries(entries []entry, cursor, height, width int, empty string) string {
	if len(entries) == 0 {
		return lipglossCenter(empty, width, height)
	}
	cursor = min(max(cursor, 0), len(entries)-1)
	var b strings.Builder
	for i, e := range entries {
		for j, l := range e.lines {
			l = truncateStr(l, width-4)
			switch {
			case j == 0 && i == cursor:
				b.WriteString(itemSelectedStyle.Render("> " + l))
			case j == 0:
				b.WriteString(itemTitleStyle.Render("  " + l))
			default:
				b.WriteString("  " + itemTimeStyle.Render(l))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Keep the selected entry on screen.
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	first := 0
	for i := 0; i < cursor && i < len(entries); i++ {
		first += len(entries[i].lines) + 1
	}
	scroll := 0
	if first >= height {
		scroll = first - height + len(entries[cursor].lines) + 1
	}
	return scrollTo(strings.Join(lines, "\n"), height, scroll)
}

func badgeRow(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = badgeStyle.Render(v)
	}
	return strings.Join(parts, " ")
}
