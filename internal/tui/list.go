package tui

import (
	"strings"

	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/pages"
)

// listItem is what the list pane shows for one record.
type listItem struct {
	title string
	meta  string
	when  string
}

func newsItem(r feed.Record) listItem {
	return listItem{
		title: r.StringOr("title", "Untitled"),
		meta:  r.StringOr("category", pages.DefaultCategory),
		when:  pages.Date(r, "date"),
	}
}

func mediaItem(r feed.Record) listItem {
	return listItem{
		title: r.StringOr("title", "Untitled"),
		meta:  pages.Join(r.StringOr("platform", "Video"), r.String("game")),
		when:  pages.Date(r, "date"),
	}
}

func renderListItem(it listItem, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(it.title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(it.title, width-4))
	}

	meta := "  " + itemSourceStyle.Render(it.meta)
	if it.when != "" {
		meta += " " + itemTimeStyle.Render("· "+it.when)
	}

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// renderList shows the visible window of items around cursor. footer is the
// load-more line drawn under the last item.
func renderList(items []listItem, cursor, height, width int, empty, footer string) string {
	if len(items) == 0 {
		return lipglossCenter(empty, width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines; keep one line for the footer
	itemHeight := 3
	visible := (height - 1) / itemHeight
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(items[i], i == cursor, width))
		b.WriteString("\n")
	}
	if end == len(items) && footer != "" {
		b.WriteString(itemTimeStyle.Render("  " + footer))
	}

	return strings.TrimRight(b.String(), "\n")
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
