package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/pages"
)

func renderPreview(rec feed.Record, p page, width, height, scroll int) string {
	if rec == nil {
		return lipglossCenter("Select an item", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	var meta, desc, link string
	switch p {
	case pageMedia:
		meta = pages.Join(rec.StringOr("platform", "Video"), rec.String("game"), pages.MediaMeta(rec), pages.Date(rec, "date"))
		desc = rec.String("description")
		link = "Watch: " + rec.StringOr("url", "#")
	default:
		meta = pages.Join(rec.StringOr("category", pages.DefaultCategory), pages.Date(rec, "date"), rec.String("game"))
		desc = rec.String("excerpt")
		link = "Read more: " + rec.StringOr("url", "#")
		if rec.String("slug") != "" {
			link += "  (enter to read here)"
		}
	}

	if desc == "" {
		desc = "(No description available)"
	}

	title := previewTitleStyle.Width(contentWidth).Render(rec.StringOr("title", "Untitled"))
	source := previewSourceStyle.Render(meta)
	body := previewBodyStyle.Width(contentWidth).Render(wrapText(desc, contentWidth))
	footer := previewLinkStyle.Width(contentWidth).Render(link)

	content := lipgloss.JoinVertical(lipgloss.Left, title, source, "", body, "", footer)
	return scrollTo(content, height, scroll)
}

// scrollTo drops the first scroll lines and pads or cuts to height.
func scrollTo(content string, height, scroll int) string {
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
