package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/uiakraken/kraken/internal/countdown"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/pages"
)

func renderNextMatch(next feed.Record, left countdown.State, width int) string {
	if next == nil {
		return cardStyle.Width(width - 2).Render(
			itemTitleStyle.Render(pages.NoNextMatch) + "\n" + helpDimStyle.Render(pages.NoNextMatchHint),
		)
	}
	lines := []string{
		itemTitleStyle.Render(next.String("title")),
		itemTimeStyle.Render(pages.Join(pages.Badges(next)...)),
		itemTimeStyle.Render(pages.Join(pages.MatchTime(next), next.String("venue"))),
		"Starts in " + countdownStyle.Render(left.String()),
	}
	return cardStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// matchEntries lists the active tab's records.
func (a *App) matchEntries() ([]entry, string) {
	switch a.tabs.ActiveKey() {
	case "results":
		out := make([]entry, 0, len(a.schedule.Results))
		for _, m := range a.schedule.Results {
			result := lossStyle.Render(m.String("result"))
			if pages.Won(m) {
				result = winStyle.Render(m.String("result"))
			}
			lines := []string{
				m.String("title"),
				pages.Join(pages.MatchTime(m), "vs "+m.String("opponent")) + "  " + m.String("score") + " " + result,
			}
			if maps := pages.MapsLine(m); maps != "" {
				lines = append(lines, maps)
			}
			out = append(out, entry{lines: lines, link: m.String("vodUrl")})
		}
		return out, pages.NoResults
	case "vods":
		out := make([]entry, 0, len(a.vods))
		for _, v := range a.vods {
			meta := v.String("platform")
			if g := v.String("game"); g != "" {
				meta = pages.Join(meta, "Game: "+g)
			}
			out = append(out, entry{lines: []string{v.String("title"), meta}, link: v.String("url")})
		}
		return out, pages.NoVods
	default:
		out := make([]entry, 0, len(a.schedule.Upcoming))
		for _, m := range a.schedule.Upcoming {
			out = append(out, entry{
				lines: []string{m.String("title"), pages.Join(pages.MatchTime(m), m.String("venue")), pages.Join(pages.Badges(m)...)},
				link:  m.String("stream"),
			})
		}
		return out, pages.NoUpcoming
	}
}

func (a *App) renderMatches(width, height int) string {
	if a.loadErr != nil {
		return lipglossCenter(pages.Unavailable("matches"), width, height)
	}
	if a.loading {
		return lipglossCenter(a.spinner.View()+" Loading matches...", width, height)
	}
	card := renderNextMatch(a.schedule.Next, a.left, width)
	strip := renderTabStrip(a.tabs, width)
	rest := height - lipgloss.Height(card) - lipgloss.Height(strip) - 1
	if rest < 3 {
		rest = 3
	}
	entries, empty := a.matchEntries()
	return lipgloss.JoinVertical(lipgloss.Left, card, strip, "", renderEntries(entries, a.cursor, rest, width, empty))
}
