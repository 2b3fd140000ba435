package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uiakraken/kraken/internal/pages"
)

func (a *App) renderArticle(width, height int) string {
	if a.loading {
		return lipglossCenter(a.spinner.View()+" Loading article...", width, height)
	}
	if a.notFound || a.detail == nil {
		return lipglossCenter("Article not found", width, height/2) + "\n\n" +
			lipglossCenter("We couldn’t find this article. It may have been moved or removed.", width, 0) + "\n\n" +
			lipglossCenter("esc  Back to all news", width, 0)
	}

	art := a.detail
	contentWidth := min(width-4, 100)
	paras := pages.Paragraphs(art)

	lines := []string{
		itemSourceStyle.Render(art.StringOr("category", pages.DefaultCategory)),
		previewTitleStyle.Width(contentWidth).Render(art.StringOr("title", "Untitled")),
		itemTimeStyle.Render(pages.Join(pages.Date(art, "date"), art.String("game"), pages.ReadingTime(paras))),
		"",
	}
	for i, p := range paras {
		text := wrapText(pages.PlainText(p), contentWidth)
		if i == 0 {
			lines = append(lines, lipgloss.NewStyle().Bold(true).Render(text))
		} else {
			lines = append(lines, previewBodyStyle.Render(text))
		}
		lines = append(lines, "")
	}
	if u := art.String("url"); u != "" {
		lines = append(lines, previewLinkStyle.Render("o  open "+u))
	}
	body := lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(lines, "\n"))
	return scrollTo(body, height, a.previewScroll)
}

func (a *App) renderPlayer(width, height int) string {
	if a.loading {
		return lipglossCenter(a.spinner.View()+" Loading player...", width, height)
	}
	if a.notFound || a.detail == nil {
		return lipglossCenter("Player · Unknown", width, height/2) + "\n\n" +
			lipglossCenter("Not found. This player profile could not be loaded.", width, 0) + "\n\n" +
			lipglossCenter("esc  Back to roster", width, 0)
	}

	p := a.detail
	mainW := width * 3 / 5
	main := []string{
		itemSourceStyle.Render(pages.PlayerMeta(p)),
		previewTitleStyle.UnsetMarginBottom().Render(p.String("handle")),
		p.String("name"),
		"",
		previewBodyStyle.Render(wrapText(p.String("bio"), mainW-4)),
	}
	for _, s := range pages.Socials(p, "twitter", "twitch", "youtube") {
		main = append(main, previewLinkStyle.UnsetMarginTop().Render(s.Label+": "+s.URL))
	}
	if hl := p.Records("highlights"); len(hl) > 0 {
		main = append(main, sectionStyle.Render("Highlights"))
		for _, h := range hl {
			line := "• " + h.StringOr("title", "Highlight")
			if pl := h.String("platform"); pl != "" {
				line += " (" + pl + ")"
			}
			main = append(main, line)
		}
	}

	var side []string
	if stats := pages.Stats(p); len(stats) > 0 {
		side = append(side, sectionStyle.Render("Stats"))
		for _, st := range stats {
			side = append(side, helpDimStyle.Render(st.Label)+"  "+st.Value)
		}
	}
	if tags := p.Strings("tags"); len(tags) > 0 {
		side = append(side, sectionStyle.Render("Profile"), badgeRow(tags))
	}
	if pool := p.Strings("agentPool"); len(pool) > 0 {
		side = append(side, sectionStyle.Render("Pool"), badgeRow(pool))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(mainW).PaddingLeft(2).Render(strings.Join(main, "\n")),
		lipgloss.NewStyle().Width(width-mainW).Render(strings.Join(side, "\n")),
	)
	return scrollTo(body, height, a.previewScroll)
}
