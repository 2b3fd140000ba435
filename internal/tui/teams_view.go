package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/pages"
)

func (a *App) activeTeam() feed.Record {
	if a.tabs == nil {
		return nil
	}
	rec, _ := feed.Find(a.teams, "key", a.tabs.ActiveKey(), false)
	return rec
}

// rosterEntries lists the active team's players; the link is the handle.
func (a *App) rosterEntries() []entry {
	team := a.activeTeam()
	roster := team.Records("roster")
	out := make([]entry, 0, len(roster))
	for _, p := range roster {
		out = append(out, entry{
			lines: []string{p.String("handle"), pages.Join(p.String("name"), p.String("role"))},
			link:  p.String("handle"),
		})
	}
	return out
}

func (a *App) renderTeams(width, height int) string {
	if a.loadErr != nil {
		return lipglossCenter(pages.Unavailable("teams"), width, height)
	}
	if a.loading {
		return lipglossCenter(a.spinner.View()+" Loading teams...", width, height)
	}
	team := a.activeTeam()
	if team == nil {
		return lipglossCenter("No teams found", width, height)
	}

	strip := renderTabStrip(a.tabs, width)
	head := []string{
		previewTitleStyle.UnsetMarginBottom().Render(team.String("title")),
		itemTimeStyle.Render(pages.Join(team.String("status"), team.String("coach"))),
	}

	var side []string
	if staff := team.Records("staff"); len(staff) > 0 {
		side = append(side, sectionStyle.Render("Staff"))
		for _, m := range staff {
			side = append(side, badgeStyle.Render(pages.StaffLine(m)))
		}
	}
	if ach := team.Strings("achievements"); len(ach) > 0 {
		side = append(side, sectionStyle.Render("Recent Achievements"))
		for _, s := range ach {
			side = append(side, "• "+s)
		}
	}

	listW := width / 2
	rest := height - lipgloss.Height(strip) - len(head) - 3
	if rest < 3 {
		rest = 3
	}
	roster := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Active Roster"),
		renderEntries(a.rosterEntries(), a.cursor, rest, listW, "No players listed"),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listW).Render(roster),
		lipgloss.NewStyle().Width(width-listW).Render(strings.Join(side, "\n")),
	)
	return lipgloss.JoinVertical(lipgloss.Left, strip, strings.Join(head, "\n"), body)
}

func (a *App) renderBoard(width, height int) string {
	if a.loadErr != nil {
		return lipglossCenter(pages.LeadershipUnavailable, width, height)
	}
	if a.loading {
		return lipglossCenter(a.spinner.View()+" Loading leadership...", width, height)
	}
	var lines []string
	section := func(title string, people feed.Collection) {
		lines = append(lines, sectionStyle.Render(title))
		for _, p := range people {
			lines = append(lines, itemTitleStyle.Render(p.String("name"))+"  "+itemSourceStyle.Render(p.String("role")))
			if bio := p.String("bio"); bio != "" {
				lines = append(lines, previewBodyStyle.Render(wrapText(bio, width-4)))
			}
			if focus := p.Strings("focus"); len(focus) > 0 {
				lines = append(lines, badgeRow(focus))
			}
			for _, s := range pages.Socials(p, "linkedin", "website") {
				lines = append(lines, previewLinkStyle.UnsetMarginTop().Render(s.Label+": "+s.URL))
			}
			lines = append(lines, "")
		}
	}
	section("Board", a.board)
	section("Stakeholders", a.stakeholders)
	return scrollTo(strings.Join(lines, "\n"), height, a.previewScroll)
}
