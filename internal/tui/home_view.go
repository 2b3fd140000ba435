package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	`██╗  ██╗██████╗  █████╗ ██╗  ██╗███████╗███╗   ██╗`,
	`██║ ██╔╝██╔══██╗██╔══██╗██║ ██╔╝██╔════╝████╗  ██║`,
	`█████╔╝ ██████╔╝███████║█████╔╝ █████╗  ██╔██╗ ██║`,
	`██╔═██╗ ██╔══██╗██╔══██║██╔═██╗ ██╔══╝  ██║╚██╗██║`,
	`██║  ██╗██║  ██║██║  ██║██║  ██╗███████╗██║ ╚████║`,
	`╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═══╝`,
}

var homeMenu = []struct {
	key   string
	label string
	page  page
}{
	{"1", "News", pageNews},
	{"2", "Media", pageMedia},
	{"3", "Match Center", pageMatches},
	{"4", "Teams", pageTeams},
	{"5", "Board & Stakeholders", pageBoard},
}

func renderHomeScreen(width, height int) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorText)

	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, helpDimStyle.Render("UiA Kraken Esports"))
	lines = append(lines, "")

	for _, item := range homeMenu {
		lines = append(lines, "          "+keyStyle.Render("["+item.key+"]")+"  "+labelStyle.Render(item.label))
	}
	lines = append(lines, "")
	lines = append(lines, "          "+keyStyle.Render("[q]")+"  "+labelStyle.Render("Quit"))

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
