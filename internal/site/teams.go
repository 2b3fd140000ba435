package site

import (
	"encoding/json"
	"net/url"
	"strconv"

	"golang.org/x/net/html"

	"github.com/uiakraken/kraken/internal/dom"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/pages"
	"github.com/uiakraken/kraken/internal/tabs"
)

// Teams renders the tab strip and one panel per team, with SportsTeam
// structured data for each. pageURL is the canonical page address the
// structured data links to.
func (s *Site) Teams(coll feed.Collection, err error, set *tabs.Set, pageURL string) Page {
	if err != nil {
		return Page{Fragments: []Fragment{
			{ID: "team-tabs", Nodes: []*html.Node{}},
			{ID: "panels", Nodes: message(pages.Unavailable("teams"))},
		}}
	}

	var tabNodes, panels, head []*html.Node
	for _, team := range coll {
		key := team.String("key")
		active := set.IsActive(key)
		tabNodes = append(tabNodes, teamTab(team, active))
		panels = append(panels, s.teamPanel(team, active))
		head = append(head, teamSchema(team, pageURL))
	}
	return Page{
		Head: head,
		Fragments: []Fragment{
			{ID: "team-tabs", Nodes: tabNodes, Attrs: dom.A(dom.Role("tablist"))},
			{ID: "panels", Nodes: panels},
		},
	}
}

func teamTab(team feed.Record, active bool) *html.Node {
	key := team.String("key")
	tabindex := "-1"
	if active {
		tabindex = "0"
	}
	return dom.El("button", dom.A(
		dom.Class("tab"),
		dom.ID("tab-"+key),
		dom.Role("tab"),
		dom.Aria("selected", strconv.FormatBool(active)),
		dom.Aria("controls", "panel-"+key),
		dom.Attr("tabindex", tabindex),
	), dom.Text(team.String("title")))
}

func (s *Site) teamPanel(team feed.Record, active bool) *html.Node {
	key, title := team.String("key"), team.String("title")

	actions := dom.El("div", dom.A(dom.Class("team-actions")))
	for _, cta := range team.Records("ctas") {
		dom.Append(actions, dom.El("a", dom.A(dom.Class("btn btn-outline"), dom.Href(cta.String("href"))), dom.Text(cta.String("label"))))
	}

	panel := dom.El("section", dom.A(
		dom.Class("panel"),
		dom.ID("panel-"+key),
		dom.Role("tabpanel"),
		dom.Aria("labelledby", "tab-"+key),
		dom.Bool("hidden", !active),
	),
		dom.El("div", dom.A(dom.Class("team-header")),
			img("team-badge", title+" badge", s.Assets.Team(team.String("badge"), title)),
			dom.El("div", dom.A(dom.Class("team-title")),
				dom.El("h3", nil, dom.Text(title)),
				dom.El("div", dom.A(dom.Class("team-meta")), dom.Text(pages.Join(team.String("status"), team.String("coach")))),
			),
			actions,
		),
		dom.El("div", dom.A(dom.Class("subhead")), dom.Text("Active Roster")),
	)

	roster := dom.El("div", dom.A(dom.Class("grid")))
	for _, p := range team.Records("roster") {
		dom.Append(roster, s.playerCard(p))
	}
	dom.Append(panel, roster)

	if staff := team.Records("staff"); len(staff) > 0 {
		wrap := dom.El("div", dom.A(dom.Class("staff")))
		for _, m := range staff {
			dom.Append(wrap, dom.El("span", dom.A(dom.Class("badge")), dom.Text(pages.StaffLine(m))))
		}
		dom.Append(panel, dom.El("div", dom.A(dom.Class("subhead")), dom.Text("Staff")), wrap)
	}

	if achievements := team.Strings("achievements"); len(achievements) > 0 {
		ul := dom.El("ul", dom.A(dom.Class("achievements")))
		for _, a := range achievements {
			dom.Append(ul, dom.El("li", nil, dom.Text(a)))
		}
		dom.Append(panel, dom.El("div", dom.A(dom.Class("subhead")), dom.Text("Recent Achievements")), ul)
	}
	return panel
}

// ProfileURL is the player profile link used by roster cards.
func ProfileURL(handle string) string {
	return "players/profile.html?handle=" + url.QueryEscape(handle)
}

func (s *Site) playerCard(p feed.Record) *html.Node {
	handle := p.String("handle")
	return dom.El("a", dom.A(
		dom.Class("card player"),
		dom.Href(ProfileURL(handle)),
		dom.Aria("label", "View profile for "+handle),
	),
		img("avatar", p.String("name")+" avatar", s.Assets.Player(p.String("avatar"), handle)),
		dom.El("div", nil,
			dom.El("div", dom.A(dom.Class("handle")), dom.Text(handle)),
			dom.El("div", dom.A(dom.Class("role")), dom.Text(p.String("role"))),
		),
	)
}

type schemaPerson struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AdditionalName string `json:"additionalName"`
	JobTitle       string `json:"jobTitle"`
}

type schemaTeam struct {
	Context string         `json:"@context"`
	Type    string         `json:"@type"`
	Name    string         `json:"name"`
	Sport   string         `json:"sport"`
	URL     string         `json:"url"`
	Member  []schemaPerson `json:"member"`
}

func teamSchema(team feed.Record, pageURL string) *html.Node {
	st := schemaTeam{
		Context: "https://schema.org",
		Type:    "SportsTeam",
		Name:    "UiA Kraken — " + team.String("title"),
		Sport:   "Esports",
		URL:     pageURL + "#" + team.String("key"),
		Member:  []schemaPerson{},
	}
	for _, p := range team.Records("roster") {
		st.Member = append(st.Member, schemaPerson{
			Type:           "Person",
			Name:           p.String("name"),
			AdditionalName: p.String("handle"),
			JobTitle:       p.String("role"),
		})
	}
	// json.Marshal escapes <, > and &, so the payload cannot close the script.
	b, _ := json.Marshal(st)
	return dom.El("script", dom.A(dom.Attr("type", "application/ld+json")), dom.Text(string(b)))
}
