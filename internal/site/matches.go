package site

import (
	"strconv"
	"time"

	"golang.org/x/net/html"

	"github.com/uiakraken/kraken/internal/countdown"
	"github.com/uiakraken/kraken/internal/dom"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/pages"
	"github.com/uiakraken/kraken/internal/tabs"
)

// MatchCenter renders the next match with its countdown, the upcoming
// fixtures, results and VODs. The three feeds are loaded as one join, so a
// failure leaves every region showing the same placeholder.
func (s *Site) MatchCenter(feeds map[string]feed.Collection, err error, active *tabs.Set) Page {
	regions := []string{"next-match-card", "upcoming-list", "results-list", "vods-list"}
	if err != nil {
		frags := make([]Fragment, len(regions))
		for i, id := range regions {
			frags[i] = Fragment{ID: id, Nodes: message(pages.Unavailable("matches"))}
		}
		return Page{Fragments: append(frags, tabFragments(active)...)}
	}

	now := s.Now()
	sched := pages.Matches(feeds["schedule"], feeds["results"], now)
	frags := []Fragment{
		{ID: "next-match-card", Nodes: s.nextMatch(sched.Next, countdown.Compute(nextTime(sched.Next), now))},
		{ID: "upcoming-list", Nodes: upcomingCards(sched.Upcoming)},
		{ID: "results-list", Nodes: resultCards(sched.Results)},
		{ID: "vods-list", Nodes: vodCards(feeds["media"])},
	}
	return Page{Fragments: append(frags, tabFragments(active)...)}
}

func nextTime(m feed.Record) time.Time {
	t, _ := m.Time("datetime")
	return t
}

func (s *Site) nextMatch(m feed.Record, left countdown.State) []*html.Node {
	if m == nil {
		return []*html.Node{
			dom.El("div", dom.A(dom.Class("next-match-title")), dom.Text(pages.NoNextMatch)),
			dom.El("p", dom.A(dom.Class("next-match-meta")), dom.Text(pages.NoNextMatchHint)),
		}
	}
	return []*html.Node{
		dom.El("div", dom.A(dom.Class("next-match-title")), dom.Text(m.String("title"))),
		dom.El("div", dom.A(dom.Class("next-match-meta")), dom.Text(pages.Join(pages.Badges(m)...))),
		dom.El("div", dom.A(dom.Class("next-match-meta")), dom.Text(pages.Join(pages.MatchTime(m), m.String("venue")))),
		dom.El("div", dom.A(dom.Class("next-match-countdown"), dom.ID("next-match-countdown"),
			dom.Attr("data-target", m.String("datetime"))),
			dom.Text("Starts in "),
			dom.El("span", nil, dom.Text(left.String())),
		),
		dom.El("a", dom.A(dom.Class("btn btn-primary"), dom.Href("index.html#schedule")), dom.Text("View full schedule")),
	}
}

func upcomingCards(coll feed.Collection) []*html.Node {
	if len(coll) == 0 {
		return message(pages.NoUpcoming)
	}
	out := make([]*html.Node, 0, len(coll))
	for _, m := range coll {
		out = append(out, dom.El("article", dom.A(dom.Class("match-card"), dom.Role("listitem")),
			dom.El("div", nil,
				badges("match-badges", pages.Badges(m)),
				dom.El("div", dom.A(dom.Class("match-main-title")), dom.Text(m.String("title"))),
				dom.El("div", dom.A(dom.Class("match-meta-line")), dom.Text(pages.Join(pages.MatchTime(m), m.String("venue")))),
			),
			dom.El("div", dom.A(dom.Class("match-right")),
				dom.El("a", dom.A(dom.Class("btn btn-outline"), dom.Href(linkOr(m.String("stream")))), dom.Text("Watch")),
			),
		))
	}
	return out
}

func resultCards(coll feed.Collection) []*html.Node {
	if len(coll) == 0 {
		return message(pages.NoResults)
	}
	out := make([]*html.Node, 0, len(coll))
	for _, m := range coll {
		resultClass := "badge badge-result-loss"
		if pages.Won(m) {
			resultClass = "badge badge-result-win"
		}
		tags := badges("match-badges", pages.Badges(m))
		dom.Append(tags, dom.El("span", dom.A(dom.Class(resultClass)), dom.Text(m.String("result"))))

		out = append(out, dom.El("article", dom.A(dom.Class("match-card"), dom.Role("listitem")),
			dom.El("div", nil,
				tags,
				dom.El("div", dom.A(dom.Class("match-main-title")), dom.Text(m.String("title"))),
				dom.El("div", dom.A(dom.Class("match-meta-line")), dom.Text(pages.Join(pages.MatchTime(m), "vs "+m.String("opponent")))),
				dom.El("div", dom.A(dom.Class("map-list")), dom.Text(pages.MapsLine(m))),
			),
			dom.El("div", dom.A(dom.Class("match-right")),
				dom.El("div", dom.A(dom.Class("match-score")), dom.Text(m.String("score"))),
				dom.El("a", dom.A(dom.Class("btn btn-outline"), dom.Href(linkOr(m.String("vodUrl"))), dom.Blank()), dom.Text("Watch VOD")),
			),
		))
	}
	return out
}

func vodCards(coll feed.Collection) []*html.Node {
	if len(coll) == 0 {
		return message(pages.NoVods)
	}
	out := make([]*html.Node, 0, len(coll))
	for _, item := range coll {
		meta := ""
		if g := item.String("game"); g != "" {
			meta = "Game: " + g
		}
		out = append(out, dom.El("article", dom.A(dom.Class("vod-card"), dom.Role("listitem")),
			dom.El("div", dom.A(dom.Class("vod-platform")), dom.Text(item.String("platform"))),
			dom.El("a", dom.A(dom.Class("vod-title"), dom.Href(linkOr(item.String("url"))), dom.Blank()), dom.Text(item.String("title"))),
			dom.El("div", dom.A(dom.Class("vod-meta")), dom.Text(meta)),
		))
	}
	return out
}

// tabFragments sets aria-selected and tabindex on every tab-<key> button and
// hides every panel-<key> but the active one.
func tabFragments(set *tabs.Set) []Fragment {
	var out []Fragment
	for _, t := range set.Tabs() {
		active := set.IsActive(t.Key)
		tabindex := "-1"
		if active {
			tabindex = "0"
		}
		out = append(out, Fragment{ID: "tab-" + t.Key, Optional: true, Attrs: dom.A(
			dom.Aria("selected", strconv.FormatBool(active)),
			dom.Attr("tabindex", tabindex),
		)})
		panel := Fragment{ID: "panel-" + t.Key, Optional: true}
		if active {
			panel.Unset = []string{"hidden"}
		} else {
			panel.Attrs = dom.A(dom.Bool("hidden", true))
		}
		out = append(out, panel)
	}
	return out
}
