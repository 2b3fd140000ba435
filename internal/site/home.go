package site

import (
	"golang.org/x/net/html"

	"github.com/uiakraken/kraken/internal/dom"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/pages"
)

// HomeFeeds are the home page feeds. Each region loads on its own, so every
// feed carries its own error.
type HomeFeeds struct {
	Schedule, Roster, News, Partners             feed.Collection
	ScheduleErr, RosterErr, NewsErr, PartnersErr error
}

// Home renders the schedule, roster, first news page and partner strip.
func (s *Site) Home(f HomeFeeds, newsPages int) Page {
	return Page{Regions: []Page{
		region("schedule-grid", "schedule", f.ScheduleErr, func() []*html.Node { return scheduleCards(f.Schedule) }),
		region("roster-grid", "roster", f.RosterErr, func() []*html.Node { return s.rosterCards(f.Roster) }),
		s.HomeNews(f.News, f.NewsErr, Query{Pages: max(1, newsPages)}),
		region("partners-grid", "partners", f.PartnersErr, func() []*html.Node { return s.partnerItems(f.Partners) }),
	}}
}

// region guards one mount point: a load error replaces its content with the
// placeholder, and a host without the mount point skips it, without touching
// sibling regions.
func region(id, what string, err error, build func() []*html.Node) Page {
	if err != nil {
		return Page{Fragments: []Fragment{{ID: id, Nodes: message(pages.Unavailable(what))}}}
	}
	nodes := build()
	if nodes == nil {
		nodes = []*html.Node{}
	}
	return Page{Fragments: []Fragment{{ID: id, Nodes: nodes}}}
}

func scheduleCards(coll feed.Collection) []*html.Node {
	var out []*html.Node
	for _, m := range coll {
		title := m.String("title")
		out = append(out, dom.El("article", dom.A(dom.Class("card match"), dom.Role("listitem")),
			dom.El("div", nil,
				badges("match-meta", pages.Badges(m)),
				dom.El("h3", dom.A(dom.Class("match-title")), dom.Text(title)),
				dom.El("p", dom.A(dom.Class("match-meta")),
					dom.El("span", nil, dom.Text(pages.MatchTime(m))),
					dom.Text(" • "),
					dom.El("span", nil, dom.Text(m.String("venue"))),
				),
			),
			dom.El("div", nil,
				dom.El("a", dom.A(
					dom.Class("btn btn-outline"),
					dom.Href(linkOr(m.String("stream"))),
					dom.Aria("label", "Watch stream for "+title),
				), dom.Text("Watch")),
			),
		))
	}
	return out
}

func (s *Site) rosterCards(coll feed.Collection) []*html.Node {
	var out []*html.Node
	for _, p := range coll {
		handle := p.String("handle")
		tags := dom.El("div", dom.A(dom.Class("tags")))
		for _, t := range p.Strings("tags") {
			dom.Append(tags, dom.El("span", dom.A(dom.Class("badge")), dom.Text(t)))
		}
		out = append(out, dom.El("article", dom.A(dom.Class("card roster-card"), dom.Role("listitem")),
			img("avatar", p.String("name")+" avatar", s.Assets.Player(p.String("avatar"), handle)),
			dom.El("div", nil,
				dom.El("div", dom.A(dom.Class("handle")), dom.Text(handle)),
				dom.El("div", dom.A(dom.Class("role")), dom.Text(pages.Join(p.String("role"), p.String("country")))),
				tags,
			),
		))
	}
	return out
}

func (s *Site) partnerItems(coll feed.Collection) []*html.Node {
	var out []*html.Node
	for _, p := range coll {
		name := p.String("name")
		out = append(out, dom.El("li", dom.A(dom.Role("listitem")),
			dom.El("a", dom.A(dom.Href(linkOr(p.String("url"))), dom.Aria("label", name+" partner")),
				img("", name+" logo", s.Assets.Partner(p.String("logo"), name)),
			),
		))
	}
	return out
}
