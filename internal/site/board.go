package site

import (
	"golang.org/x/net/html"

	"github.com/uiakraken/kraken/internal/dom"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/pages"
)

// Board renders the leadership feed split into board members and stakeholders.
func (s *Site) Board(coll feed.Collection, err error) Page {
	if err != nil {
		return Page{Fragments: []Fragment{
			{ID: "board-grid", Nodes: message(pages.LeadershipUnavailable)},
			{ID: "stakeholder-grid", Nodes: []*html.Node{}},
		}}
	}
	board, stakeholders := pages.Leadership(coll)
	return Page{Fragments: []Fragment{
		{ID: "board-grid", Nodes: s.personCards(board)},
		{ID: "stakeholder-grid", Nodes: s.personCards(stakeholders)},
	}}
}

func (s *Site) personCards(coll feed.Collection) []*html.Node {
	out := make([]*html.Node, 0, len(coll))
	for _, p := range coll {
		name := p.String("name")

		focus := dom.El("div", dom.A(dom.Class("board-focus")))
		for _, f := range p.Strings("focus") {
			dom.Append(focus, dom.El("span", dom.A(dom.Class("badge")), dom.Text(f)))
		}
		socials := dom.El("div", dom.A(dom.Class("player-socials")))
		for _, l := range pages.Socials(p, "linkedin", "website") {
			dom.Append(socials, dom.El("a", dom.A(dom.Href(l.URL), dom.Blank()), dom.Text(l.Label)))
		}

		out = append(out, dom.El("article", dom.A(dom.Class("board-card"), dom.Role("article")),
			dom.El("div", dom.A(dom.Class("board-photo-wrap")),
				img("board-photo", name, s.Assets.Banner(p.String("photo"), name, 600, 600)),
			),
			dom.El("div", dom.A(dom.Class("board-card-body")),
				dom.El("div", dom.A(dom.Class("board-name")), dom.Text(name)),
				dom.El("div", dom.A(dom.Class("board-role")), dom.Text(p.String("role"))),
				dom.El("p", nil, dom.Text(p.String("bio"))),
				focus,
				socials,
			),
		))
	}
	return out
}
