package site

import (
	"golang.org/x/net/html"

	"github.com/uiakraken/kraken/internal/dom"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/listing"
	"github.com/uiakraken/kraken/internal/pages"
)

// News renders the news hub: category select, card grid and load-more button.
func (s *Site) News(coll feed.Collection, err error, q Query) Page {
	if err != nil {
		return Page{Fragments: []Fragment{
			{ID: "news-grid", Nodes: message(pages.Unavailable("news"))},
			disabled("news-load-more"),
		}}
	}

	ctrl := listing.NewController(pages.NewsSpec(s.NewsSize))
	p := paged(ctrl, coll, q)

	var grid []*html.Node
	if p.Empty() {
		grid = message(pages.NoNews)
	}
	for _, item := range p.Items {
		grid = append(grid, s.newsCard(item))
	}
	return Page{Fragments: []Fragment{
		selectOptions("news-category", ctrl.Options("category"), q.State.Dims["category"]),
		{ID: "news-grid", Nodes: grid},
		loadMore("news-load-more", p.Exhausted, pages.NewsExhausted),
	}}
}

func (s *Site) newsCard(item feed.Record) *html.Node {
	title := item.StringOr("title", "Untitled")
	href := linkOr(item.String("url"))
	return dom.El("article", dom.A(dom.Class("news-card"), dom.Role("article")),
		img("news-card-thumb", item.String("title"), s.Assets.Banner(item.String("image"), item.String("title"), 600, 400)),
		dom.El("div", dom.A(dom.Class("news-card-body")),
			dom.El("div", dom.A(dom.Class("news-card-meta")),
				dom.El("span", dom.A(dom.Class("news-card-category")), dom.Text(item.StringOr("category", pages.DefaultCategory))),
				dom.El("span", dom.A(dom.Class("news-card-date")), dom.Text(pages.Date(item, "date"))),
			),
			dom.El("h2", nil, dom.El("a", dom.A(dom.Href(href)), dom.Text(title))),
			dom.El("p", dom.A(dom.Class("news-card-excerpt")), dom.Text(item.String("excerpt"))),
		),
		dom.El("div", dom.A(dom.Class("news-card-footer")),
			dom.El("a", dom.A(dom.Href(href)), dom.Text("Read more")),
			textIf("span", "news-card-game", item.String("game")),
		),
	)
}

// HomeNews renders the home page news list, a page of three at a time in
// feed order.
func (s *Site) HomeNews(coll feed.Collection, err error, q Query) Page {
	if err != nil {
		return Page{Fragments: []Fragment{
			{ID: "news-list", Nodes: message(pages.Unavailable("news"))},
			disabled("load-more-news"),
		}}
	}

	p := paged(listing.NewController(pages.HomeNewsSpec(s.HomeNewsSize)), coll, q)
	list := make([]*html.Node, 0, len(p.Items))
	for _, item := range p.Items {
		list = append(list, dom.El("article", dom.A(dom.Class("news-item"), dom.Role("listitem")),
			dom.El("h3", nil, dom.El("a", dom.A(dom.Href(linkOr(item.String("url")))), dom.Text(item.String("title")))),
			dom.El("div", dom.A(dom.Class("news-meta")), dom.Text(pages.Date(item, "date"))),
			dom.El("p", nil, dom.Text(item.String("excerpt"))),
		))
	}
	return Page{Fragments: []Fragment{
		{ID: "news-list", Nodes: list},
		loadMore("load-more-news", p.Exhausted, pages.HomeNewsExhausted),
	}}
}
