package site

import (
	"golang.org/x/net/html"

	"github.com/uiakraken/kraken/internal/dom"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/listing"
	"github.com/uiakraken/kraken/internal/pages"
)

// Media renders the media library: platform and game selects, card grid and
// load-more button.
func (s *Site) Media(coll feed.Collection, err error, q Query) Page {
	if err != nil {
		return Page{Fragments: []Fragment{
			{ID: "media-grid", Nodes: message(pages.Unavailable("media"))},
			disabled("media-load-more"),
		}}
	}

	ctrl := listing.NewController(pages.MediaSpec(s.MediaSize))
	p := paged(ctrl, coll, q)

	var grid []*html.Node
	if p.Empty() {
		grid = message(pages.NoMedia)
	}
	for _, item := range p.Items {
		grid = append(grid, s.mediaCard(item))
	}
	return Page{Fragments: []Fragment{
		selectOptions("media-platform", ctrl.Options("platform"), q.State.Dims["platform"]),
		selectOptions("media-game", ctrl.Options("game"), q.State.Dims["game"]),
		{ID: "media-grid", Nodes: grid},
		loadMore("media-load-more", p.Exhausted, pages.MediaExhausted),
	}}
}

func (s *Site) mediaCard(item feed.Record) *html.Node {
	href := linkOr(item.String("url"))
	return dom.El("article", dom.A(dom.Class("media-card"), dom.Role("article")),
		dom.El("div", dom.A(dom.Class("media-thumb-wrap")),
			img("media-thumb", item.String("title"), s.Assets.Banner(item.String("thumbnail"), item.StringOr("title", "kraken"), 640, 360)),
			dom.El("span", dom.A(dom.Class("media-chip platform")), dom.Text(item.StringOr("platform", "Video"))),
			textIf("span", "media-chip game", item.String("game")),
		),
		dom.El("div", dom.A(dom.Class("media-body")),
			dom.El("a", dom.A(dom.Class("media-title"), dom.Href(href), dom.Blank()), dom.Text(item.StringOr("title", "Untitled"))),
			dom.El("div", dom.A(dom.Class("media-meta")), dom.Text(pages.MediaMeta(item))),
		),
		dom.El("div", dom.A(dom.Class("media-footer")),
			dom.El("a", dom.A(dom.Href(href), dom.Blank()), dom.Text("Watch")),
			textIf("span", "media-date", pages.Date(item, "date")),
		),
	)
}
