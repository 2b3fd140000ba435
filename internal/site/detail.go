package site

import (
	"golang.org/x/net/html"

	"github.com/uiakraken/kraken/internal/dom"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/pages"
)

const titleSuffix = " — UiA Kraken Esports"

// Article renders one news article. A nil record (missing slug, unknown slug
// or a failed load) renders the not-found view.
func (s *Site) Article(article feed.Record) Page {
	if article == nil {
		return articleNotFound()
	}
	title := article.StringOr("title", "Untitled")
	paras := pages.Paragraphs(article)

	body := make([]*html.Node, 0, len(paras))
	for i, p := range paras {
		// Bodies may carry inline markup.
		body = append(body, dom.Raw("p", dom.A(dom.If(i == 0, dom.Class("lead"))), p))
	}

	hero := []*html.Node{
		dom.El("div", nil,
			dom.El("div", dom.A(dom.Class("article-category")), dom.Text(article.StringOr("category", pages.DefaultCategory))),
			dom.El("h1", nil, dom.Text(title)),
			dom.El("div", dom.A(dom.Class("article-meta")), dom.Text(pages.Join(pages.Date(article, "date"), article.String("game")))),
			dom.El("div", dom.A(dom.Class("article-reading-time")), dom.Text(pages.ReadingTime(paras))),
		),
		dom.El("div", nil,
			dom.El("div", dom.A(dom.Class("article-hero-thumb-wrap")),
				img("article-hero-thumb", article.String("title"), s.Assets.Banner(article.String("image"), article.StringOr("title", "kraken"), 800, 500)),
			),
		),
	}

	return Page{
		Title: title + titleSuffix,
		Fragments: []Fragment{
			{ID: "article-breadcrumb-title", Nodes: []*html.Node{dom.Text(article.StringOr("title", "Article"))}, Optional: true},
			{ID: "article-hero-inner", Nodes: hero},
			{ID: "article-content", Nodes: body},
		},
	}
}

func articleNotFound() Page {
	return Page{Fragments: []Fragment{
		{ID: "article-hero-inner", Nodes: []*html.Node{
			dom.El("div", nil,
				dom.El("h1", nil, dom.Text("Article not found")),
				dom.El("p", dom.A(dom.Class("lead")), dom.Text("We couldn’t find this article. It may have been moved or removed.")),
			),
		}},
		{ID: "article-content", Nodes: []*html.Node{
			dom.El("p", nil, dom.El("a", dom.A(dom.Href("news.html"), dom.Class("btn btn-outline")), dom.Text("Back to all news"))),
		}},
	}}
}

// Player renders a player profile, or the not-found view for a nil record.
func (s *Site) Player(player feed.Record) Page {
	if player == nil {
		return playerNotFound()
	}
	handle := player.String("handle")

	socials := dom.El("div", dom.A(dom.Class("player-socials")))
	for _, l := range pages.Socials(player, "twitter", "twitch", "youtube") {
		dom.Append(socials, dom.El("a", dom.A(dom.Href(l.URL), dom.Blank()), dom.Text(l.Label)))
	}

	avatar := s.Assets.Player(player.String("avatar"), handle)
	hero := []*html.Node{
		dom.El("div", nil,
			dom.El("div", dom.A(dom.Class("player-main-meta")), dom.Text(pages.PlayerMeta(player))),
			dom.El("div", dom.A(dom.Class("player-handle")), dom.Text(handle)),
			dom.El("div", dom.A(dom.Class("player-name")), dom.Text(player.String("name"))),
			dom.El("p", dom.A(dom.Class("player-tagline")), dom.Text(player.String("bio"))),
			socials,
		),
		dom.El("div", nil,
			dom.El("div", dom.A(dom.Class("player-hero-avatar-wrap")),
				img("player-hero-avatar", player.StringOr("name", handle)+" avatar", avatar),
			),
		),
	}

	main := dom.El("div", dom.A(dom.Class("player-main")),
		dom.El("div", dom.A(dom.Class("player-bio")), textIf("p", "", player.String("bio"))),
		highlights(player.Records("highlights")),
	)

	sidebar := dom.El("div", dom.A(dom.Class("player-sidebar")))
	if stats := pages.Stats(player); len(stats) > 0 {
		grid := dom.El("div", dom.A(dom.Class("player-stats-grid")))
		for _, st := range stats {
			dom.Append(grid,
				dom.El("div", dom.A(dom.Class("player-stat-label")), dom.Text(st.Label)),
				dom.El("div", dom.A(dom.Class("player-stat-value")), dom.Text(st.Value)),
			)
		}
		dom.Append(sidebar, sidebarCard("Stats", grid))
	}
	if tags := player.Strings("tags"); len(tags) > 0 {
		dom.Append(sidebar, sidebarCard("Profile", badges("player-tags", tags)))
	}
	if pool := player.Strings("agentPool"); len(pool) > 0 {
		dom.Append(sidebar, sidebarCard("Pool", badges("player-agents", pool)))
	}

	return Page{
		Title: handle + titleSuffix,
		Fragments: []Fragment{
			{ID: "player-hero-inner", Nodes: hero},
			{ID: "player-layout", Nodes: []*html.Node{main, sidebar}},
		},
	}
}

func highlights(coll feed.Collection) *html.Node {
	if len(coll) == 0 {
		return nil
	}
	ul := dom.El("ul", nil)
	for _, h := range coll {
		li := dom.El("li", nil, dom.El("a", dom.A(dom.Href(linkOr(h.String("url"))), dom.Blank()), dom.Text(h.StringOr("title", "Highlight"))))
		if p := h.String("platform"); p != "" {
			dom.Append(li, dom.Text(" ("+p+")"))
		}
		dom.Append(ul, li)
	}
	return dom.El("section", dom.A(dom.Class("player-highlights")), dom.El("h3", nil, dom.Text("Highlights")), ul)
}

func sidebarCard(title string, content *html.Node) *html.Node {
	return dom.El("div", dom.A(dom.Class("player-sidebar-card")), dom.El("h3", nil, dom.Text(title)), content)
}

func playerNotFound() Page {
	return Page{Fragments: []Fragment{
		{ID: "player-hero-inner", Nodes: []*html.Node{
			dom.El("div", nil,
				dom.El("div", dom.A(dom.Class("player-main-meta")), dom.El("span", nil, dom.Text("Player"))),
				dom.El("div", dom.A(dom.Class("player-handle")), dom.Text("Unknown")),
				dom.El("div", dom.A(dom.Class("player-name")), dom.Text("Not found")),
				dom.El("p", dom.A(dom.Class("player-tagline")), dom.Text("This player profile could not be loaded.")),
			),
		}},
		{ID: "player-layout", Nodes: []*html.Node{
			dom.El("p", nil, dom.El("a", dom.A(dom.Href("../index.html#roster"), dom.Class("btn btn-outline")), dom.Text("Back to roster"))),
		}},
	}}
}
