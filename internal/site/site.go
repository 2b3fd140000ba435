// Package site builds the HTML fragments of every page and mounts them into
// the named containers of a host document.
package site

import (
	"io"
	"time"

	"golang.org/x/net/html"

	"github.com/uiakraken/kraken/internal/config"
	"github.com/uiakraken/kraken/internal/dom"
	"github.com/uiakraken/kraken/internal/listing"
)

// Fragment is the content of one mount point.
type Fragment struct {
	ID    string
	Nodes []*html.Node
	// Attrs are set on the mount point itself; Unset names attributes to drop.
	Attrs []html.Attribute
	Unset []string
	// Optional mount points may be missing from the host.
	Optional bool
}

// Page is everything a page script would write into its host document.
type Page struct {
	Title     string
	Head      []*html.Node
	Fragments []Fragment
	// Regions mount independently of each other and of Fragments.
	Regions []Page
}

// all returns the fragments of every region followed by the page's own.
func (p Page) all() []Fragment {
	var out []Fragment
	for _, r := range p.Regions {
		out = append(out, r.all()...)
	}
	return append(out, p.Fragments...)
}

// Fragment returns the fragment for mount point id.
func (p Page) Fragment(id string) (Fragment, bool) {
	for _, f := range p.all() {
		if f.ID == id {
			return f, true
		}
	}
	return Fragment{}, false
}

// Mountable reports whether doc has every required mount point of the page.
func (p Page) Mountable(doc *html.Node) bool {
	for _, f := range p.Fragments {
		if !f.Optional && dom.FindID(doc, f.ID) == nil {
			return false
		}
	}
	return true
}

// Mount writes the page into doc and returns the ids it filled. A host
// missing any required mount point is left untouched; each region is checked
// on its own. A fragment with nil Nodes keeps the mount point's children.
func (p Page) Mount(doc *html.Node) []string {
	var mounted []string
	for _, r := range p.Regions {
		mounted = append(mounted, r.Mount(doc)...)
	}
	if !p.Mountable(doc) {
		return mounted
	}
	for _, f := range p.Fragments {
		n := dom.FindID(doc, f.ID)
		if n == nil {
			continue
		}
		if f.Nodes != nil {
			dom.Mount(doc, f.ID, f.Nodes...)
		}
		dom.SetBusy(n, false)
		for _, a := range f.Attrs {
			dom.SetAttr(n, a.Key, a.Val)
		}
		for _, k := range f.Unset {
			dom.RemoveAttr(n, k)
		}
		mounted = append(mounted, f.ID)
	}
	if p.Title != "" {
		if t := dom.FindTag(doc, "title"); t != nil {
			dom.Clear(t)
			dom.Append(t, dom.Text(p.Title))
		}
	}
	if head := dom.FindTag(doc, "head"); head != nil {
		dom.Append(head, p.Head...)
	}
	return mounted
}

// Render writes the page without a host: each fragment inside a div carrying
// its mount point id.
func (p Page) Render(w io.Writer) error {
	nodes := append([]*html.Node{}, p.Head...)
	for _, r := range p.Regions {
		nodes = append(nodes, r.Head...)
	}
	for _, f := range p.all() {
		attrs := dom.A(append([]html.Attribute{dom.ID(f.ID)}, f.Attrs...)...)
		attrs = append(attrs, dom.Busy(false))
		nodes = append(nodes, dom.El("div", attrs, f.Nodes...))
	}
	return dom.Render(w, nodes...)
}

// Site renders pages with the configured asset base and page sizes.
type Site struct {
	Assets       Assets
	NewsSize     int
	MediaSize    int
	HomeNewsSize int
	Now          func() time.Time
}

func New(cfg *config.Config) *Site {
	return &Site{
		Assets:       Assets{Base: cfg.Assets},
		NewsSize:     cfg.NewsPageSize(),
		MediaSize:    cfg.MediaPageSize(),
		HomeNewsSize: cfg.HomeNewsPageSize(),
		Now:          time.Now,
	}
}

// Query is the list state of a paged page: the filter and how many pages have
// been revealed (1 after the initial render).
type Query struct {
	State listing.FilterState
	Pages int
}

func paged[T any](ctrl *listing.Controller[T], coll []T, q Query) listing.Page[T] {
	ctrl.Reset(coll)
	ctrl.SetFilter(q.State)
	for i := 1; i < q.Pages && !ctrl.Exhausted(); i++ {
		ctrl.LoadMore()
	}
	items := ctrl.Visible()
	return listing.Page[T]{
		Items:     items,
		Reset:     true,
		Shown:     len(items),
		Total:     ctrl.Total(),
		Exhausted: ctrl.Exhausted(),
	}
}

// message is a region placeholder paragraph.
func message(text string) []*html.Node {
	return []*html.Node{dom.El("p", nil, dom.Text(text))}
}

// loadMore fills a load-more button: its label, and disabled once exhausted.
func loadMore(id string, exhausted bool, exhaustedLabel string) Fragment {
	f := Fragment{
		ID:    id,
		Nodes: []*html.Node{dom.Text(listing.LoadMoreLabel(exhausted, exhaustedLabel))},
	}
	if exhausted {
		f.Attrs = dom.A(dom.Bool("disabled", true))
	} else {
		f.Unset = []string{"disabled"}
	}
	return f
}

func disabled(id string) Fragment {
	return Fragment{ID: id, Attrs: dom.A(dom.Bool("disabled", true))}
}

// selectOptions fills a select with "All" plus values, marking the selected one.
func selectOptions(id string, values []string, selected string) Fragment {
	nodes := []*html.Node{dom.El("option", dom.A(dom.Attr("value", ""), dom.Bool("selected", selected == "")), dom.Text("All"))}
	for _, v := range values {
		nodes = append(nodes, dom.El("option", dom.A(dom.Attr("value", v), dom.Bool("selected", v == selected)), dom.Text(v)))
	}
	return Fragment{ID: id, Nodes: nodes}
}

func textIf(tag, class, text string) *html.Node {
	if text == "" {
		return nil
	}
	return dom.El(tag, dom.A(dom.If(class != "", dom.Class(class))), dom.Text(text))
}

func badges(class string, values []string) *html.Node {
	n := dom.El("div", dom.A(dom.Class(class)))
	for _, v := range values {
		dom.Append(n, dom.El("span", dom.A(dom.Class("badge")), dom.Text(v)))
	}
	return n
}

func linkOr(u string) string {
	if u == "" {
		return "#"
	}
	return u
}
