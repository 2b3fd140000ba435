// Package dom builds HTML fragments declaratively: every element is a tag,
// its attributes and its children.
package dom

import (
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var policy = bluemonday.UGCPolicy()

// El creates an element. Nil children are skipped so optional parts can be
// passed inline.
func El(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	Append(n, children...)
	return n
}

// Text creates an escaped text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Raw creates an element whose content is user-supplied markup, sanitised
// with a UGC policy before parsing. Scripts, handlers and unknown tags are dropped.
func Raw(tag string, attrs []html.Attribute, markup string) *html.Node {
	n := El(tag, attrs)
	clean := policy.Sanitize(markup)
	nodes, err := html.ParseFragment(strings.NewReader(clean), &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: n.DataAtom,
	})
	if err != nil {
		// Sanitised output always parses; keep the plain text just in case.
		return Append(n, Text(clean))
	}
	return Append(n, nodes...)
}

// Append adds children to parent, skipping nils, and returns parent.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
	return parent
}

// Clear removes every child of n.
func Clear(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// Render serialises nodes in order.
func Render(w io.Writer, nodes ...*html.Node) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// String renders nodes to a string; rendering into a builder cannot fail.
func String(nodes ...*html.Node) string {
	var b strings.Builder
	_ = Render(&b, nodes...)
	return b.String()
}
