package dom

import (
	"strconv"

	"golang.org/x/net/html"
)

// A collects attributes, dropping those with an empty key so conditional
// attributes can be written inline with If.
func A(attrs ...html.Attribute) []html.Attribute {
	out := make([]html.Attribute, 0, len(attrs))
	for _, a := range attrs {
		if a.Key != "" {
			out = append(out, a)
		}
	}
	return out
}

func Attr(key, val string) html.Attribute { return html.Attribute{Key: key, Val: val} }

func Class(c string) html.Attribute { return Attr("class", c) }

func ID(id string) html.Attribute { return Attr("id", id) }

func Href(u string) html.Attribute { return Attr("href", u) }

func Role(r string) html.Attribute { return Attr("role", r) }

func Aria(name, val string) html.Attribute { return Attr("aria-"+name, val) }

func Bool(key string, on bool) html.Attribute { return If(on, Attr(key, "")) }

// Blank opens a link in a new tab.
func Blank() html.Attribute { return Attr("target", "_blank") }

// If returns a when cond holds and an attribute A drops otherwise.
func If(cond bool, a html.Attribute) html.Attribute {
	if !cond {
		return html.Attribute{}
	}
	return a
}

// Busy is the aria-busy attribute carried by every mount point while loading.
func Busy(busy bool) html.Attribute { return Aria("busy", strconv.FormatBool(busy)) }

// GetAttr returns the value of key on n.
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces key on n.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes key from n.
func RemoveAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			out = append(out, a)
		}
	}
	n.Attr = out
}
