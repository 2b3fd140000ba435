package dom

import (
	"io"

	"golang.org/x/net/html"
)

// Parse reads a host document.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// FindID returns the element with the given id, or nil.
func FindID(root *html.Node, id string) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode {
		if v, ok := GetAttr(root, "id"); ok && v == id {
			return root
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := FindID(c, id); n != nil {
			return n
		}
	}
	return nil
}

// Mount replaces the children of the element with the given id and marks it
// as no longer busy. A missing mount point is not an error: Mount does nothing
// and returns false.
func Mount(doc *html.Node, id string, children ...*html.Node) bool {
	n := FindID(doc, id)
	if n == nil {
		return false
	}
	Clear(n)
	Append(n, children...)
	SetAttr(n, "aria-busy", "false")
	return true
}

// SetBusy maintains aria-busy on a mount point while its data loads.
func SetBusy(n *html.Node, busy bool) {
	if n == nil {
		return
	}
	b := Busy(busy)
	SetAttr(n, b.Key, b.Val)
}

// FindTag returns the first element named tag, or nil.
func FindTag(root *html.Node, tag string) *html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode && root.Data == tag {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := FindTag(c, tag); n != nil {
			return n
		}
	}
	return nil
}
