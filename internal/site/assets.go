package site

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"

	"github.com/uiakraken/kraken/internal/dom"
)

// onerror swaps a broken image for its placeholder exactly once.
const swapOnError = "this.onerror=null;this.src=this.dataset.fallback"

// Image is a primary source plus the deterministic placeholder used when it
// fails to load.
type Image struct {
	Src      string
	Fallback string
}

// Assets resolves image files under a base path such as ../assets/images.
type Assets struct {
	Base string
}

func (a Assets) file(kind, name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	return path.Join(a.Base, kind, name)
}

func picsum(seed string, w, h int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", url.PathEscape(seed), w, h)
}

func dicebear(handle string) string {
	return "https://api.dicebear.com/7.x/thumbs/svg?seed=" + url.QueryEscape(handle) + "&radius=10"
}

func dummy(text string, w, h int) string {
	return fmt.Sprintf("https://dummyimage.com/%dx%d/171722/ffffff.png&text=%s", w, h, url.QueryEscape(text))
}

// Banner is a news, media or leadership image keyed by title or name.
func (a Assets) Banner(file, seed string, w, h int) Image {
	ph := picsum(seed, w, h)
	if strings.TrimSpace(file) == "" {
		return Image{Src: ph, Fallback: ph}
	}
	return Image{Src: a.file("banners", file), Fallback: ph}
}

// Player is an avatar: the configured file, else <handle>.jpg with spaces
// removed, falling back to a generated avatar.
func (a Assets) Player(avatar, handle string) Image {
	file := avatar
	if strings.TrimSpace(file) == "" {
		file = strings.Join(strings.Fields(handle), "") + ".jpg"
	}
	return Image{Src: a.file("players", file), Fallback: dicebear(handle)}
}

func (a Assets) Team(badge, title string) Image {
	ph := dummy(title, 160, 160)
	if strings.TrimSpace(badge) == "" {
		return Image{Src: ph, Fallback: ph}
	}
	return Image{Src: a.file("teams", badge), Fallback: ph}
}

func (a Assets) Partner(logo, name string) Image {
	ph := dummy(name, 240, 80)
	if strings.TrimSpace(logo) == "" {
		return Image{Src: ph, Fallback: ph}
	}
	return Image{Src: a.file("partners", logo), Fallback: ph}
}

// img builds a lazy image. The fallback is attached only when it differs
// from the source, so a placeholder never retries itself.
func img(class, alt string, im Image) *html.Node {
	swap := im.Fallback != "" && im.Fallback != im.Src
	return dom.El("img", dom.A(
		dom.If(class != "", dom.Class(class)),
		dom.Attr("src", im.Src),
		dom.Attr("alt", alt),
		dom.Attr("loading", "lazy"),
		dom.If(swap, dom.Attr("data-fallback", im.Fallback)),
		dom.If(swap, dom.Attr("onerror", swapOnError)),
	))
}
