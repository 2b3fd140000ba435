package feed

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/mmcdole/gofeed"
	"github.com/uiakraken/kraken/internal/config"
)

// loadSyndication maps an RSS or Atom document onto news-shaped records
// (title, slug, excerpt, url, date, category, image).
func (l *Loader) loadSyndication(ctx context.Context, o config.Feed) (Collection, error) {
	parsed, err := l.parser.ParseURLWithContext(o.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing %s feed: %w", o.Type, err)
	}

	coll := make(Collection, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		rec := Record{
			"title":   item.Title,
			"slug":    slugify(item.Title, item.Link),
			"url":     item.Link,
			"excerpt": truncate(stripHTML(firstNonEmpty(item.Description, item.Content)), 300),
		}
		if pub := itemTime(item); !pub.IsZero() {
			rec["date"] = pub.Format(time.RFC3339)
		}
		if len(item.Categories) > 0 {
			rec["category"] = item.Categories[0]
		}
		if item.Image != nil && item.Image.URL != "" {
			rec["image"] = item.Image.URL
		}
		coll = append(coll, rec)
	}
	return coll, nil
}

func itemTime(item *gofeed.Item) time.Time {
	switch {
	case item.PublishedParsed != nil:
		return *item.PublishedParsed
	case item.UpdatedParsed != nil:
		return *item.UpdatedParsed
	default:
		return time.Time{}
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// slugify derives a stable URL slug from a title; items without a usable
// title fall back to a hash of their link.
func slugify(title, link string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		h := sha256.Sum256([]byte(link))
		return fmt.Sprintf("%x", h[:8])
	}
	return s
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
