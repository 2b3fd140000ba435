package listing

import (
	"time"

	"github.com/uiakraken/kraken/internal/feed"
)

// Field reads a record field as text.
func Field(name string) func(feed.Record) string {
	return func(r feed.Record) string { return r.String(name) }
}

// FieldOr reads a record field, substituting def when it is blank. News
// without a category is filed under "News", for example.
func FieldOr(name, def string) func(feed.Record) string {
	return func(r feed.Record) string { return r.StringOr(name, def) }
}

// Fields returns the named fields for search matching.
func Fields(names ...string) func(feed.Record) []string {
	return func(r feed.Record) []string {
		out := make([]string, len(names))
		for i, n := range names {
			out[i] = r.String(n)
		}
		return out
	}
}

// ByTimeDesc orders most recent first. Records without a parseable time sort
// after dated ones and keep their feed order.
func ByTimeDesc(field string) func(a, b feed.Record) bool {
	return func(a, b feed.Record) bool {
		ta, oka := a.Time(field)
		tb, okb := b.Time(field)
		switch {
		case oka && okb:
			return ta.After(tb)
		default:
			return oka && !okb
		}
	}
}

// ByTimeAsc orders soonest first, undated records last.
func ByTimeAsc(field string) func(a, b feed.Record) bool {
	return func(a, b feed.Record) bool {
		ta, oka := a.Time(field)
		tb, okb := b.Time(field)
		switch {
		case oka && okb:
			return ta.Before(tb)
		default:
			return oka && !okb
		}
	}
}

// Upcoming returns the records scheduled at or after now, soonest first.
func Upcoming(coll feed.Collection, field string, now time.Time) feed.Collection {
	spec := Spec[feed.Record]{Less: ByTimeAsc(field)}
	var out feed.Collection
	for _, r := range Apply(coll, spec, FilterState{}) {
		if t, ok := r.Time(field); ok && !t.Before(now) {
			out = append(out, r)
		}
	}
	return out
}

// Latest returns coll sorted most recent first.
func Latest(coll feed.Collection, field string) feed.Collection {
	return Apply(coll, Spec[feed.Record]{Less: ByTimeDesc(field)}, FilterState{})
}
