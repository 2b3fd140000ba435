package feed

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one flat entry of a feed. Fields are whatever the JSON carried;
// accessors fall back to zero values when a field is absent or mistyped.
type Record map[string]any

// Collection is the full, ordered contents of one feed.
type Collection []Record

func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Empty reports whether key is absent, null, an empty string or an empty
// list/object. Absent and empty are treated alike by every renderer.
func (r Record) Empty(key string) bool {
	switch v := r[key].(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

// String returns the field rendered as text. Numbers and booleans are
// formatted; lists and objects yield "".
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// StringOr returns the trimmed field, or def when it is blank.
func (r Record) StringOr(key, def string) string {
	s := strings.TrimSpace(r.String(key))
	if s == "" {
		return def
	}
	return s
}

// Strings returns a list field as text, skipping non-scalar entries.
func (r Record) Strings(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s := Record{"v": item}.String("v")
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Map returns a nested object field.
func (r Record) Map(key string) Record {
	switch v := r[key].(type) {
	case map[string]any:
		return Record(v)
	case Record:
		return v
	default:
		return nil
	}
}

// Records returns a list-of-objects field such as a roster or map list.
func (r Record) Records(key string) Collection {
	list, ok := r[key].([]any)
	if !ok {
		if c, ok := r[key].(Collection); ok {
			return c
		}
		return nil
	}
	out := make(Collection, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// Time parses a date field. Values without a zone are read in local time.
// The second result is false when the field is missing or unparseable.
func (r Record) Time(key string) (time.Time, bool) {
	s := strings.TrimSpace(r.String(key))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
