// Package listing implements the load -> filter -> sort -> paginate pipeline
// shared by every list page, and the per-page controller that owns its state.
package listing

import (
	"slices"
	"sort"
	"strings"
)

// FilterState holds the active select dimensions and the free-text search.
// A dimension that is absent or "" means "All".
type FilterState struct {
	Dims   map[string]string
	Search string
}

// With returns a copy of s with dimension dim set to value.
func (s FilterState) With(dim, value string) FilterState {
	dims := make(map[string]string, len(s.Dims)+1)
	for k, v := range s.Dims {
		dims[k] = v
	}
	dims[dim] = value
	return FilterState{Dims: dims, Search: s.Search}
}

// WithSearch returns a copy of s with the search term replaced.
func (s FilterState) WithSearch(term string) FilterState {
	return FilterState{Dims: s.Dims, Search: term}
}

// Equal compares states after normalisation, so "All" dims and surrounding
// whitespace in the term do not count as changes.
func (s FilterState) Equal(o FilterState) bool {
	if s.term() != o.term() {
		return false
	}
	for k, v := range s.Dims {
		if o.Dims[k] != v {
			return false
		}
	}
	for k, v := range o.Dims {
		if s.Dims[k] != v {
			return false
		}
	}
	return true
}

func (s FilterState) term() string {
	return strings.ToLower(strings.TrimSpace(s.Search))
}

// Spec describes one feed's pipeline.
type Spec[T any] struct {
	// Dims maps a dimension name to the record value compared for equality.
	Dims map[string]func(T) string
	// SearchText returns the fields the search term is matched against.
	SearchText func(T) []string
	// Less orders records; nil keeps feed order. Sorting is stable.
	Less func(a, b T) bool
	// PageSize is the number of records revealed per page; 0 shows all at once.
	PageSize int
}

// Matches reports whether item passes every active dimension and the search term.
func Matches[T any](item T, spec Spec[T], state FilterState) bool {
	for dim, want := range state.Dims {
		if want == "" {
			continue
		}
		get, ok := spec.Dims[dim]
		if !ok || get(item) != want {
			return false
		}
	}

	term := state.term()
	if term == "" {
		return true
	}
	if spec.SearchText == nil {
		return false
	}
	haystack := strings.ToLower(strings.Join(spec.SearchText(item), " "))
	return strings.Contains(haystack, term)
}

// Apply filters coll by state and sorts the survivors with spec.Less. coll is
// not modified.
func Apply[T any](coll []T, spec Spec[T], state FilterState) []T {
	out := make([]T, 0, len(coll))
	for _, item := range coll {
		if Matches(item, spec, state) {
			out = append(out, item)
		}
	}
	if spec.Less != nil {
		sort.SliceStable(out, func(i, j int) bool { return spec.Less(out[i], out[j]) })
	}
	return out
}

// Window returns Apply(...)[0 : min(cursor*PageSize, n)], the records visible
// after cursor pages have been revealed.
func Window[T any](coll []T, spec Spec[T], state FilterState, cursor int) []T {
	items := Apply(coll, spec, state)
	return items[:visibleCount(len(items), spec.PageSize, cursor)]
}

func visibleCount(total, pageSize, cursor int) int {
	if cursor <= 0 {
		return 0
	}
	if pageSize <= 0 {
		return total
	}
	return min(cursor*pageSize, total)
}

// Options returns the sorted distinct non-empty values of a dimension, for
// building select controls.
func Options[T any](coll []T, spec Spec[T], dim string) []string {
	get, ok := spec.Dims[dim]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, item := range coll {
		v := get(item)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
