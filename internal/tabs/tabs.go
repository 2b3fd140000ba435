// Package tabs keeps exactly one tab of a tab strip active.
package tabs

import "strings"

type Tab struct {
	Key   string
	Title string
}

// Set is an ordered tab strip. A non-empty set always has exactly one active tab.
type Set struct {
	tabs   []Tab
	active int
}

// New builds a set whose initial tab is the one named by fragment (with or
// without a leading '#'), falling back to the first tab for unknown keys.
func New(tabs []Tab, fragment string) *Set {
	s := &Set{tabs: tabs}
	if i := s.index(strings.TrimPrefix(fragment, "#")); i >= 0 {
		s.active = i
	}
	return s
}

func (s *Set) index(key string) int {
	if key == "" {
		return -1
	}
	for i, t := range s.tabs {
		if t.Key == key {
			return i
		}
	}
	return -1
}

func (s *Set) Tabs() []Tab { return s.tabs }

func (s *Set) Len() int { return len(s.tabs) }

// Active returns the active tab; ok is false only for an empty set.
func (s *Set) Active() (Tab, bool) {
	if len(s.tabs) == 0 {
		return Tab{}, false
	}
	return s.tabs[s.active], true
}

func (s *Set) ActiveKey() string {
	t, _ := s.Active()
	return t.Key
}

func (s *Set) ActiveIndex() int { return s.active }

func (s *Set) IsActive(key string) bool {
	t, ok := s.Active()
	return ok && t.Key == key
}

// Select activates key. Unknown keys leave the selection untouched and
// return false.
func (s *Set) Select(key string) bool {
	i := s.index(key)
	if i < 0 {
		return false
	}
	s.active = i
	return true
}

// Move handles directional navigation. Next/previous clamp at the ends
// rather than wrapping. It reports whether the key was a navigation key.
func (s *Set) Move(key string) bool {
	if len(s.tabs) == 0 {
		return false
	}
	last := len(s.tabs) - 1
	switch key {
	case "right", "l", "ArrowRight":
		s.active = min(s.active+1, last)
	case "left", "h", "ArrowLeft":
		s.active = max(s.active-1, 0)
	case "home", "Home":
		s.active = 0
	case "end", "End":
		s.active = last
	default:
		return false
	}
	return true
}

// Fragment is the location fragment reflecting the active tab.
func (s *Set) Fragment() string {
	if k := s.ActiveKey(); k != "" {
		return "#" + k
	}
	return ""
}
