package tabs

import "net/url"

// Location is a navigable address whose fragment mirrors the active tab.
// Updating it replaces the current entry; it never pushes history.
type Location struct {
	u *url.URL
}

func ParseLocation(raw string) (*Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &Location{u: u}, nil
}

// Fragment returns the fragment without its leading '#'.
func (l *Location) Fragment() string { return l.u.Fragment }

// Query returns a query parameter such as "slug" or "handle".
func (l *Location) Query(key string) string { return l.u.Query().Get(key) }

// ReplaceFragment rewrites the fragment in place.
func (l *Location) ReplaceFragment(key string) {
	l.u.Fragment = key
}

// Sync reflects s's active tab into the location.
func (l *Location) Sync(s *Set) {
	l.ReplaceFragment(s.ActiveKey())
}

func (l *Location) String() string { return l.u.String() }
