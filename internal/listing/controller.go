package listing

// Page is what a controller hands to a renderer after each step.
type Page[T any] struct {
	// Items are the records to append. When Reset is set the renderer must
	// clear everything it rendered before appending.
	Items     []T
	Reset     bool
	Shown     int
	Total     int
	Exhausted bool
}

// Empty reports whether the filtered collection has no records at all, in
// which case the renderer shows a "no results" placeholder.
func (p Page[T]) Empty() bool { return p.Total == 0 }

// Controller owns one page view's list state. It is created when the view
// mounts and dropped with it; nothing is shared between views.
type Controller[T any] struct {
	spec     Spec[T]
	all      []T
	state    FilterState
	filtered []T
	cursor   int
}

func NewController[T any](spec Spec[T]) *Controller[T] {
	return &Controller[T]{spec: spec}
}

// Reset replaces the collection and renders page 0 under the current filter.
func (c *Controller[T]) Reset(coll []T) Page[T] {
	c.all = coll
	return c.refilter()
}

// SetFilter applies a new filter state, discarding the cursor.
func (c *Controller[T]) SetFilter(state FilterState) Page[T] {
	c.state = state
	return c.refilter()
}

func (c *Controller[T]) refilter() Page[T] {
	c.filtered = Apply(c.all, c.spec, c.state)
	c.cursor = 0
	p := c.LoadMore()
	p.Reset = true
	return p
}

// LoadMore reveals exactly one more page. Once exhausted it returns an empty
// page and leaves the cursor where it is.
func (c *Controller[T]) LoadMore() Page[T] {
	start := c.shown()
	if c.cursor > 0 && start >= len(c.filtered) {
		return c.page(nil)
	}
	c.cursor++
	end := c.shown()
	return c.page(c.filtered[start:end])
}

func (c *Controller[T]) page(items []T) Page[T] {
	return Page[T]{
		Items:     items,
		Shown:     c.shown(),
		Total:     len(c.filtered),
		Exhausted: c.Exhausted(),
	}
}

func (c *Controller[T]) shown() int {
	return visibleCount(len(c.filtered), c.spec.PageSize, c.cursor)
}

// Visible returns every record rendered so far.
func (c *Controller[T]) Visible() []T {
	return c.filtered[:c.shown()]
}

func (c *Controller[T]) State() FilterState { return c.state }

func (c *Controller[T]) Cursor() int { return c.cursor }

// Total is the size of the filtered collection.
func (c *Controller[T]) Total() int { return len(c.filtered) }

// Exhausted reports whether every filtered record is visible, which disables
// the load-more control.
func (c *Controller[T]) Exhausted() bool {
	return c.shown() >= len(c.filtered)
}

// Options lists the values of dim across the whole collection.
func (c *Controller[T]) Options(dim string) []string {
	return Options(c.all, c.spec, dim)
}

// LoadMoreLabel is the load-more control label: "Load more" while records
// remain and exhausted otherwise.
func LoadMoreLabel(exhausted bool, exhaustedLabel string) string {
	if exhausted {
		return exhaustedLabel
	}
	return "Load more"
}
