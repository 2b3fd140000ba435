package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uiakraken/kraken/internal/listing"
)

// filterDim is one select control. selected 0 is "All"; i > 0 picks options[i-1].
type filterDim struct {
	name     string
	options  []string
	selected int
}

func (d filterDim) value() string {
	if d.selected == 0 || d.selected > len(d.options) {
		return ""
	}
	return d.options[d.selected-1]
}

type filterBar struct {
	dims         []filterDim
	filterMode   bool
	filterCursor int
}

func newFilterBar(names ...string) filterBar {
	dims := make([]filterDim, len(names))
	for i, n := range names {
		dims[i] = filterDim{name: n}
	}
	return filterBar{dims: dims}
}

// setOptions replaces a dimension's values, keeping the selection when the
// selected value still exists.
func (f *filterBar) setOptions(name string, options []string) {
	for i := range f.dims {
		d := &f.dims[i]
		if d.name != name {
			continue
		}
		current := d.value()
		d.options = options
		d.selected = 0
		for j, o := range options {
			if o == current {
				d.selected = j + 1
			}
		}
	}
}

// cycleCurrent advances the focused dimension to its next value, wrapping
// back to "All".
func (f *filterBar) cycleCurrent() {
	if f.filterCursor >= len(f.dims) {
		return
	}
	d := &f.dims[f.filterCursor]
	d.selected = (d.selected + 1) % (len(d.options) + 1)
}

func (f *filterBar) move(delta int) {
	f.filterCursor = min(max(f.filterCursor+delta, 0), max(len(f.dims)-1, 0))
}

func (f *filterBar) state(search string) listing.FilterState {
	st := listing.FilterState{Search: search}
	for _, d := range f.dims {
		st = st.With(d.name, d.value())
	}
	return st
}

func (f *filterBar) activeLabel() string {
	var parts []string
	for _, d := range f.dims {
		if v := d.value(); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "All"
	}
	return strings.Join(parts, ", ")
}

func (f *filterBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string
	for i, d := range f.dims {
		value := d.value()
		if value == "" {
			value = "All"
		}
		label := d.name + ": " + value
		if f.filterMode && i == f.filterCursor {
			label = "[" + label + "]"
		}
		style := tabInactiveStyle
		if d.selected > 0 {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
