package tui

import (
	"github.com/uiakraken/kraken/internal/countdown"
	"github.com/uiakraken/kraken/internal/feed"
)

// Load results carry the generation of the page that asked for them, so a
// response arriving after the user navigated away is dropped.

type feedLoadedMsg struct {
	gen  int
	coll feed.Collection
	err  error
}

type matchesLoadedMsg struct {
	gen   int
	feeds map[string]feed.Collection
	err   error
}

type detailLoadedMsg struct {
	gen int
	rec feed.Record
	err error
}

type searchSettledMsg struct {
	gen int
}

type countdownMsg struct {
	timer *countdown.Timer
	state countdown.State
}

type errMsg struct {
	err error
}
