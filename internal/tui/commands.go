package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uiakraken/kraken/internal/browser"
	"github.com/uiakraken/kraken/internal/countdown"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/task"
)

// Commands capture everything they need up front so they never read App
// state from another goroutine.

func (a *App) loadFeedCmd(name string) tea.Cmd {
	loader, timeout, gen := a.loader, a.cfg.TimeoutDuration(), a.gen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		coll, err := loader.Load(ctx, name)
		return feedLoadedMsg{gen: gen, coll: coll, err: err}
	}
}

// loadMatchesCmd joins the three match center feeds; one failure fails all.
func (a *App) loadMatchesCmd() tea.Cmd {
	loader, timeout, gen := a.loader, a.cfg.TimeoutDuration(), a.gen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		feeds, err := loader.LoadAll(ctx, "schedule", "results", "media")
		return matchesLoadedMsg{gen: gen, feeds: feeds, err: err}
	}
}

func (a *App) loadDetailCmd(name, field, value string, fold bool) tea.Cmd {
	loader, timeout, gen := a.loader, a.cfg.TimeoutDuration(), a.gen
	logger := a.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		coll, err := loader.Load(ctx, name)
		if err != nil {
			return detailLoadedMsg{gen: gen, err: err}
		}
		rec, err := feed.Lookup(name, coll, field, value, fold)
		if err != nil {
			logger.Info("record not found", "feed", name, field, value)
		}
		return detailLoadedMsg{gen: gen, rec: rec, err: err}
	}
}

// debounceCmd yields searchSettledMsg only if h fires; a handle cancelled by
// a later keystroke produces nothing.
func debounceCmd(h *task.Handle, gen int) tea.Cmd {
	return func() tea.Msg {
		if !h.Wait() {
			return nil
		}
		return searchSettledMsg{gen: gen}
	}
}

// countdownCmd waits for the timer's next recomputation.
func countdownCmd(t *countdown.Timer) tea.Cmd {
	return func() tea.Msg {
		st, ok := t.Next()
		if !ok {
			return nil
		}
		return countdownMsg{timer: t, state: st}
	}
}

func openBrowserCmd(base, link string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(base, link); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}
