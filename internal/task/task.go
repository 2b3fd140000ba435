// Package task provides cancellable timer handles: one-shot delays, fixed-rate
// schedules and a debouncer built on top of them.
package task

import (
	"sync"
	"time"
)

// Handle is a one-shot scheduled task. It ends either by firing or by being
// cancelled, never both.
type Handle struct {
	timer *time.Timer
	fired chan struct{}
	done  chan struct{}
	once  sync.Once
}

// After schedules a handle that fires once d has elapsed.
func After(d time.Duration) *Handle {
	h := &Handle{
		fired: make(chan struct{}),
		done:  make(chan struct{}),
	}
	h.timer = time.AfterFunc(d, func() { h.finish(true) })
	return h
}

func (h *Handle) finish(fired bool) {
	h.once.Do(func() {
		if fired {
			close(h.fired)
		}
		close(h.done)
	})
}

// Cancel stops the handle if it has not fired yet. Safe to call repeatedly.
func (h *Handle) Cancel() {
	h.timer.Stop()
	h.finish(false)
}

// Done is closed when the handle fires or is cancelled.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the handle ends and reports whether it fired.
func (h *Handle) Wait() bool {
	<-h.done
	return h.Fired()
}

func (h *Handle) Fired() bool {
	select {
	case <-h.fired:
		return true
	default:
		return false
	}
}

// Recurring is a fixed-interval schedule that runs until cancelled.
type Recurring struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func Every(d time.Duration) *Recurring {
	return &Recurring{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
}

// Next blocks until the next tick. It returns false once the schedule is cancelled.
func (r *Recurring) Next() (time.Time, bool) {
	select {
	case <-r.done:
		return time.Time{}, false
	default:
	}
	select {
	case t := <-r.ticker.C:
		return t, true
	case <-r.done:
		return time.Time{}, false
	}
}

func (r *Recurring) Cancel() {
	r.once.Do(func() {
		r.ticker.Stop()
		close(r.done)
	})
}

func (r *Recurring) Done() <-chan struct{} { return r.done }

func (r *Recurring) Cancelled() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Debouncer collapses bursts of triggers into a single handle that fires
// after a quiet period with no further triggers.
type Debouncer struct {
	quiet time.Duration

	mu      sync.Mutex
	pending *Handle
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Trigger cancels any pending handle and schedules a fresh one.
func (d *Debouncer) Trigger() *Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Cancel()
	}
	d.pending = After(d.quiet)
	return d.pending
}

// Cancel drops the pending handle, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
}
