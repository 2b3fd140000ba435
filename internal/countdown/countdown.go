// Package countdown tracks the time left until a scheduled match.
package countdown

import (
	"fmt"
	"time"

	"github.com/uiakraken/kraken/internal/task"
)

// ElapsedLabel is shown once the target instant has been reached.
const ElapsedLabel = "Live or finished"

// State is either Pending with the whole days/hours/minutes remaining, or Elapsed.
type State struct {
	Elapsed bool
	Days    int
	Hours   int
	Minutes int
}

// Compute returns the state at now for target. Seconds are floored, so a
// target 90 minutes away reads 0d 1h 29m once any time has passed.
func Compute(target, now time.Time) State {
	diff := target.Sub(now)
	if diff <= 0 {
		return State{Elapsed: true}
	}
	total := int64(diff / time.Second)
	return State{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
	}
}

func (s State) String() string {
	if s.Elapsed {
		return ElapsedLabel
	}
	return fmt.Sprintf("%dd %dh %dm", s.Days, s.Hours, s.Minutes)
}

// Timer recomputes the state on a fixed schedule and stops its schedule on
// reaching Elapsed. There is no way back out of Elapsed.
type Timer struct {
	target   time.Time
	now      func() time.Time
	schedule *task.Recurring
	state    State
}

// Start computes the state immediately and, unless already elapsed, starts a
// schedule ticking every interval.
func Start(target time.Time, interval time.Duration, now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	t := &Timer{target: target, now: now}
	t.state = Compute(target, now())
	if !t.state.Elapsed {
		t.schedule = task.Every(interval)
	}
	return t
}

// State returns the most recently computed state.
func (t *Timer) State() State { return t.state }

func (t *Timer) Target() time.Time { return t.target }

// Tick recomputes the state. Once elapsed the schedule is cancelled and
// further ticks return the terminal state unchanged.
func (t *Timer) Tick() State {
	if t.state.Elapsed {
		return t.state
	}
	t.state = Compute(t.target, t.now())
	if t.state.Elapsed {
		t.Stop()
	}
	return t.state
}

// Next blocks until the next scheduled recomputation and returns its state.
// It returns false when the schedule has been stopped.
func (t *Timer) Next() (State, bool) {
	if t.schedule == nil {
		return t.state, false
	}
	if _, ok := t.schedule.Next(); !ok {
		return t.state, false
	}
	return t.Tick(), true
}

// Running reports whether the schedule is still active.
func (t *Timer) Running() bool {
	return t.schedule != nil && !t.schedule.Cancelled()
}

// Stop cancels the schedule. Views call it on unmount.
func (t *Timer) Stop() {
	if t.schedule != nil {
		t.schedule.Cancel()
	}
}
