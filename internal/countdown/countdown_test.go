package countdown

import (
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCompute(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		target time.Time
		want   string
	}{
		{"ninety minutes", now.Add(90 * time.Minute), "0d 1h 30m"},
		{"ninety minutes less a second", now.Add(90*time.Minute - time.Second), "0d 1h 29m"},
		{"days", now.Add(50*time.Hour + 5*time.Minute + 59*time.Second), "2d 2h 5m"},
		{"under a minute", now.Add(30 * time.Second), "0d 0h 0m"},
		{"exactly now", now, ElapsedLabel},
		{"one second ago", now.Add(-time.Second), ElapsedLabel},
	}
	for _, tt := range tests {
		if got := Compute(tt.target, now).String(); got != tt.want {
			t.Errorf("%s: Compute() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNinetyMinutesFromWallClock(t *testing.T) {
	got := Compute(time.Now().Add(90*time.Minute), time.Now()).String()
	if got != "0d 1h 29m" && got != "0d 1h 30m" {
		t.Errorf("Compute(now+90m) = %q", got)
	}
}

func TestStartElapsedHasNoSchedule(t *testing.T) {
	now := time.Now()
	tm := Start(now.Add(-time.Second), time.Minute, func() time.Time { return now })
	if !tm.State().Elapsed {
		t.Fatal("expected elapsed state immediately")
	}
	if tm.Running() {
		t.Error("elapsed timer must not schedule recomputation")
	}
	if _, ok := tm.Next(); ok {
		t.Error("Next on elapsed timer should report false")
	}
}

func TestTimerReachesElapsedAndStops(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	target := clock.Add(2 * time.Minute)
	tm := Start(target, time.Millisecond, func() time.Time { return clock })
	defer tm.Stop()

	if got := tm.State().String(); got != "0d 0h 2m" {
		t.Fatalf("initial state = %q", got)
	}

	clock = clock.Add(90 * time.Second)
	st, ok := tm.Next()
	if !ok || st.String() != "0d 0h 0m" {
		t.Fatalf("after 90s: state %q ok=%v", st, ok)
	}

	clock = clock.Add(time.Minute)
	st, ok = tm.Next()
	if !ok || !st.Elapsed {
		t.Fatalf("expected elapsed after target, got %q ok=%v", st, ok)
	}
	if tm.Running() {
		t.Error("schedule should be cancelled once elapsed")
	}

	// No transition out of Elapsed even if the clock moves backwards.
	clock = clock.Add(-time.Hour)
	if st := tm.Tick(); !st.Elapsed {
		t.Error("elapsed timer left the terminal state")
	}
	if _, ok := tm.Next(); ok {
		t.Error("Next after elapsed should report false")
	}
}
