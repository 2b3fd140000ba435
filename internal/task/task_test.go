package task

import (
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAfterFires(t *testing.T) {
	h := After(5 * time.Millisecond)
	if !h.Wait() {
		t.Fatal("expected handle to fire")
	}
	if !h.Fired() {
		t.Error("Fired() should report true after firing")
	}
	h.Cancel() // no-op after firing
	if !h.Fired() {
		t.Error("cancel after fire must not change the outcome")
	}
}

func TestAfterCancel(t *testing.T) {
	h := After(time.Hour)
	h.Cancel()
	h.Cancel()
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed after cancel")
	}
	if h.Wait() {
		t.Error("cancelled handle should not report fired")
	}
}

func TestDebouncerCollapsesBurst(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var handles []*Handle
	for i := 0; i < 5; i++ {
		handles = append(handles, d.Trigger())
		time.Sleep(2 * time.Millisecond)
	}

	last := handles[len(handles)-1]
	if !last.Wait() {
		t.Fatal("last trigger should fire after the quiet period")
	}
	for i, h := range handles[:len(handles)-1] {
		if h.Wait() {
			t.Errorf("handle %d fired; superseded triggers must be cancelled", i)
		}
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(time.Hour)
	h := d.Trigger()
	d.Cancel()
	if h.Wait() {
		t.Error("cancelled debounce should not fire")
	}
	d.Cancel() // nothing pending
}

func TestRecurring(t *testing.T) {
	r := Every(2 * time.Millisecond)
	for i := 0; i < 3; i++ {
		if _, ok := r.Next(); !ok {
			t.Fatalf("tick %d: schedule ended early", i)
		}
	}
	r.Cancel()
	r.Cancel()
	if !r.Cancelled() {
		t.Error("expected Cancelled() after Cancel")
	}
	if _, ok := r.Next(); ok {
		t.Error("Next after cancel should report false")
	}
}

func TestRecurringCancelUnblocksNext(t *testing.T) {
	r := Every(time.Hour)
	done := make(chan bool)
	go func() {
		_, ok := r.Next()
		done <- ok
	}()
	r.Cancel()
	select {
	case ok := <-done:
		if ok {
			t.Error("expected Next to report cancellation")
		}
	case <-time.After(time.Second):
		t.Fatal("Next still blocked after Cancel")
	}
}
