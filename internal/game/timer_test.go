package game

import (
	"testing"
	"time"
)

func TestSlotTimerScheduleReplacesPending(t *testing.T) {
	st := newSlotTimer()
	fired := make(chan string, 2)

	st.Schedule(10*time.Millisecond, func() { fired <- "first" })
	st.Schedule(20*time.Millisecond, func() { fired <- "second" })

	select {
	case got := <-fired:
		if got != "second" {
			t.Fatalf("fired %q, want the replacement callback", got)
		}
	case <-time.After(time.Second):
		t.Fatal("replacement callback never fired")
	}

	select {
	case got := <-fired:
		t.Fatalf("stale callback %q fired after being replaced", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSlotTimerCancelDropsPending(t *testing.T) {
	st := newSlotTimer()
	fired := make(chan struct{}, 1)

	st.Schedule(10*time.Millisecond, func() { fired <- struct{}{} })
	st.Cancel()

	select {
	case <-fired:
		t.Fatal("cancelled callback fired")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSlotTimerCancelWhenIdle(t *testing.T) {
	st := newSlotTimer()
	st.Cancel()
	st.Cancel()
}
