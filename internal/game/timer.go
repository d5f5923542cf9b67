package game

import (
	"sync"
	"time"
)

// Scheduler is the single-slot phase-transition timer: Schedule replaces any
// pending callback, so at most one can be outstanding at any instant.
// Cancel is safe to call when nothing is scheduled.
type Scheduler interface {
	Schedule(d time.Duration, fn func())
	Cancel()
}

// slotTimer implements Scheduler over time.AfterFunc. A sequence number
// guards the slot: a callback from a replaced or cancelled timer finds its
// sequence stale and never runs fn.
type slotTimer struct {
	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func newSlotTimer() *slotTimer {
	return &slotTimer{}
}

func (t *slotTimer) Schedule(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.seq++
	seq := t.seq
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		live := seq == t.seq
		t.mu.Unlock()
		if live {
			fn()
		}
	})
}

func (t *slotTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.seq++
}
