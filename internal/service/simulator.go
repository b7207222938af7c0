package service

import (
	"sync"
	"time"
)

// tickerHandle is the cancellable handle for one charging tick loop. Every
// exit path from the charging state must call Stop before the session is
// reassigned or cleared, so a superseded session is never mutated by a
// stale timer.
type tickerHandle struct {
	stop chan struct{}
	once sync.Once
}

func newTickerHandle() *tickerHandle {
	return &tickerHandle{stop: make(chan struct{})}
}

// Stop cancels the loop. Safe to call more than once.
func (h *tickerHandle) Stop() {
	h.once.Do(func() { close(h.stop) })
}

// runTicks drives the energy accrual loop until the handle is stopped or the
// apply callback reports that the session left the charging state.
func runTicks(h *tickerHandle, interval time.Duration, apply func() bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			if !apply() {
				return
			}
		}
	}
}
