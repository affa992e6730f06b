package viewport

import (
	"sync"
	"time"
)

// refitScheduler is a single-shot deferred scheduler. Scheduling while a
// fire is pending replaces the pending fire instead of stacking a second
// one: superseded fits would otherwise flicker through the transform.
type refitScheduler struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
}

func newRefitScheduler(delay time.Duration, fn func()) *refitScheduler {
	return &refitScheduler{delay: delay, fn: fn}
}

// Schedule arms the timer, replacing any pending fire. A zero delay fires
// synchronously, which keeps tests deterministic.
func (s *refitScheduler) Schedule() {
	if s.delay <= 0 {
		s.fn()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fn)
}

// Stop cancels any pending fire.
func (s *refitScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
