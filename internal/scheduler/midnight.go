// Package scheduler provides the midnight rollover task for the attendance
// cycle: the delay to the next local midnight is recomputed on every cycle
// (so DST changes cannot drift the boundary) and the timer reschedules itself
// until stopped.
package scheduler

import (
	"log"
	"sync"
	"time"
)

type Midnight struct {
	loc *time.Location
	fn  func(now time.Time)
	now func() time.Time

	mu      sync.Mutex
	stopCh  chan struct{}
	started bool
}

// NewMidnight builds a scheduler firing fn at every midnight in loc.
func NewMidnight(loc *time.Location, fn func(now time.Time)) *Midnight {
	if loc == nil {
		loc = time.Local
	}
	return &Midnight{
		loc: loc,
		fn:  fn,
		now: time.Now,
	}
}

// Start launches the rollover loop. Calling Start twice is a no-op.
func (m *Midnight) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return
	}
	m.started = true
	m.stopCh = make(chan struct{})

	go m.run(m.stopCh)
}

// Stop cancels the pending timer. Safe to call more than once.
func (m *Midnight) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return
	}
	m.started = false
	close(m.stopCh)
}

func (m *Midnight) run(stop chan struct{}) {
	for {
		delay := untilNextMidnight(m.now().In(m.loc))
		timer := time.NewTimer(delay)
		log.Printf("[SCHEDULER] next midnight rollover in %s", delay.Round(time.Second))

		select {
		case <-stop:
			timer.Stop()
			return
		case fired := <-timer.C:
			m.fn(fired.In(m.loc))
		}
	}
}

// untilNextMidnight returns the delay from now to the next local midnight.
func untilNextMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return next.Sub(now)
}
