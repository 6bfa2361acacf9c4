package kitchen

import (
	"sort"
	"time"
)

// Scheduler runs fn once after d has elapsed. Implementations must deliver
// fn on the goroutine that drives the Game; the Game is not safe for
// concurrent use.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, fn func())

// After calls f(d, fn).
func (f SchedulerFunc) After(d time.Duration, fn func()) {
	f(d, fn)
}

type pendingCall struct {
	due time.Duration
	seq int
	fn  func()
}

// ManualScheduler is a Scheduler whose clock only moves when told to.
// It is the default scheduler and the one tests drive.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []pendingCall
}

// NewManualScheduler returns a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After queues fn to run once the clock has advanced by d.
func (s *ManualScheduler) After(d time.Duration, fn func()) {
	s.seq++
	s.pending = append(s.pending, pendingCall{due: s.now + d, seq: s.seq, fn: fn})
}

// Now returns the time elapsed since the scheduler was created.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Advance moves the clock forward by d and runs every callback that became
// due, earliest first. Callbacks scheduled while advancing run in the same
// call if they fall due within the window.
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.now + d
	ran := 0
	for {
		i := s.nextDue(target)
		if i < 0 {
			break
		}
		call := s.pending[i]
		s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
		if call.due > s.now {
			s.now = call.due
		}
		call.fn()
		ran++
	}
	s.now = target
	return ran
}

// RunAll runs every queued callback regardless of its due time.
func (s *ManualScheduler) RunAll() int {
	ran := 0
	for len(s.pending) > 0 {
		sort.SliceStable(s.pending, func(i, j int) bool {
			return s.pending[i].due < s.pending[j].due
		})
		call := s.pending[0]
		s.pending = s.pending[1:]
		if call.due > s.now {
			s.now = call.due
		}
		call.fn()
		ran++
	}
	return ran
}

func (s *ManualScheduler) nextDue(limit time.Duration) int {
	best := -1
	for i, c := range s.pending {
		if c.due > limit {
			continue
		}
		if best < 0 || c.due < s.pending[best].due || (c.due == s.pending[best].due && c.seq < s.pending[best].seq) {
			best = i
		}
	}
	return best
}
