package schedule

import (
	"fmt"
	"sync"
	"time"
)

// Interval is the enumerated recurrence for a registered callback.
type Interval string

const (
	Hourly     Interval = "hourly"
	TwiceDaily Interval = "twicedaily"
	Daily      Interval = "daily"
	Weekly     Interval = "weekly"
	Never      Interval = "never"
)

// ParseInterval validates a config string against the known intervals.
func ParseInterval(s string) (Interval, error) {
	switch Interval(s) {
	case Hourly, TwiceDaily, Daily, Weekly, Never:
		return Interval(s), nil
	}
	return "", fmt.Errorf("unknown interval %q (want hourly, twicedaily, daily, weekly, or never)", s)
}

// Duration returns the recurrence period. ok is false for Never.
func (i Interval) Duration() (time.Duration, bool) {
	switch i {
	case Hourly:
		return time.Hour, true
	case TwiceDaily:
		return 12 * time.Hour, true
	case Daily:
		return 24 * time.Hour, true
	case Weekly:
		return 7 * 24 * time.Hour, true
	}
	return 0, false
}

type job struct {
	next time.Time
	stop chan struct{}
}

// Scheduler runs named callbacks on a fixed recurrence. Each registration
// gets its own timer loop; callbacks for one name never overlap because
// the next timer is armed only after the callback returns.
type Scheduler struct {
	mu   sync.Mutex
	jobs map[string]*job
}

// New creates an empty Scheduler.
func New() *Scheduler {
	return &Scheduler{jobs: make(map[string]*job)}
}

// Register installs fn under name, replacing any existing registration with
// that name. An interval of Never only clears the name.
func (s *Scheduler) Register(name string, interval Interval, fn func()) {
	period, ok := interval.Duration()
	if !ok {
		s.Clear(name)
		return
	}
	s.registerEvery(name, period, fn)
}

// registerEvery installs fn with an explicit period. Split out so tests can
// drive the timer loop without hour-scale waits.
func (s *Scheduler) registerEvery(name string, period time.Duration, fn func()) {
	s.Clear(name)

	j := &job{
		next: time.Now().Add(period),
		stop: make(chan struct{}),
	}

	s.mu.Lock()
	s.jobs[name] = j
	s.mu.Unlock()

	go s.loop(j, period, fn)
}

func (s *Scheduler) loop(j *job, period time.Duration, fn func()) {
	timer := time.NewTimer(period)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			fn()
			s.mu.Lock()
			j.next = time.Now().Add(period)
			s.mu.Unlock()
			timer.Reset(period)
		case <-j.stop:
			return
		}
	}
}

// Clear removes the registration under name, stopping its timer loop.
func (s *Scheduler) Clear(name string) {
	s.mu.Lock()
	j, exists := s.jobs[name]
	if exists {
		delete(s.jobs, name)
	}
	s.mu.Unlock()

	if exists {
		close(j.stop)
	}
}

// NextRun reports when the named callback will next fire. ok is false when
// nothing is registered under name.
func (s *Scheduler) NextRun(name string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, exists := s.jobs[name]
	if !exists {
		return time.Time{}, false
	}
	return j.next, true
}
