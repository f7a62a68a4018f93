package schedule

import (
	"testing"
	"time"
)

func TestParseInterval(t *testing.T) {
	for _, valid := range []string{"hourly", "twicedaily", "daily", "weekly", "never"} {
		if _, err := ParseInterval(valid); err != nil {
			t.Errorf("ParseInterval(%q) failed: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "monthly", "sometimes"} {
		if _, err := ParseInterval(invalid); err == nil {
			t.Errorf("ParseInterval(%q) should fail", invalid)
		}
	}
}

func TestIntervalDuration(t *testing.T) {
	tests := []struct {
		interval Interval
		want     time.Duration
		ok       bool
	}{
		{Hourly, time.Hour, true},
		{TwiceDaily, 12 * time.Hour, true},
		{Daily, 24 * time.Hour, true},
		{Weekly, 7 * 24 * time.Hour, true},
		{Never, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.interval.Duration()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s.Duration() = (%v, %v), want (%v, %v)", tt.interval, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRegisterAndNextRun(t *testing.T) {
	s := New()
	defer s.Clear("job")

	before := time.Now()
	s.Register("job", Hourly, func() {})

	next, ok := s.NextRun("job")
	if !ok {
		t.Fatal("registered job has no next run time")
	}
	if next.Before(before.Add(59*time.Minute)) || next.After(before.Add(61*time.Minute)) {
		t.Errorf("next run %v not about an hour from now", next)
	}
}

func TestRegisterReplacesExisting(t *testing.T) {
	s := New()
	defer s.Clear("job")

	s.Register("job", Weekly, func() {})
	s.Register("job", Hourly, func() {})

	next, ok := s.NextRun("job")
	if !ok {
		t.Fatal("job missing after re-registration")
	}
	if time.Until(next) > 2*time.Hour {
		t.Errorf("re-registration did not replace the weekly schedule; next = %v", next)
	}
}

func TestRegisterNeverSchedulesNothing(t *testing.T) {
	s := New()
	s.Register("job", Never, func() {})

	if _, ok := s.NextRun("job"); ok {
		t.Error("a never interval must not register a job")
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Register("job", Daily, func() {})
	s.Clear("job")

	if _, ok := s.NextRun("job"); ok {
		t.Error("cleared job still reports a next run")
	}

	// Clearing an unknown name is a no-op.
	s.Clear("missing")
}

func TestCallbackFiresRepeatedly(t *testing.T) {
	s := New()
	defer s.Clear("fast")

	fired := make(chan struct{}, 8)
	s.registerEvery("fast", 5*time.Millisecond, func() {
		fired <- struct{}{}
	})

	for i := 0; i < 2; i++ {
		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatalf("callback did not fire (round %d)", i+1)
		}
	}
}

func TestClearStopsCallbacks(t *testing.T) {
	s := New()

	fired := make(chan struct{}, 8)
	s.registerEvery("fast", 5*time.Millisecond, func() {
		fired <- struct{}{}
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("callback never fired")
	}

	s.Clear("fast")

	// Drain anything queued before the clear, then expect silence.
	time.Sleep(20 * time.Millisecond)
	for len(fired) > 0 {
		<-fired
	}
	select {
	case <-fired:
		t.Error("callback fired after Clear")
	case <-time.After(30 * time.Millisecond):
	}
}
