package timer

import (
	"testing"
	"time"

	"github.com/rdo34/weekplan/internal/model"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock(h, m int) *fakeClock {
	// A Wednesday.
	return &fakeClock{t: time.Date(2025, time.June, 11, h, m, 0, 0, time.UTC)}
}

func TestStop_NinetySecondsRoundsToFifteenMinutes(t *testing.T) {
	clk := newClock(10, 0)
	s := NewAt(clk.now)
	s.Start(model.Goal{ID: "g1", Text: "Write report", Color: "teal"})
	clk.advance(90 * time.Second)

	task, ok := s.Stop("g1", clk.t, 7)
	if !ok {
		t.Fatal("expected a task")
	}
	if task.Duration != 15 {
		t.Fatalf("duration = %d, want 15", task.Duration)
	}
	if task.Title != "Write report (timed)" {
		t.Fatalf("title = %q", task.Title)
	}
	if !task.Completed {
		t.Fatal("timer task must be completed")
	}
	if task.Color != "teal" {
		t.Fatalf("color = %q", task.Color)
	}
	if task.DayIndex == nil || *task.DayIndex != 2 {
		t.Fatalf("dayIndex = %v, want 2 (Wednesday)", task.DayIndex)
	}
	// Backdated to 10:01:30 - 90s = 10:00:00 -> floored half hour stays 10:00.
	if task.StartTime != "10:00" {
		t.Fatalf("startTime = %q, want 10:00", task.StartTime)
	}
	if s.State() != Idle {
		t.Fatalf("state = %s, want idle", s.State())
	}
}

func TestStop_SixteenMinutesRoundsToThirty(t *testing.T) {
	clk := newClock(14, 0)
	s := NewAt(clk.now)
	s.Start(model.Goal{ID: "g1"})
	clk.advance(16 * time.Minute)

	task, ok := s.Stop("g1", clk.t, 7)
	if !ok {
		t.Fatal("expected a task")
	}
	if task.Duration != 30 {
		t.Fatalf("duration = %d, want 30", task.Duration)
	}
	if task.Title != DefaultTitle+" (timed)" {
		t.Fatalf("title = %q", task.Title)
	}
	if task.Color != model.FallbackColor() {
		t.Fatalf("color = %q", task.Color)
	}
}

func TestPauseResume_AccumulatesAcrossIntervals(t *testing.T) {
	clk := newClock(9, 0)
	s := NewAt(clk.now)
	s.Start(model.Goal{ID: "g1", Text: "Read"})

	clk.advance(10 * time.Second)
	s.Toggle("g1") // pause
	if s.State() != Paused {
		t.Fatalf("state = %s, want paused", s.State())
	}
	if got := s.Elapsed(); got != 10 {
		t.Fatalf("elapsed while paused = %d, want 10", got)
	}
	// Frozen while paused.
	clk.advance(5 * time.Minute)
	if got := s.Elapsed(); got != 10 {
		t.Fatalf("elapsed drifted while paused: %d", got)
	}

	s.Toggle("g1") // resume
	clk.advance(20 * time.Second)
	if got := s.Elapsed(); got != 30 {
		t.Fatalf("elapsed = %d, want 30", got)
	}

	task, ok := s.Stop("g1", clk.t, 7)
	if !ok {
		t.Fatal("expected a task")
	}
	if task.Duration != 15 {
		t.Fatalf("duration = %d, want 15", task.Duration)
	}
}

func TestToggleAndStop_WrongGoalAreNoOps(t *testing.T) {
	clk := newClock(9, 0)
	s := NewAt(clk.now)
	s.Start(model.Goal{ID: "g1"})
	clk.advance(time.Minute)

	s.Toggle("other")
	if s.State() != Running {
		t.Fatalf("state = %s after foreign toggle", s.State())
	}
	if _, ok := s.Stop("other", clk.t, 7); ok {
		t.Fatal("foreign stop must not emit a task")
	}
	if s.State() != Running {
		t.Fatalf("state = %s after foreign stop", s.State())
	}
}

func TestStart_DiscardsPreviousSession(t *testing.T) {
	clk := newClock(9, 0)
	s := NewAt(clk.now)
	s.Start(model.Goal{ID: "g1"})
	clk.advance(40 * time.Minute)

	s.Start(model.Goal{ID: "g2"})
	if got := s.Elapsed(); got != 0 {
		t.Fatalf("elapsed = %d after restart, want 0", got)
	}
	if s.GoalID() != "g2" {
		t.Fatalf("goal = %q, want g2", s.GoalID())
	}
	// The dropped session never surfaces as a task.
	if _, ok := s.Stop("g1", clk.t, 7); ok {
		t.Fatal("stale goal produced a task")
	}
}

func TestStop_ZeroElapsedEmitsNothing(t *testing.T) {
	clk := newClock(9, 0)
	s := NewAt(clk.now)
	s.Start(model.Goal{ID: "g1"})
	if _, ok := s.Stop("g1", clk.t, 7); ok {
		t.Fatal("zero-length session produced a task")
	}
	if s.State() != Idle {
		t.Fatalf("state = %s, want idle", s.State())
	}
}

func TestStop_BackdateClampedToGridStart(t *testing.T) {
	clk := newClock(7, 10)
	s := NewAt(clk.now)
	s.Start(model.Goal{ID: "g1"})
	clk.advance(60 * time.Minute)
	// now 08:10, backdated start 07:10... with grid opening at 8 the hour clamps.
	task, ok := s.Stop("g1", clk.t, 8)
	if !ok {
		t.Fatal("expected a task")
	}
	if task.StartTime != "08:00" {
		t.Fatalf("startTime = %q, want 08:00", task.StartTime)
	}
	if task.Duration != 60 {
		t.Fatalf("duration = %d, want 60", task.Duration)
	}
}

func TestStop_HalfHourFloorNotNearestRounding(t *testing.T) {
	clk := newClock(10, 59)
	s := NewAt(clk.now)
	s.Start(model.Goal{ID: "g1"})
	clk.advance(5 * time.Minute)
	// Backdated start 10:59 -> floors to 10:30 even though 11:00 is nearer.
	task, ok := s.Stop("g1", clk.t, 7)
	if !ok {
		t.Fatal("expected a task")
	}
	if task.StartTime != "10:30" {
		t.Fatalf("startTime = %q, want 10:30", task.StartTime)
	}
}
