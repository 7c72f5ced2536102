// Package timer tracks a single timed work session tied to one goal and
// converts a finished session into a schedulable task block.
package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rdo34/weekplan/internal/model"
)

// State names the phases of the session machine.
type State string

const (
	Idle    State = "idle"
	Running State = "running"
	Paused  State = "paused"
)

// DefaultTitle is used when the timed goal has no text.
const DefaultTitle = "Focus session"

// Session is the single system-wide timer. Zero value is Idle.
type Session struct {
	state       State
	goal        model.Goal
	start       time.Time // beginning of the current running interval
	accumulated int       // whole seconds from prior running intervals

	now func() time.Time
}

func New() *Session {
	return &Session{state: Idle, now: time.Now}
}

// NewAt builds a session with an injected clock.
func NewAt(now func() time.Time) *Session {
	return &Session{state: Idle, now: now}
}

func (s *Session) State() State { return s.state }

// GoalID returns the identifier of the timed goal, or "" when idle.
func (s *Session) GoalID() string {
	if s.state == Idle {
		return ""
	}
	return s.goal.ID
}

// Start begins timing a goal from zero. A session already live for a
// different goal is discarded without producing a task.
// TODO: decide whether switching goals should stop-and-log the old session
// instead of dropping it.
func (s *Session) Start(goal model.Goal) {
	s.state = Running
	s.goal = goal
	s.start = s.now()
	s.accumulated = 0
}

// Toggle pauses a running session or resumes a paused one. A goal that is
// not the active one is a no-op.
func (s *Session) Toggle(goalID string) {
	if s.state == Idle || s.goal.ID != goalID {
		return
	}
	switch s.state {
	case Running:
		s.accumulated += int(s.now().Sub(s.start).Seconds())
		s.state = Paused
	case Paused:
		s.start = s.now()
		s.state = Running
	}
}

// Elapsed reports total tracked seconds: frozen while paused, ticking while
// running.
func (s *Session) Elapsed() int {
	switch s.state {
	case Running:
		return s.accumulated + int(s.now().Sub(s.start).Seconds())
	case Paused:
		return s.accumulated
	default:
		return 0
	}
}

// Stop ends the session for the given goal and derives a completed task
// from the tracked time. Returns false when the goal does not own the
// session or no time was tracked. The task lands on today's day index with
// a backdated start, clamped to the grid's opening hour and floored to the
// half hour.
func (s *Session) Stop(goalID string, today time.Time, gridStartHour int) (model.Task, bool) {
	if s.state == Idle || s.goal.ID != goalID {
		return model.Task{}, false
	}
	now := s.now()
	total := s.accumulated
	if s.state == Running {
		total += int(now.Sub(s.start).Seconds())
	}
	goal := s.goal
	s.state = Idle
	s.goal = model.Goal{}
	s.accumulated = 0

	if total <= 0 {
		return model.Task{}, false
	}

	minutes := (total + 59) / 60
	duration := ((minutes + model.DurationStep - 1) / model.DurationStep) * model.DurationStep
	if duration < model.MinDuration {
		duration = model.MinDuration
	}

	begin := now.Add(-time.Duration(total) * time.Second)
	hour, min := begin.Hour(), begin.Minute()
	if hour < gridStartHour {
		hour, min = gridStartHour, 0
	}
	if min >= 30 {
		min = 30
	} else {
		min = 0
	}

	title := strings.TrimSpace(goal.Text)
	if title == "" {
		title = DefaultTitle
	}
	color := goal.Color
	if color == "" {
		color = model.FallbackColor()
	}
	day := model.DayIndexOf(today)
	return model.Task{
		ID:        uuid.NewString(),
		Title:     title + " (timed)",
		DayIndex:  &day,
		StartTime: fmt.Sprintf("%02d:%02d", hour, min),
		Duration:  duration,
		Completed: true,
		Color:     color,
	}, true
}
