package model

import "time"

const (
	// DefaultDuration is the length assigned to a task when none is given.
	DefaultDuration = 30
	// MinDuration is the shortest schedulable block.
	MinDuration = 15
	// DurationStep is the granularity tasks snap to.
	DurationStep = 15
)

// Task is a schedulable unit on the week grid. DayIndex and StartTime are
// optional: a task without them sits in the unscheduled pool.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DayIndex    *int   `json:"dayIndex,omitempty"`  // 0=Monday .. 6=Sunday
	StartTime   string `json:"startTime,omitempty"` // "HH:MM", 24h local
	Duration    int    `json:"duration"`            // minutes
	Completed   bool   `json:"completed"`
	Color       string `json:"color,omitempty"`
}

// ClampDuration snaps minutes onto the allowed grid: at least MinDuration,
// rounded down to a DurationStep multiple.
func ClampDuration(minutes int) int {
	if minutes < MinDuration {
		return MinDuration
	}
	return minutes - minutes%DurationStep
}

// DayIndexOf maps a date to its Monday-anchored day index (Monday=0).
func DayIndexOf(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
