package model

import "strings"

// DayNames are the fixed labels keying per-day notes, Monday first.
var DayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DailyThoughts maps a day name to free-text note content.
type DailyThoughts map[string]string

// HasContent reports whether any note holds non-blank text.
func (d DailyThoughts) HasContent() bool {
	for _, v := range d {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Clone returns an independent copy so snapshots never alias live state.
func (d DailyThoughts) Clone() DailyThoughts {
	out := make(DailyThoughts, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// WeeklyArchive is the unit of persistence: one snapshot of a week's tasks,
// goals and notes, keyed by the Monday that anchors the week.
type WeeklyArchive struct {
	ID            string        `json:"id"`
	WeekStartDate string        `json:"weekStartDate"` // "YYYY-MM-DD"
	WeekLabel     string        `json:"weekLabel"`
	Tasks         []Task        `json:"tasks"`
	Goals         []Goal        `json:"goals"`
	DailyThoughts DailyThoughts `json:"dailyThoughts"`
}
