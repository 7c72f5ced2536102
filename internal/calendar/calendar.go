// Package calendar implements the week math behind the planner: Monday
// resolution, week labels, majority-month assignment and the year/month/week
// grid the history picker browses. Everything here is a pure function of its
// inputs.
package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/rdo34/weekplan/internal/model"
)

// DateKey is the wire format for week-start dates.
const DateKey = "2006-01-02"

// WeekEntry is one selectable week cell in the history grid.
type WeekEntry struct {
	Monday   time.Time
	DayLabel string // day-of-month shown in the cell
	Archive  *model.WeeklyArchive
}

// MonthBuckets holds the weeks of one year, bucketed by majority month (0-11).
type MonthBuckets [12][]WeekEntry

// Grid is the full browsable history: ordered years, each with 12 month buckets.
type Grid struct {
	Years []int
	Data  map[int]*MonthBuckets
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MondayOf returns the Monday anchoring the week containing t, time zeroed.
// Idempotent: MondayOf(MondayOf(t)) == MondayOf(t).
func MondayOf(t time.Time) time.Time {
	d := dateOnly(t)
	return d.AddDate(0, 0, -((int(d.Weekday()) + 6) % 7))
}

// WeekLabel formats "{year} - Week {N}" for the week containing t. N counts
// Sunday-started rows of the year's calendar, so the week of Jan 1 is week 1.
func WeekLabel(t time.Time) string {
	d := dateOnly(t)
	jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, d.Location())
	days := d.YearDay() - 1
	n := (days + int(jan1.Weekday()) + 1 + 6) / 7 // ceil
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("%d - Week %d", d.Year(), n)
}

// MajorityMonth returns the month and year holding at least four of the
// week's days: the month of the Monday's Thursday.
func MajorityMonth(monday time.Time) (time.Month, int) {
	th := dateOnly(monday).AddDate(0, 0, 3)
	return th.Month(), th.Year()
}

// BuildGrid produces the history grid for the current year, every year an
// archive references, and any extra years requested (e.g. a configured
// planning range). Weeks land in their majority-month bucket in chronological
// order; a week whose Monday matches an archive's week-start date carries a
// pointer to that archive.
func BuildGrid(now time.Time, archives []model.WeeklyArchive, extraYears []int) Grid {
	byStart := make(map[string]*model.WeeklyArchive, len(archives))
	yearSet := map[int]bool{now.Year(): true}
	for i := range archives {
		a := &archives[i]
		byStart[a.WeekStartDate] = a
		if monday, err := time.ParseInLocation(DateKey, a.WeekStartDate, now.Location()); err == nil {
			_, y := MajorityMonth(monday)
			yearSet[y] = true
		}
	}
	for _, y := range extraYears {
		yearSet[y] = true
	}

	g := Grid{Data: make(map[int]*MonthBuckets, len(yearSet))}
	for y := range yearSet {
		g.Years = append(g.Years, y)
	}
	sort.Ints(g.Years)

	for _, year := range g.Years {
		buckets := new(MonthBuckets)
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
		for cursor := MondayOf(jan1.AddDate(0, 0, -12)); ; cursor = cursor.AddDate(0, 0, 7) {
			month, my := MajorityMonth(cursor)
			if my > year {
				break
			}
			if my < year {
				continue
			}
			buckets[int(month)-1] = append(buckets[int(month)-1], WeekEntry{
				Monday:   cursor,
				DayLabel: fmt.Sprintf("%d", cursor.Day()),
				Archive:  byStart[cursor.Format(DateKey)],
			})
		}
		g.Data[year] = buckets
	}
	return g
}
