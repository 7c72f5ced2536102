// Package app owns all mutable planner state: the active week's tasks,
// goals and notes, the archive collection, and the work timer. Every
// mutation goes through a method here and ends in a synchronous sync step
// that persists the view and reconciles the week's archive entry.
package app

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rdo34/weekplan/internal/calendar"
	"github.com/rdo34/weekplan/internal/config"
	"github.com/rdo34/weekplan/internal/model"
	"github.com/rdo34/weekplan/internal/store"
	"github.com/rdo34/weekplan/internal/timer"
)

// App holds application state and provides the only mutation entry points.
type App struct {
	Cfg   config.Config
	Store store.Store
	Timer *timer.Session

	WeekStart time.Time // the active week's Monday, date-only
	WeekLabel string
	Tasks     []model.Task
	Goals     []model.Goal
	Thoughts  model.DailyThoughts

	Archives   []model.WeeklyArchive
	PickerOpen bool

	goalSeq int
	now     func() time.Time
}

// New restores persisted state, falling back to an empty current week when
// nothing (or nothing readable) is on disk.
func New(cfg config.Config, st store.Store) (*App, error) {
	a := &App{
		Cfg:      cfg,
		Store:    st,
		Timer:    timer.New(),
		Thoughts: model.DailyThoughts{},
		now:      time.Now,
	}
	archives, err := st.LoadArchives()
	if err != nil {
		return nil, err
	}
	a.Archives = archives

	v, ok, err := st.LoadView()
	if err != nil {
		return nil, err
	}
	if ok {
		if d, perr := time.ParseInLocation(calendar.DateKey, v.CurrentWeekStartDate, a.now().Location()); perr == nil {
			a.WeekStart = d
			a.WeekLabel = v.WeekLabel
			if a.WeekLabel == "" {
				a.WeekLabel = calendar.WeekLabel(d)
			}
			a.Tasks = v.Tasks
			a.Goals = v.Goals
			a.Thoughts = v.DailyThoughts
			a.goalSeq = len(v.Goals)
			return a, nil
		}
	}
	return a, a.SelectWeek(calendar.MondayOf(a.now()))
}

// --- Tasks ---

// AddTask creates a task on the active week. Zero duration takes the
// default; dayIndex nil leaves it unscheduled.
func (a *App) AddTask(title, description string, dayIndex *int, startTime string, duration int) (model.Task, error) {
	if duration == 0 {
		duration = model.DefaultDuration
	}
	t := model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		DayIndex:    dayIndex,
		StartTime:   startTime,
		Duration:    model.ClampDuration(duration),
		Color:       model.NextColor(len(a.Tasks)),
	}
	a.Tasks = append(a.Tasks, t)
	return t, a.sync()
}

// UpdateTask replaces the task with a matching ID; unknown IDs are no-ops.
func (a *App) UpdateTask(t model.Task) error {
	for i := range a.Tasks {
		if a.Tasks[i].ID == t.ID {
			t.Duration = model.ClampDuration(t.Duration)
			a.Tasks[i] = t
			return a.sync()
		}
	}
	return nil
}

// DeleteTask removes a task by ID; unknown IDs are no-ops.
func (a *App) DeleteTask(id string) error {
	kept := a.Tasks[:0]
	found := false
	for _, t := range a.Tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	a.Tasks = kept
	if !found {
		return nil
	}
	return a.sync()
}

// ToggleTask flips a task's completion flag.
func (a *App) ToggleTask(id string) error {
	for i := range a.Tasks {
		if a.Tasks[i].ID == id {
			a.Tasks[i].Completed = !a.Tasks[i].Completed
			return a.sync()
		}
	}
	return nil
}

// MoveTask drops a task onto a grid slot, or back into the unscheduled pool
// when dayIndex is negative.
func (a *App) MoveTask(id string, dayIndex int, startTime string) error {
	for i := range a.Tasks {
		if a.Tasks[i].ID != id {
			continue
		}
		if dayIndex < 0 || dayIndex > 6 {
			a.Tasks[i].DayIndex = nil
			a.Tasks[i].StartTime = ""
		} else {
			d := dayIndex
			a.Tasks[i].DayIndex = &d
			a.Tasks[i].StartTime = startTime
		}
		return a.sync()
	}
	return nil
}

// --- Goals ---

// AddGoal creates a weekly goal with the next palette color.
func (a *App) AddGoal(text string) (model.Goal, error) {
	g := model.Goal{
		ID:    uuid.NewString(),
		Text:  text,
		Color: model.NextColor(a.goalSeq),
	}
	a.goalSeq++
	a.Goals = append(a.Goals, g)
	return g, a.sync()
}

// ToggleGoal flips a goal's completion flag.
func (a *App) ToggleGoal(id string) error {
	for i := range a.Goals {
		if a.Goals[i].ID == id {
			a.Goals[i].Completed = !a.Goals[i].Completed
			return a.sync()
		}
	}
	return nil
}

// DeleteGoal removes a goal; a timer running for it keeps ticking until
// stopped or replaced.
func (a *App) DeleteGoal(id string) error {
	kept := a.Goals[:0]
	found := false
	for _, g := range a.Goals {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	a.Goals = kept
	if !found {
		return nil
	}
	return a.sync()
}

// ScheduleGoal drops a goal onto the grid as a task carrying its color.
func (a *App) ScheduleGoal(goalID string, dayIndex int, startTime string) (model.Task, error) {
	for _, g := range a.Goals {
		if g.ID != goalID {
			continue
		}
		d := dayIndex
		t := model.Task{
			ID:        uuid.NewString(),
			Title:     g.Text,
			DayIndex:  &d,
			StartTime: startTime,
			Duration:  model.DefaultDuration,
			Color:     g.Color,
		}
		a.Tasks = append(a.Tasks, t)
		return t, a.sync()
	}
	return model.Task{}, nil
}

// --- Notes ---

// SetThought stores the free-text note for a day label.
func (a *App) SetThought(day, text string) error {
	valid := false
	for _, n := range model.DayNames {
		if n == day {
			valid = true
			break
		}
	}
	if !valid {
		return nil
	}
	if a.Thoughts == nil {
		a.Thoughts = model.DailyThoughts{}
	}
	a.Thoughts[day] = text
	return a.sync()
}

// --- Timer ---

// StartTimer begins timing a goal; any live session for another goal is
// dropped without producing a task.
func (a *App) StartTimer(goalID string) {
	for _, g := range a.Goals {
		if g.ID == goalID {
			a.Timer.Start(g)
			return
		}
	}
}

// ToggleTimer pauses or resumes the active goal's session.
func (a *App) ToggleTimer(goalID string) { a.Timer.Toggle(goalID) }

// StopTimer ends the session and, when time was tracked, lands the derived
// completed task on today's column of the active week.
func (a *App) StopTimer(goalID string) (model.Task, bool, error) {
	task, ok := a.Timer.Stop(goalID, a.now(), a.Cfg.GridStartHour)
	if !ok {
		return model.Task{}, false, nil
	}
	a.Tasks = append(a.Tasks, task)
	return task, true, a.sync()
}

// --- Week navigation ---

// SelectWeek swaps the active week: a matching archive loads verbatim, an
// unknown week clears to empty state with a synthesized label. The picker
// closes either way.
func (a *App) SelectWeek(target time.Time) error {
	key := dateOnly(target)
	a.WeekStart = key
	a.PickerOpen = false
	if arc := a.findArchive(key.Format(calendar.DateKey)); arc != nil {
		a.Tasks = append([]model.Task(nil), arc.Tasks...)
		a.Goals = append([]model.Goal(nil), arc.Goals...)
		a.Thoughts = arc.DailyThoughts.Clone()
		a.WeekLabel = arc.WeekLabel
	} else {
		a.Tasks = []model.Task{}
		a.Goals = []model.Goal{}
		a.Thoughts = model.DailyThoughts{}
		a.WeekLabel = calendar.WeekLabel(key)
	}
	a.goalSeq = len(a.Goals)
	return a.persistView()
}

// ShiftWeek moves the view forward or back by whole weeks.
func (a *App) ShiftWeek(deltaWeeks int) error {
	return a.SelectWeek(a.WeekStart.AddDate(0, 0, 7*deltaWeeks))
}

// GoToCurrentWeek jumps to the week containing now.
func (a *App) GoToCurrentWeek() error {
	return a.SelectWeek(calendar.MondayOf(a.now()))
}

// HistoryGrid builds the browsable year/month/week grid for the picker.
func (a *App) HistoryGrid() calendar.Grid {
	return calendar.BuildGrid(a.now(), a.Archives, a.Cfg.PlanningYears(a.now().Year()))
}

// ArchivesNewestFirst returns the archive list ordered for display.
func (a *App) ArchivesNewestFirst() []model.WeeklyArchive {
	out := append([]model.WeeklyArchive(nil), a.Archives...)
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStartDate > out[j].WeekStartDate })
	return out
}

// --- Synchronizer ---

// HasContent reports whether the active week holds anything worth keeping.
func (a *App) HasContent() bool {
	return len(a.Tasks) > 0 || len(a.Goals) > 0 || a.Thoughts.HasContent()
}

// sync is the post-mutation hook: reconcile the active week's archive entry
// (create, overwrite or prune) and persist everything.
func (a *App) sync() error {
	key := a.WeekStart.Format(calendar.DateKey)
	idx := -1
	for i := range a.Archives {
		if a.Archives[i].WeekStartDate == key {
			idx = i
			break
		}
	}
	hasContent := a.HasContent()
	switch {
	case idx >= 0 && !hasContent:
		a.Archives = append(a.Archives[:idx], a.Archives[idx+1:]...)
	case idx >= 0:
		a.Archives[idx] = a.snapshot(a.Archives[idx].ID)
	case hasContent:
		a.Archives = append(a.Archives, a.snapshot(uuid.NewString()))
	}
	if err := a.Store.SaveArchives(a.Archives); err != nil {
		return err
	}
	return a.persistView()
}

func (a *App) snapshot(id string) model.WeeklyArchive {
	return model.WeeklyArchive{
		ID:            id,
		WeekStartDate: a.WeekStart.Format(calendar.DateKey),
		WeekLabel:     a.WeekLabel,
		Tasks:         append([]model.Task(nil), a.Tasks...),
		Goals:         append([]model.Goal(nil), a.Goals...),
		DailyThoughts: a.Thoughts.Clone(),
	}
}

func (a *App) persistView() error {
	return a.Store.SaveView(store.ViewRecord{
		Tasks:                a.Tasks,
		Goals:                a.Goals,
		DailyThoughts:        a.Thoughts,
		CurrentWeekStartDate: a.WeekStart.Format(calendar.DateKey),
		WeekLabel:            a.WeekLabel,
	})
}

func (a *App) findArchive(key string) *model.WeeklyArchive {
	for i := range a.Archives {
		if a.Archives[i].WeekStartDate == key {
			return &a.Archives[i]
		}
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TaskByID returns the task and whether it exists.
func (a *App) TaskByID(id string) (model.Task, bool) {
	for _, t := range a.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// GoalByID returns the goal and whether it exists.
func (a *App) GoalByID(id string) (model.Goal, bool) {
	for _, g := range a.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return model.Goal{}, false
}

// TasksForSlot lists scheduled tasks covering a day/time cell, in start
// order, for the grid renderer.
func (a *App) TasksForSlot(dayIndex int, hhmm string) []model.Task {
	var out []model.Task
	for _, t := range a.Tasks {
		if t.DayIndex == nil || *t.DayIndex != dayIndex || t.StartTime == "" {
			continue
		}
		if t.StartTime == hhmm {
			out = append(out, t)
		}
	}
	return out
}

// UnscheduledTasks lists tasks not yet placed on the grid.
func (a *App) UnscheduledTasks() []model.Task {
	var out []model.Task
	for _, t := range a.Tasks {
		if t.DayIndex == nil || strings.TrimSpace(t.StartTime) == "" {
			out = append(out, t)
		}
	}
	return out
}
