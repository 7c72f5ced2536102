package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rdo34/weekplan/internal/app"
	"github.com/rdo34/weekplan/internal/calendar"
	"github.com/rdo34/weekplan/internal/config"
	"github.com/rdo34/weekplan/internal/model"
	"github.com/rdo34/weekplan/internal/notify"
	"github.com/rdo34/weekplan/internal/store"
	"github.com/rdo34/weekplan/internal/timer"
)

const DefaultControls = "[a] Task  [g] Goal  [n] Note  [c] Done  [x] Delete  [s/p/S] Timer  [[/]] Week  [w] History  [?] Help"

type UI struct {
	app      *tview.Application
	pages    *tview.Pages
	state    *app.App
	cfg      config.Config
	prefs    store.Preferences
	notifyOK bool

	grid       *tview.Grid
	table      *tview.Table
	sidebar    *tview.TextView
	titleLeft  *tview.TextView
	titleRight *tview.TextView
	controls   *tview.TextView

	goalCursor int

	// Inline input area (bottom, above controls)
	inputActive    bool
	inputPrimitive tview.Primitive
	// lightweight confirmation mode (no input box)
	confirmCallback func(confirm bool)
	promptMessage   string

	quit      chan struct{}
	timerStop chan struct{}
}

// New constructs the TUI: header, week grid, goals sidebar, controls footer.
func New(cfg config.Config) *UI {
	appView := tview.NewApplication()

	// State and storage
	var st *store.FSStore
	var err error
	if cfg.DataDir != "" {
		st, err = store.NewFSStore(cfg.DataDir)
	} else {
		st, err = store.NewDefaultFSStore()
	}
	if err != nil {
		// Fallback to a local workspace directory when OS dirs are unavailable.
		st, _ = store.NewFSStore(".weekplan-data")
	}
	state, err := app.New(cfg, st)
	if err != nil {
		// Unreadable data root: fall back to a workspace-local one.
		state = mustLocalApp(cfg)
	}

	prefs, _ := store.LoadPreferences()
	if prefs.LastWeekStart != "" {
		if d, perr := time.ParseInLocation(calendar.DateKey, prefs.LastWeekStart, time.Local); perr == nil {
			_ = state.SelectWeek(d)
		}
	}

	titleLeft := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignLeft)
	titleRight := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignRight)
	titleGrid := tview.NewGrid().SetRows(1).SetColumns(0, 0)
	titleGrid.AddItem(titleLeft, 0, 0, 1, 1, 0, 0, false)
	titleGrid.AddItem(titleRight, 0, 1, 1, 1, 0, 0, false)
	headerRule := tview.NewTextView().SetDynamicColors(true)
	headerRule.SetText("[green]" + strings.Repeat("─", 200))
	controls := tview.NewTextView().SetTextAlign(tview.AlignCenter)

	table := tview.NewTable().SetBorders(false).SetSelectable(true, true).SetFixed(1, 1)
	sidebar := tview.NewTextView().SetDynamicColors(true)

	sidebarWidth := 34
	if prefs.SidebarWidth > 0 {
		sidebarWidth = prefs.SidebarWidth
	}

	grid := tview.NewGrid().
		SetRows(1, 1, 0, 0, 3).           // header, rule, grid, (hidden input), controls
		SetColumns(0, sidebarWidth).      // week grid flex, sidebar fixed
		AddItem(titleGrid, 0, 0, 1, 2, 0, 0, false).
		AddItem(headerRule, 1, 0, 1, 2, 0, 0, false).
		AddItem(table, 2, 0, 1, 1, 0, 0, true).
		AddItem(sidebar, 2, 1, 1, 1, 0, 0, false).
		AddItem(controls, 4, 0, 1, 2, 0, 0, false)

	u := &UI{
		app: appView, pages: tview.NewPages(), state: state, cfg: cfg, prefs: prefs,
		grid: grid, table: table, sidebar: sidebar,
		titleLeft: titleLeft, titleRight: titleRight, controls: controls,
		quit: make(chan struct{}),
	}
	u.notifyOK = prefs.Notifications && notify.Available()

	table.SetSelectionChangedFunc(func(row, col int) { u.updateStatus() })

	grid.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if u.inputActive {
			if u.confirmCallback != nil {
				switch event.Key() {
				case tcell.KeyEnter:
					cb := u.confirmCallback
					u.confirmCallback = nil
					u.inputActive = false
					u.promptMessage = ""
					u.updateStatus()
					cb(true)
					return nil
				case tcell.KeyEscape:
					cb := u.confirmCallback
					u.confirmCallback = nil
					u.inputActive = false
					u.promptMessage = ""
					u.updateStatus()
					cb(false)
					return nil
				default:
					return nil
				}
			}
			return event
		}
		switch event.Key() {
		case tcell.KeyEscape:
			appView.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case '[':
				_ = u.state.ShiftWeek(-1)
				u.weekChanged()
				return nil
			case ']':
				_ = u.state.ShiftWeek(1)
				u.weekChanged()
				return nil
			case 'T':
				_ = u.state.GoToCurrentWeek()
				u.weekChanged()
				return nil
			case 'w':
				u.showHistoryPicker()
				return nil
			case 'a':
				u.showAddTask()
				return nil
			case 'e':
				u.showEditTask()
				return nil
			case 'x':
				u.showDeleteConfirm()
				return nil
			case 'c':
				u.toggleSelectedTask()
				return nil
			case 'u':
				u.unscheduleSelected()
				return nil
			case 'g':
				u.showAddGoal()
				return nil
			case 'j':
				u.moveGoalCursor(1)
				return nil
			case 'k':
				u.moveGoalCursor(-1)
				return nil
			case 'G':
				u.toggleSelectedGoal()
				return nil
			case 'X':
				u.deleteSelectedGoal()
				return nil
			case 'd':
				u.dropGoalOnSlot()
				return nil
			case 's':
				u.startTimerOnSelectedGoal()
				return nil
			case 'p':
				u.toggleTimer()
				return nil
			case 'S':
				u.stopTimer()
				return nil
			case 'n':
				u.showNoteEditor()
				return nil
			case 'N':
				u.toggleNotifications()
				return nil
			case '?':
				u.showHelp()
				return nil
			}
		}
		return event
	})

	u.pages.AddPage("main", grid, true, true)
	u.refreshGrid()
	u.refreshSidebar()
	return u
}

func mustLocalApp(cfg config.Config) *app.App {
	st, err := store.NewFSStore(".weekplan-data")
	if err != nil {
		panic(err)
	}
	a, err := app.New(cfg, st)
	if err != nil {
		panic(err)
	}
	return a
}

// Run starts the event loop plus the minute tick that repositions the
// current-time indicator. Everything is torn down when the loop exits.
func (u *UI) Run() error {
	go func() {
		t := time.NewTicker(time.Minute)
		defer t.Stop()
		for {
			select {
			case <-u.quit:
				return
			case <-t.C:
				u.app.QueueUpdateDraw(u.refreshGrid)
			}
		}
	}()
	err := u.app.SetRoot(u.pages, true).SetFocus(u.table).Run()
	close(u.quit)
	u.stopTimerTicker()
	return err
}

// --- Grid ---

func (u *UI) slotCount() int {
	hours := u.cfg.GridEndHour - u.cfg.GridStartHour
	return hours * 60 / u.cfg.SlotMinutes
}

func (u *UI) slotLabel(i int) string {
	minutes := u.cfg.GridStartHour*60 + i*u.cfg.SlotMinutes
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// nowSlot returns the slot row for the wall clock, or -1 when now is outside
// the visible week or grid hours.
func (u *UI) nowSlot() int {
	now := time.Now()
	if !calendar.MondayOf(now).Equal(u.state.WeekStart) {
		return -1
	}
	mins := now.Hour()*60 + now.Minute()
	lo := u.cfg.GridStartHour * 60
	hi := u.cfg.GridEndHour * 60
	if mins < lo || mins >= hi {
		return -1
	}
	return (mins - lo) / u.cfg.SlotMinutes
}

func (u *UI) refreshGrid() {
	u.table.Clear()
	u.table.SetCell(0, 0, tview.NewTableCell("").SetSelectable(false))
	for d, name := range model.DayNames {
		day := u.state.WeekStart.AddDate(0, 0, d)
		head := fmt.Sprintf("[::b]%s %d[-:-:-]", name, day.Day())
		u.table.SetCell(0, d+1, tview.NewTableCell(head).SetAlign(tview.AlignCenter).SetSelectable(false).SetExpansion(1))
	}
	nowRow := u.nowSlot()
	for i := 0; i < u.slotCount(); i++ {
		label := u.slotLabel(i)
		cell := tview.NewTableCell("[gray]" + label).SetSelectable(false)
		if i == nowRow {
			cell.SetText("[red::b]" + label)
		}
		u.table.SetCell(i+1, 0, cell)
		for d := 0; d < 7; d++ {
			u.table.SetCell(i+1, d+1, tview.NewTableCell(u.slotText(d, label)).SetExpansion(1))
		}
	}
	u.updateStatus()
}

func (u *UI) slotText(day int, hhmm string) string {
	tasks := u.state.TasksForSlot(day, hhmm)
	if len(tasks) == 0 {
		return ""
	}
	parts := make([]string, 0, len(tasks))
	for _, t := range tasks {
		mark := "•"
		if t.Completed {
			mark = "✓"
		}
		color := t.Color
		if color == "" {
			color = "white"
		}
		parts = append(parts, fmt.Sprintf("[%s]%s %s[-]", color, mark, t.Title))
	}
	return strings.Join(parts, "  ")
}

// selectedSlot maps the table selection to a day index and slot time.
func (u *UI) selectedSlot() (int, string, bool) {
	row, col := u.table.GetSelection()
	if row < 1 || col < 1 || row > u.slotCount() || col > 7 {
		return 0, "", false
	}
	return col - 1, u.slotLabel(row - 1), true
}

// selectedTask returns the first task occupying the selected cell.
func (u *UI) selectedTask() (model.Task, bool) {
	day, hhmm, ok := u.selectedSlot()
	if !ok {
		return model.Task{}, false
	}
	tasks := u.state.TasksForSlot(day, hhmm)
	if len(tasks) == 0 {
		return model.Task{}, false
	}
	return tasks[0], true
}

func (u *UI) weekChanged() {
	u.prefs.LastWeekStart = u.state.WeekStart.Format(calendar.DateKey)
	_ = store.SavePreferences(u.prefs)
	u.refreshGrid()
	u.refreshSidebar()
}

// --- Sidebar ---

func (u *UI) goalGlyph(g model.Goal) string {
	switch {
	case u.state.Timer.GoalID() == g.ID && u.state.Timer.State() == timer.Running:
		return "▶"
	case u.state.Timer.GoalID() == g.ID && u.state.Timer.State() == timer.Paused:
		return "⏸"
	case g.Completed:
		return "✓"
	default:
		return "○"
	}
}

func (u *UI) refreshSidebar() {
	var b strings.Builder
	b.WriteString("[::b]Goals[-:-:-]\n")
	if len(u.state.Goals) == 0 {
		b.WriteString("[gray]none yet — press 'g'[-]\n")
	}
	for i, g := range u.state.Goals {
		cursor := "  "
		if i == u.goalCursor {
			cursor = "> "
		}
		color := g.Color
		if color == "" {
			color = "white"
		}
		line := fmt.Sprintf("%s[%s]%s %s[-]", cursor, color, u.goalGlyph(g), g.Text)
		if u.state.Timer.GoalID() == g.ID {
			sec := u.state.Timer.Elapsed()
			line += fmt.Sprintf("  [yellow]%02d:%02d:%02d[-]", sec/3600, sec%3600/60, sec%60)
		}
		b.WriteString(line + "\n")
	}

	if pool := u.state.UnscheduledTasks(); len(pool) > 0 {
		b.WriteString("\n[::b]Unscheduled[-:-:-]\n")
		for _, t := range pool {
			b.WriteString("  • " + t.Title + "\n")
		}
	}

	b.WriteString("\n[::b]Notes[-:-:-]\n")
	for _, name := range model.DayNames {
		if txt := strings.TrimSpace(u.state.Thoughts[name]); txt != "" {
			b.WriteString(fmt.Sprintf("  %s: %s\n", name, firstLine(txt)))
		}
	}
	u.sidebar.SetText(b.String())
	u.ensureTimerTicker()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}
	return s
}

func (u *UI) moveGoalCursor(delta int) {
	n := len(u.state.Goals)
	if n == 0 {
		return
	}
	u.goalCursor += delta
	if u.goalCursor < 0 {
		u.goalCursor = 0
	}
	if u.goalCursor > n-1 {
		u.goalCursor = n - 1
	}
	u.refreshSidebar()
}

func (u *UI) cursorGoal() (model.Goal, bool) {
	if u.goalCursor < 0 || u.goalCursor >= len(u.state.Goals) {
		return model.Goal{}, false
	}
	return u.state.Goals[u.goalCursor], true
}

// --- Timer ---

func (u *UI) startTimerOnSelectedGoal() {
	g, ok := u.cursorGoal()
	if !ok {
		return
	}
	u.state.StartTimer(g.ID)
	u.refreshSidebar()
}

func (u *UI) toggleTimer() {
	if id := u.state.Timer.GoalID(); id != "" {
		u.state.ToggleTimer(id)
		u.refreshSidebar()
	}
}

func (u *UI) stopTimer() {
	id := u.state.Timer.GoalID()
	if id == "" {
		return
	}
	task, ok, _ := u.state.StopTimer(id)
	if ok && u.notifyOK {
		notify.Send("weekplan", fmt.Sprintf("Logged %d min: %s", task.Duration, task.Title))
	}
	u.refreshGrid()
	u.refreshSidebar()
}

// ensureTimerTicker keeps a one-second redraw loop alive exactly while a
// session is running; paused or idle sessions must not leak the interval.
func (u *UI) ensureTimerTicker() {
	if u.state.Timer.State() == timer.Running {
		if u.timerStop != nil {
			return
		}
		stop := make(chan struct{})
		u.timerStop = stop
		go func() {
			t := time.NewTicker(time.Second)
			defer t.Stop()
			for {
				select {
				case <-stop:
					return
				case <-u.quit:
					return
				case <-t.C:
					u.app.QueueUpdateDraw(u.refreshSidebar)
				}
			}
		}()
		return
	}
	u.stopTimerTicker()
}

func (u *UI) stopTimerTicker() {
	if u.timerStop != nil {
		close(u.timerStop)
		u.timerStop = nil
	}
}

// --- Task actions ---

func (u *UI) toggleSelectedTask() {
	if t, ok := u.selectedTask(); ok {
		_ = u.state.ToggleTask(t.ID)
		u.refreshGrid()
	}
}

func (u *UI) unscheduleSelected() {
	if t, ok := u.selectedTask(); ok {
		_ = u.state.MoveTask(t.ID, -1, "")
		u.refreshGrid()
		u.refreshSidebar()
	}
}

func (u *UI) dropGoalOnSlot() {
	g, gok := u.cursorGoal()
	day, hhmm, sok := u.selectedSlot()
	if !gok || !sok {
		return
	}
	_, _ = u.state.ScheduleGoal(g.ID, day, hhmm)
	u.refreshGrid()
}

func (u *UI) toggleSelectedGoal() {
	if g, ok := u.cursorGoal(); ok {
		_ = u.state.ToggleGoal(g.ID)
		u.refreshSidebar()
	}
}

func (u *UI) deleteSelectedGoal() {
	g, ok := u.cursorGoal()
	if !ok {
		return
	}
	u.inputActive = true
	u.promptMessage = "Delete goal \"" + g.Text + "\"?"
	u.confirmCallback = func(confirm bool) {
		if confirm {
			_ = u.state.DeleteGoal(g.ID)
			if u.goalCursor >= len(u.state.Goals) && u.goalCursor > 0 {
				u.goalCursor--
			}
			u.refreshSidebar()
		}
	}
	u.updateStatus()
}

func (u *UI) toggleNotifications() {
	if !u.prefs.Notifications {
		// Ask for the capability before enabling the affordance.
		if !notify.Request() {
			u.controls.SetText("[red]No desktop notifier available[-]  " + DefaultControls)
			return
		}
	}
	u.prefs.Notifications = !u.prefs.Notifications
	u.notifyOK = u.prefs.Notifications && notify.Available()
	_ = store.SavePreferences(u.prefs)
	u.updateStatus()
}

// --- Dialogs ---

func (u *UI) showAddTask() {
	day, hhmm, ok := u.selectedSlot()
	label := "Add task: "
	if ok {
		label = fmt.Sprintf("Add task (%s %s): ", model.DayNames[day], hhmm)
	}
	field := tview.NewInputField().SetLabel(label).SetFieldWidth(50)
	styleInputField(field)
	field.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			u.hideInput()
			return nil
		case tcell.KeyEnter:
			text := strings.TrimSpace(field.GetText())
			if text == "" {
				return nil
			}
			if ok {
				d := day
				_, _ = u.state.AddTask(text, "", &d, hhmm, 0)
			} else {
				_, _ = u.state.AddTask(text, "", nil, "", 0)
			}
			u.hideInput()
			u.refreshGrid()
			u.refreshSidebar()
			return nil
		}
		return event
	})
	u.showInput(field)
}

func (u *UI) showEditTask() {
	t, ok := u.selectedTask()
	if !ok {
		return
	}
	field := tview.NewInputField().SetLabel("Edit: ").SetText(t.Title).SetFieldWidth(50)
	styleInputField(field)
	field.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			u.hideInput()
			return nil
		case tcell.KeyEnter:
			if strings.TrimSpace(field.GetText()) == "" {
				return nil
			}
			t.Title = field.GetText()
			_ = u.state.UpdateTask(t)
			u.hideInput()
			u.refreshGrid()
			return nil
		}
		return event
	})
	u.showInput(field)
}

func (u *UI) showDeleteConfirm() {
	t, ok := u.selectedTask()
	if !ok {
		return
	}
	u.inputActive = true
	u.promptMessage = "Delete task \"" + t.Title + "\"?"
	u.confirmCallback = func(confirm bool) {
		if confirm {
			_ = u.state.DeleteTask(t.ID)
			u.refreshGrid()
			u.refreshSidebar()
		}
	}
	u.updateStatus()
}

func (u *UI) showAddGoal() {
	field := tview.NewInputField().SetLabel("Add goal: ").SetFieldWidth(50)
	styleInputField(field)
	field.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			u.hideInput()
			return nil
		case tcell.KeyEnter:
			text := strings.TrimSpace(field.GetText())
			if text == "" {
				return nil
			}
			_, _ = u.state.AddGoal(text)
			u.goalCursor = len(u.state.Goals) - 1
			u.hideInput()
			u.refreshSidebar()
			return nil
		}
		return event
	})
	u.showInput(field)
}

func (u *UI) showNoteEditor() {
	day := 0
	if d, _, ok := u.selectedSlot(); ok {
		day = d
	}
	name := model.DayNames[day]
	field := tview.NewInputField().SetLabel("Note (" + name + "): ").SetText(u.state.Thoughts[name]).SetFieldWidth(60)
	styleInputField(field)
	field.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			u.hideInput()
			return nil
		case tcell.KeyEnter:
			_ = u.state.SetThought(name, field.GetText())
			u.hideInput()
			u.refreshSidebar()
			return nil
		}
		return event
	})
	u.showInput(field)
}

// showHistoryPicker opens the week browser built from the calendar grid:
// every planning year, month by month, each week selectable, archived weeks
// highlighted.
func (u *UI) showHistoryPicker() {
	u.state.PickerOpen = true
	grid := u.state.HistoryGrid()

	list := tview.NewList().ShowSecondaryText(false)
	type target struct{ monday time.Time }
	var targets []target
	for _, year := range grid.Years {
		buckets := grid.Data[year]
		list.AddItem(fmt.Sprintf("[::b]%d[-:-:-]", year), "", 0, nil)
		targets = append(targets, target{})
		for mi := 0; mi < 12; mi++ {
			weeks := buckets[mi]
			if len(weeks) == 0 {
				continue
			}
			for _, w := range weeks {
				line := fmt.Sprintf("  %s %2s", time.Month(mi+1).String()[:3], w.DayLabel)
				if w.Archive != nil {
					line += "  [teal]" + w.Archive.WeekLabel + " ◆[-]"
				}
				if w.Monday.Equal(u.state.WeekStart) {
					line += "  [yellow]← viewing[-]"
				}
				list.AddItem(line, "", 0, nil)
				targets = append(targets, target{monday: w.Monday})
			}
		}
	}
	list.SetSelectedFunc(func(i int, _ string, _ string, _ rune) {
		if i < 0 || i >= len(targets) || targets[i].monday.IsZero() {
			return
		}
		_ = u.state.SelectWeek(targets[i].monday)
		u.closePicker()
		u.weekChanged()
	})
	list.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
			u.closePicker()
			return nil
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'j':
				moveDown(list)
				return nil
			case 'k':
				moveUp(list)
				return nil
			}
		}
		return ev
	})

	hints := tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText("[j/k] Move   [enter] Open week   [esc] Close")
	inner := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(list, 0, 1, true).
		AddItem(hints, 1, 0, false)
	overlay := wrapWithRules(inner)

	u.pages.AddPage("history", center(48, 24, overlay), true, true)
	u.inputActive = true
	u.app.SetFocus(list)
	u.updateStatus()
}

func (u *UI) closePicker() {
	u.state.PickerOpen = false
	u.pages.RemovePage("history")
	u.inputActive = false
	u.app.SetFocus(u.table)
	u.updateStatus()
}

func (u *UI) showHelp() {
	lines := []string{
		"[green::b]weekplan[-] — Help",
		"",
		"Week:",
		"  [ Prev  ] Next   T This week   w History picker",
		"",
		"Grid (arrows move the cell cursor):",
		"  a Add task at slot   e Edit   x Delete   c Toggle done   u Unschedule",
		"",
		"Goals (j/k move the goal cursor):",
		"  g Add   G Toggle done   X Delete   d Drop onto selected slot",
		"",
		"Timer (acts on the goal under the cursor):",
		"  s Start   p Pause/resume   S Stop and log a task",
		"",
		"Other:",
		"  n Note for selected day   N Toggle notifications",
		"",
		"Close: Esc",
	}
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true).
		SetText(strings.Join(lines, "\n")).
		SetTextAlign(tview.AlignLeft)
	tv.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			u.pages.RemovePage("help")
			u.app.SetFocus(u.table)
			return nil
		}
		return nil
	})
	overlay := pad(wrapWithRules(tv), 1, 1)
	u.pages.AddPage("help", overlay, true, true)
	u.app.SetFocus(tv)
}

// --- Status line ---

func (u *UI) updateStatus() {
	left := "[green::b]WEEKPLAN[-]"
	rng := u.state.WeekStart.Format("2006-01-02") + " → " + u.state.WeekStart.AddDate(0, 0, 6).Format("2006-01-02")
	right := u.state.WeekLabel + "  " + rng
	if pct := u.percentComplete(); pct >= 0 {
		right += fmt.Sprintf("  (%d%% done)", pct)
	}
	u.titleLeft.SetText(left)
	u.titleRight.SetText(right)

	if u.inputActive {
		if u.confirmCallback != nil {
			msg := u.promptMessage
			if strings.TrimSpace(msg) != "" {
				u.controls.SetText(msg + "  [enter] Confirm  [esc] Cancel")
			} else {
				u.controls.SetText("[enter] Confirm  [esc] Cancel")
			}
		} else {
			u.controls.SetText("[enter] Confirm  [esc] Cancel")
		}
		return
	}
	note := ""
	if u.notifyOK {
		note = "    🔔"
	}
	u.controls.SetText(DefaultControls + note)
}

// percentComplete reports completed tasks over all tasks in the active week,
// or -1 with no tasks.
func (u *UI) percentComplete() int {
	total := len(u.state.Tasks)
	if total == 0 {
		return -1
	}
	done := 0
	for _, t := range u.state.Tasks {
		if t.Completed {
			done++
		}
	}
	return int((float64(done) / float64(total)) * 100.0)
}

// --- Inline input helpers ---

func (u *UI) showInput(p tview.Primitive) {
	if u.inputActive && u.inputPrimitive != nil {
		u.grid.RemoveItem(u.inputPrimitive)
	}
	u.confirmCallback = nil
	u.promptMessage = ""
	container := wrapWithRules(p)
	u.inputPrimitive = container
	u.inputActive = true
	u.grid.SetRows(1, 1, 0, 3, 3)
	u.grid.AddItem(container, 3, 0, 1, 2, 0, 0, true)
	u.app.SetFocus(p)
	u.updateStatus()
}

func (u *UI) hideInput() {
	if u.inputPrimitive != nil {
		u.grid.RemoveItem(u.inputPrimitive)
	}
	u.inputActive = false
	u.inputPrimitive = nil
	u.confirmCallback = nil
	u.promptMessage = ""
	u.grid.SetRows(1, 1, 0, 0, 3)
	u.app.SetFocus(u.table)
	u.updateStatus()
}

func styleInputField(f *tview.InputField) {
	f.SetBackgroundColor(tcell.ColorDefault)
	f.SetFieldBackgroundColor(tcell.ColorDefault)
	f.SetBorderAttributes(tcell.AttrNone)
}

// wrapWithRules surrounds a primitive with a simple top and bottom horizontal rule.
func wrapWithRules(p tview.Primitive) tview.Primitive {
	top := tview.NewTextView().SetDynamicColors(true)
	bottom := tview.NewTextView().SetDynamicColors(true)
	line := "[green]" + strings.Repeat("─", 200)
	top.SetText(line)
	bottom.SetText(line)
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 1, 0, false).
		AddItem(p, 0, 1, true).
		AddItem(bottom, 1, 0, false)
}

// center returns a centered primitive with a fixed size.
func center(w, h int, p tview.Primitive) tview.Primitive {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(tview.NewFlex().
			AddItem(tview.NewBox(), 0, 1, false).
			AddItem(p, w, 0, true).
			AddItem(tview.NewBox(), 0, 1, false),
			h, 0, true).
		AddItem(tview.NewBox(), 0, 1, false)
}

// pad adds padding around a primitive while letting it fill remaining space.
func pad(p tview.Primitive, hpad, vpad int) tview.Primitive {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), vpad, 0, false).
		AddItem(tview.NewFlex().
			AddItem(tview.NewBox(), hpad, 0, false).
			AddItem(p, 0, 1, true).
			AddItem(tview.NewBox(), hpad, 0, false),
			0, 1, true).
		AddItem(tview.NewBox(), vpad, 0, false)
}

func moveDown(l *tview.List) {
	idx := l.GetCurrentItem()
	if idx < l.GetItemCount()-1 {
		l.SetCurrentItem(idx + 1)
	}
}

func moveUp(l *tview.List) {
	idx := l.GetCurrentItem()
	if idx > 0 {
		l.SetCurrentItem(idx - 1)
	}
}
