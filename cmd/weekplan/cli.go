package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rdo34/weekplan/internal/app"
	"github.com/rdo34/weekplan/internal/calendar"
	"github.com/rdo34/weekplan/internal/config"
	"github.com/rdo34/weekplan/internal/model"
	"github.com/rdo34/weekplan/internal/store"
)

// runCLI parses CLI subcommands. Returns (handled, exitCode).
func runCLI(cfg config.Config, args []string) (bool, int) {
	if len(args) == 0 {
		return false, 0
	}
	switch args[0] {
	case "help", "-h", "--help":
		printHelp()
		return true, 0
	case "tasks":
		return true, cliTasks(cfg, args[1:])
	case "add-task":
		return true, cliAddTask(cfg, args[1:])
	case "goals":
		return true, cliGoals(cfg, args[1:])
	case "add-goal":
		return true, cliAddGoal(cfg, args[1:])
	case "note":
		return true, cliNote(cfg, args[1:])
	case "weeks":
		return true, cliWeeks(cfg, args[1:])
	case "archives":
		return true, cliArchives(cfg, args[1:])
	case "select-week":
		return true, cliSelectWeek(cfg, args[1:])
	default:
		// Not a CLI subcommand; fall back to TUI
		return false, 0
	}
}

func newApp(cfg config.Config, dataDir string) (*app.App, error) {
	var st *store.FSStore
	var err error
	if dataDir != "" {
		st, err = store.NewFSStore(dataDir)
	} else if cfg.DataDir != "" {
		st, err = store.NewFSStore(cfg.DataDir)
	} else {
		st, err = store.NewDefaultFSStore()
	}
	if err != nil {
		return nil, err
	}
	return app.New(cfg, st)
}

// parseDay accepts a day name ("Mon".."Sun") or an index 0-6; -1 means none.
func parseDay(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1
	}
	for i, n := range model.DayNames {
		if strings.EqualFold(n, s) {
			return i
		}
	}
	var i int
	if _, err := fmt.Sscanf(s, "%d", &i); err == nil && i >= 0 && i <= 6 {
		return i
	}
	return -1
}

func cliTasks(cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "output JSON")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	a, err := newApp(cfg, *dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(a.Tasks)
		return 0
	}
	fmt.Printf("%s  (%s)\n", a.WeekLabel, a.WeekStart.Format(calendar.DateKey))
	for i, t := range a.Tasks {
		fmt.Printf("%d. %s\n", i, formatTask(t))
	}
	return 0
}

func cliAddTask(cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("add-task", flag.ContinueOnError)
	title := fs.String("title", "", "task title")
	day := fs.String("day", "", "Mon..Sun or 0-6 (omit for unscheduled)")
	at := fs.String("time", "", "HH:MM start time")
	duration := fs.Int("duration", 0, "minutes (default 30, min 15, step 15)")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if strings.TrimSpace(*title) == "" {
		fmt.Fprintln(os.Stderr, "missing --title")
		return 2
	}
	a, err := newApp(cfg, *dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	var dayIdx *int
	if d := parseDay(*day); d >= 0 {
		dayIdx = &d
	}
	if _, err := a.AddTask(*title, "", dayIdx, *at, *duration); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func cliGoals(cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("goals", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "output JSON")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	a, err := newApp(cfg, *dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(a.Goals)
		return 0
	}
	for i, g := range a.Goals {
		mark := "○"
		if g.Completed {
			mark = "✓"
		}
		fmt.Printf("%d. %s %s\n", i, mark, g.Text)
	}
	return 0
}

func cliAddGoal(cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("add-goal", flag.ContinueOnError)
	text := fs.String("text", "", "goal text")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if strings.TrimSpace(*text) == "" {
		fmt.Fprintln(os.Stderr, "missing --text")
		return 2
	}
	a, err := newApp(cfg, *dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if _, err := a.AddGoal(*text); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func cliNote(cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("note", flag.ContinueOnError)
	day := fs.String("day", "", "Mon..Sun (required)")
	set := fs.String("set", "", "note text; empty prints the current note")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	d := parseDay(*day)
	if d < 0 {
		fmt.Fprintln(os.Stderr, "--day is required (Mon..Sun)")
		return 2
	}
	a, err := newApp(cfg, *dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	name := model.DayNames[d]
	if *set == "" {
		fmt.Println(a.Thoughts[name])
		return 0
	}
	if err := a.SetThought(name, *set); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func cliWeeks(cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("weeks", flag.ContinueOnError)
	year := fs.Int("year", 0, "year to print (defaults to current)")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	a, err := newApp(cfg, *dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	y := *year
	if y == 0 {
		y = time.Now().Year()
	}
	grid := calendar.BuildGrid(time.Now(), a.Archives, []int{y})
	buckets := grid.Data[y]
	if buckets == nil {
		return 0
	}
	for mi := 0; mi < 12; mi++ {
		if len(buckets[mi]) == 0 {
			continue
		}
		fmt.Printf("%s %d\n", time.Month(mi+1), y)
		for _, w := range buckets[mi] {
			mark := " "
			if w.Archive != nil {
				mark = "◆"
			}
			fmt.Printf("  %s %s  %s\n", w.Monday.Format(calendar.DateKey), mark, calendar.WeekLabel(w.Monday))
		}
	}
	return 0
}

func cliArchives(cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("archives", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "output JSON")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	a, err := newApp(cfg, *dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	archives := a.ArchivesNewestFirst()
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(archives)
		return 0
	}
	for _, arc := range archives {
		fmt.Printf("%s  %s\n", arc.WeekStartDate, arc.WeekLabel)
	}
	return 0
}

func cliSelectWeek(cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("select-week", flag.ContinueOnError)
	dateStr := fs.String("date", "", "YYYY-MM-DD (required; snapped to its Monday)")
	dataDir := fs.String("data-dir", "", "override data directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	d, err := time.ParseInLocation(calendar.DateKey, *dateStr, time.Local)
	if err != nil {
		fmt.Fprintln(os.Stderr, "--date is required (YYYY-MM-DD)")
		return 2
	}
	a, err := newApp(cfg, *dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := a.SelectWeek(calendar.MondayOf(d)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("%s  (%s)\n", a.WeekLabel, a.WeekStart.Format(calendar.DateKey))
	return 0
}

func formatTask(t model.Task) string {
	mark := "•"
	if t.Completed {
		mark = "✓"
	}
	place := "unscheduled"
	if t.DayIndex != nil && t.StartTime != "" {
		place = fmt.Sprintf("%s %s", model.DayNames[*t.DayIndex], t.StartTime)
	}
	return fmt.Sprintf("%s %s  (%s, %dm)", mark, t.Title, place, t.Duration)
}

func printHelp() {
	fmt.Println("weekplan CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  weekplan tasks [--json] [--data-dir PATH]")
	fmt.Println("  weekplan add-task --title \"...\" [--day Mon|0-6] [--time HH:MM] [--duration N]")
	fmt.Println("  weekplan goals [--json]")
	fmt.Println("  weekplan add-goal --text \"...\"")
	fmt.Println("  weekplan note --day Mon [--set \"text\"]")
	fmt.Println("  weekplan weeks [--year YYYY]")
	fmt.Println("  weekplan archives [--json]")
	fmt.Println("  weekplan select-week --date YYYY-MM-DD")
	fmt.Println("\nWithout a subcommand the TUI starts.")
	fmt.Println("Environment: WEEKPLAN_DATA_DIR, WEEKPLAN_GRID_START_HOUR, WEEKPLAN_GRID_END_HOUR,")
	fmt.Println("             WEEKPLAN_SLOT_MINUTES, WEEKPLAN_YEARS_BACK, WEEKPLAN_YEARS_AHEAD")
}
