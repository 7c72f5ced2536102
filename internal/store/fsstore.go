package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rdo34/weekplan/internal/model"
)

const (
	viewFile    = "view.json"
	archiveFile = "archives.json"
)

// FSStore persists the view record and archive collection as two JSON
// documents under a data root. Writes are atomic (temp file + rename).
type FSStore struct {
	root string
	now  func() time.Time
}

// NewFSStore creates a store rooted at dir, creating it if needed.
func NewFSStore(dir string) (*FSStore, error) {
	if dir == "" {
		return nil, errors.New("empty dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{root: dir, now: time.Now}, nil
}

// NewDefaultFSStore resolves the default data dir and returns a store.
func NewDefaultFSStore() (*FSStore, error) {
	dir, err := ResolveDataDir()
	if err != nil {
		return nil, err
	}
	return NewFSStore(dir)
}

// Wire shapes keep dailyThoughts raw so the loader can sniff the legacy
// single-string form without the decision leaking into core types.
type viewWire struct {
	Tasks                []model.Task    `json:"tasks"`
	Goals                []model.Goal    `json:"goals"`
	DailyThoughts        json.RawMessage `json:"dailyThoughts"`
	CurrentWeekStartDate string          `json:"currentWeekStartDate"`
	WeekLabel            string          `json:"weekLabel"`
}

type archiveWire struct {
	ID            string          `json:"id"`
	WeekStartDate string          `json:"weekStartDate"`
	WeekLabel     string          `json:"weekLabel"`
	Tasks         []model.Task    `json:"tasks"`
	Goals         []model.Goal    `json:"goals"`
	DailyThoughts json.RawMessage `json:"dailyThoughts"`
}

// decodeThoughts accepts either the current map shape or the legacy bare
// string, which becomes a single entry keyed by fallbackDay.
func decodeThoughts(raw json.RawMessage, fallbackDay string) model.DailyThoughts {
	if len(raw) == 0 {
		return model.DailyThoughts{}
	}
	var m model.DailyThoughts
	if err := json.Unmarshal(raw, &m); err == nil {
		if m == nil {
			m = model.DailyThoughts{}
		}
		return m
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		out := model.DailyThoughts{}
		if strings.TrimSpace(s) != "" {
			out[fallbackDay] = s
		}
		return out
	}
	log.Printf("[WARN] unrecognized dailyThoughts shape, dropping: %s", truncate(raw, 80))
	return model.DailyThoughts{}
}

// LoadView reads the current-view record. A missing or unparsable file
// yields (zero, false, nil): startup never fails on bad persisted data.
func (s *FSStore) LoadView() (ViewRecord, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.root, viewFile))
	if err != nil {
		if os.IsNotExist(err) {
			return ViewRecord{}, false, nil
		}
		return ViewRecord{}, false, err
	}
	var w viewWire
	if err := json.Unmarshal(data, &w); err != nil {
		log.Printf("[WARN] ignoring unparsable %s: %v", viewFile, err)
		return ViewRecord{}, false, nil
	}
	today := model.DayNames[model.DayIndexOf(s.now())]
	return ViewRecord{
		Tasks:                emptyIfNilTasks(w.Tasks),
		Goals:                emptyIfNilGoals(w.Goals),
		DailyThoughts:        decodeThoughts(w.DailyThoughts, today),
		CurrentWeekStartDate: w.CurrentWeekStartDate,
		WeekLabel:            w.WeekLabel,
	}, true, nil
}

// SaveView atomically writes the current-view record.
func (s *FSStore) SaveView(v ViewRecord) error {
	if v.Tasks == nil {
		v.Tasks = []model.Task{}
	}
	if v.Goals == nil {
		v.Goals = []model.Goal{}
	}
	if v.DailyThoughts == nil {
		v.DailyThoughts = model.DailyThoughts{}
	}
	return s.writeJSON(viewFile, &v)
}

// LoadArchives reads the archive collection. Legacy string notes key "Mon".
func (s *FSStore) LoadArchives() ([]model.WeeklyArchive, error) {
	data, err := os.ReadFile(filepath.Join(s.root, archiveFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []model.WeeklyArchive{}, nil
		}
		return nil, err
	}
	var wire []archiveWire
	if err := json.Unmarshal(data, &wire); err != nil {
		log.Printf("[WARN] ignoring unparsable %s: %v", archiveFile, err)
		return []model.WeeklyArchive{}, nil
	}
	out := make([]model.WeeklyArchive, 0, len(wire))
	for _, w := range wire {
		out = append(out, model.WeeklyArchive{
			ID:            w.ID,
			WeekStartDate: w.WeekStartDate,
			WeekLabel:     w.WeekLabel,
			Tasks:         emptyIfNilTasks(w.Tasks),
			Goals:         emptyIfNilGoals(w.Goals),
			DailyThoughts: decodeThoughts(w.DailyThoughts, model.DayNames[0]),
		})
	}
	return out, nil
}

// SaveArchives atomically writes the whole archive collection.
func (s *FSStore) SaveArchives(archives []model.WeeklyArchive) error {
	if archives == nil {
		archives = []model.WeeklyArchive{}
	}
	return s.writeJSON(archiveFile, archives)
}

func (s *FSStore) writeJSON(name string, v any) error {
	path := filepath.Join(s.root, name)
	tmp, err := os.CreateTemp(s.root, name+"-*.tmp")
	if err != nil {
		return err
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func emptyIfNilTasks(t []model.Task) []model.Task {
	if t == nil {
		return []model.Task{}
	}
	return t
}

func emptyIfNilGoals(g []model.Goal) []model.Goal {
	if g == nil {
		return []model.Goal{}
	}
	return g
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

var _ Store = (*FSStore)(nil)
