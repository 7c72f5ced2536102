package store

import (
	"github.com/rdo34/weekplan/internal/model"
)

// ViewRecord is the persisted working state: the week currently on screen.
type ViewRecord struct {
	Tasks                []model.Task        `json:"tasks"`
	Goals                []model.Goal        `json:"goals"`
	DailyThoughts        model.DailyThoughts `json:"dailyThoughts"`
	CurrentWeekStartDate string              `json:"currentWeekStartDate"` // "YYYY-MM-DD"
	WeekLabel            string              `json:"weekLabel"`
}

// Store defines persistence for the current view and the week archive.
type Store interface {
	LoadView() (ViewRecord, bool, error)
	SaveView(v ViewRecord) error
	LoadArchives() ([]model.WeeklyArchive, error)
	SaveArchives(archives []model.WeeklyArchive) error
}
