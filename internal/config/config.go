package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config tunes the planner grid and history range. Everything has a default
// so a bare environment works out of the box.
type Config struct {
	DataDir       string `env:"WEEKPLAN_DATA_DIR" env-default:""`
	GridStartHour int    `env:"WEEKPLAN_GRID_START_HOUR" env-default:"7"`
	GridEndHour   int    `env:"WEEKPLAN_GRID_END_HOUR" env-default:"22"`
	SlotMinutes   int    `env:"WEEKPLAN_SLOT_MINUTES" env-default:"30"`
	YearsBack     int    `env:"WEEKPLAN_YEARS_BACK" env-default:"0"`
	YearsAhead    int    `env:"WEEKPLAN_YEARS_AHEAD" env-default:"0"`
}

// MustLoad reads configuration from the environment.
func MustLoad() Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read env: %s", err)
	}
	return cfg.normalized()
}

func (c Config) normalized() Config {
	if c.GridStartHour < 0 || c.GridStartHour > 23 {
		c.GridStartHour = 7
	}
	if c.GridEndHour <= c.GridStartHour || c.GridEndHour > 24 {
		c.GridEndHour = 22
	}
	if c.SlotMinutes != 15 && c.SlotMinutes != 30 && c.SlotMinutes != 60 {
		c.SlotMinutes = 30
	}
	if c.YearsBack < 0 {
		c.YearsBack = 0
	}
	if c.YearsAhead < 0 {
		c.YearsAhead = 0
	}
	return c
}

// PlanningYears expands the configured range around the given year.
func (c Config) PlanningYears(current int) []int {
	var years []int
	for y := current - c.YearsBack; y <= current+c.YearsAhead; y++ {
		years = append(years, y)
	}
	return years
}
