package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Preferences persist UI choices across sessions, separate from week data.
type Preferences struct {
	LastWeekStart string `json:"last_week_start"` // YYYY-MM-DD
	SidebarWidth  int    `json:"sidebar_width,omitempty"`
	Notifications bool   `json:"notifications"`
}

func prefsPath() (string, error) {
	dir, err := ResolveDataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs.json"), nil
}

func LoadPreferences() (Preferences, error) {
	var p Preferences
	path, err := prefsPath()
	if err != nil {
		return p, err
	}
	f, err := os.Open(path)
	if err != nil {
		return p, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	err = dec.Decode(&p)
	return p, err
}

func SavePreferences(p Preferences) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "prefs-*.tmp")
	if err != nil {
		return err
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&p); err != nil {
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
