package state

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Preferences holds the small amount of state remembered between runs.
type Preferences struct {
	DarkMode   bool `yaml:"dark_mode"`
	VisitCount int  `yaml:"visit_count"`
}

// LoadPreferences reads the preferences file.
// A missing file yields zero preferences; an unreadable one is logged and treated as missing.
func LoadPreferences(ctx context.Context) (*Preferences, error) {
	path, err := GetPrefsPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get prefs path: %w", err)
	}
	return loadPreferences(path)
}

// SetDarkMode persists the dark mode flag.
func SetDarkMode(ctx context.Context, enabled bool) error {
	return updatePreferences(func(p *Preferences) {
		p.DarkMode = enabled
	})
}

// RecordVisit increments the persisted visit counter and returns the new count.
func RecordVisit(ctx context.Context) (int, error) {
	var count int
	err := updatePreferences(func(p *Preferences) {
		if p.VisitCount < 0 {
			p.VisitCount = 0
		}
		p.VisitCount++
		count = p.VisitCount
	})
	return count, err
}

// updatePreferences performs a locked read-modify-write of the preferences file.
func updatePreferences(mutate func(*Preferences)) error {
	path, err := GetPrefsPath()
	if err != nil {
		return fmt.Errorf("failed to get prefs path: %w", err)
	}

	return withLock(path, func() error {
		prefs, err := loadPreferences(path)
		if err != nil {
			return err
		}

		mutate(prefs)

		data, err := yaml.Marshal(prefs)
		if err != nil {
			return fmt.Errorf("failed to marshal preferences: %w", err)
		}

		if err := AtomicWrite(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write preferences: %w", err)
		}
		return nil
	})
}

func loadPreferences(path string) (*Preferences, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Preferences{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var prefs Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		slog.Warn("preferences file corrupted, starting fresh", "path", path, "error", err)
		return &Preferences{}, nil
	}

	return &prefs, nil
}
