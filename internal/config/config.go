// Package config loads and saves the habits TOML configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/atomic"
)

const appName = "habits"

// DefaultHabits is the habit list used when the config does not set one.
var DefaultHabits = []string{
	"Writing",
	"Reading",
	"Walking",
	"Brainstorming",
	"Meditation",
	"Coding",
	"Posting",
	"Exercise",
	"Journaling",
	"Healthy Eating",
}

// Config holds all habits configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Store      StoreConfig      `toml:"store"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds the habit list and general preferences.
type GeneralConfig struct {
	Habits      []string `toml:"habits"`
	DefaultDays int      `toml:"default_days"`
	DBPath      string   `toml:"db_path,omitempty"`
}

// StoreConfig holds record store settings.
type StoreConfig struct {
	// PruneRetired drops columns of habits no longer configured.
	// This deletes their history.
	PruneRetired bool `toml:"prune_retired"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	habits := make([]string, len(DefaultHabits))
	copy(habits, DefaultHabits)
	return Config{
		General: GeneralConfig{
			Habits:      habits,
			DefaultDays: 30,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the database.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// DBPath returns the database path: HABITS_DB, then the config, then the
// default under DataDir.
func DBPath(cfg Config) string {
	if p := os.Getenv("HABITS_DB"); p != "" {
		return p
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return filepath.Join(DataDir(), "habits.db")
}

// HabitSet builds the configured habit set.
func HabitSet(cfg Config) (model.HabitSet, error) {
	labels := cfg.General.Habits
	if len(labels) == 0 {
		labels = DefaultHabits
	}
	hs, err := model.NewHabitSet(labels)
	if err != nil {
		return model.HabitSet{}, fmt.Errorf("invalid habit list in %s: %w", Path(), err)
	}
	return hs, nil
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	// A habits key in the file replaces the default list rather than
	// merging into it.
	cfg.General.Habits = nil
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.General.Habits) == 0 {
		cfg.General.Habits = append([]string(nil), DefaultHabits...)
	}
	if cfg.General.DefaultDays <= 0 {
		cfg.General.DefaultDays = 30
	}

	return cfg, nil
}

// Save writes the config to disk atomically.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := atomic.WriteFile(Path(), &buf); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
