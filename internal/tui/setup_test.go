package tui

import (
	"testing"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/config"
)

func TestParseHabits(t *testing.T) {
	got := ParseHabits("Writing\n\n  Reading \nHealthy Eating\n")
	want := []string{"Writing", "Reading", "Healthy Eating"}
	if len(got) != len(want) {
		t.Fatalf("ParseHabits = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ParseHabits = %q, want %q", got, want)
		}
	}
}

func TestValidateHabits(t *testing.T) {
	if err := validateHabits("  \n"); err == nil {
		t.Error("blank habit list should be rejected")
	}
	if err := validateHabits("Reading\nreading"); err == nil {
		t.Error("duplicate column names should be rejected")
	}
	if err := validateHabits("Reading\nWriting"); err != nil {
		t.Errorf("valid list rejected: %v", err)
	}
}

func TestSetupValues_Apply(t *testing.T) {
	cfg := config.DefaultConfig()
	v := SetupValues{Theme: "tokyo-night", Days: 7, Habits: "Running\nReading"}

	v.Apply(&cfg, false)
	if cfg.Appearance.Theme != "tokyo-night" || cfg.General.DefaultDays != 7 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.General.Habits) != len(config.DefaultHabits) {
		t.Fatal("habits changed without withHabits")
	}

	v.Apply(&cfg, true)
	if len(cfg.General.Habits) != 2 || cfg.General.Habits[0] != "Running" {
		t.Fatalf("habits = %q", cfg.General.Habits)
	}
}
