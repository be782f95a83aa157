package tui

import (
	"errors"
	"strings"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/config"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the setup form.
type SetupValues struct {
	Theme  string
	Days   int
	Habits string // one label per line; only asked by `habits setup`
}

func defaultSetupValues(days int) SetupValues {
	cfg := config.DefaultConfig()
	if days <= 0 {
		days = cfg.General.DefaultDays
	}
	return SetupValues{
		Theme:  cfg.Appearance.Theme,
		Days:   days,
		Habits: strings.Join(cfg.General.Habits, "\n"),
	}
}

// SetupValuesFrom pre-fills the form from an existing config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:  cfg.Appearance.Theme,
		Days:   cfg.General.DefaultDays,
		Habits: strings.Join(cfg.General.Habits, "\n"),
	}
}

// ParseHabits splits the form's habit text into labels, dropping blank lines.
func ParseHabits(text string) []string {
	var labels []string
	for _, line := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			labels = append(labels, l)
		}
	}
	return labels
}

func validateHabits(text string) error {
	labels := ParseHabits(text)
	if len(labels) == 0 {
		return errors.New("enter at least one habit")
	}
	_, err := model.NewHabitSet(labels)
	return err
}

// Apply copies the answers into cfg. The habit list is only replaced when
// withHabits is set.
func (v SetupValues) Apply(cfg *config.Config, withHabits bool) {
	cfg.Appearance.Theme = v.Theme
	if v.Days > 0 {
		cfg.General.DefaultDays = v.Days
	}
	if withHabits {
		cfg.General.Habits = ParseHabits(v.Habits)
	}
}

// NewSetupForm builds the first-run form writing into vals. withHabits adds
// the habit list editor.
func NewSetupForm(vals *SetupValues, withHabits bool) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	fields := []huh.Field{
		huh.NewNote().
			Title("Welcome to habits").
			Description("Track which habits you complete each day.\nA few settings first."),
	}
	if withHabits {
		fields = append(fields, huh.NewText().
			Title("Habits").
			Description("One per line. Removing a habit keeps its history until `habits migrate --prune`.").
			Lines(10).
			Value(&vals.Habits).
			Validate(validateHabits))
	}
	fields = append(fields,
		huh.NewSelect[int]().
			Title("Default statistics window").
			Options(
				huh.NewOption("7 days", 7),
				huh.NewOption("30 days", 30),
				huh.NewOption("90 days", 90),
			).
			Value(&vals.Days),
		huh.NewSelect[string]().
			Title("Color theme").
			Options(themeOpts...).
			Value(&vals.Theme),
	)

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true)
}

// saveSetupConfig writes the dashboard's first-run answers to the config file.
func saveSetupConfig(vals SetupValues) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	vals.Apply(&cfg, false)
	return config.Save(cfg)
}
