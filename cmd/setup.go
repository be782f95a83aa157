package cmd

import (
	"fmt"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/config"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup: habit list, default window and theme",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		// The form's answers replace an unreadable file.
		fmt.Printf("  Ignoring unreadable config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	vals := tui.SetupValuesFrom(cfg)
	if err := tui.NewSetupForm(&vals, true).Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	before := cfg.General.Habits
	vals.Apply(&cfg, true)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", configPathForDisplay())
	if removed := removedHabits(before, cfg.General.Habits); len(removed) > 0 {
		fmt.Printf("  History for %d removed habit(s) is kept; `habits migrate --prune` deletes it.\n", len(removed))
	}
	fmt.Println("  Run `habits setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

// removedHabits returns the labels of before whose column is gone from after.
func removedHabits(before, after []string) []string {
	kept := make(map[string]bool, len(after))
	for _, l := range after {
		kept[model.ColumnName(l)] = true
	}
	var removed []string
	for _, l := range before {
		if !kept[model.ColumnName(l)] {
			removed = append(removed, l)
		}
	}
	return removed
}
