package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", configPathForDisplay())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	dbPath := flagDB
	source := "--db"
	switch {
	case dbPath != "":
	case os.Getenv("HABITS_DB") != "":
		dbPath, source = os.Getenv("HABITS_DB"), "$HABITS_DB"
	case cfg.General.DBPath != "":
		dbPath, source = cfg.General.DBPath, "config"
	default:
		dbPath, source = config.DBPath(cfg), "default"
	}

	fmt.Println("  [General]")
	fmt.Printf("    Habits:        %s\n", strings.Join(cfg.General.Habits, ", "))
	fmt.Printf("    Default days:  %d\n", cfg.General.DefaultDays)
	fmt.Printf("    Database:      %s (%s)\n", dbPath, source)
	fmt.Println()

	fmt.Println("  [Store]")
	fmt.Printf("    Prune retired: %v\n", cfg.Store.PruneRetired)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	if cfg.Log.File != "" {
		fmt.Printf("    File:  %s\n", cfg.Log.File)
	}
	fmt.Println()

	fmt.Println("  Run `habits setup` to reconfigure.")
	return nil
}

// configPathForDisplay shortens the config path with ~ when under $HOME.
func configPathForDisplay() string {
	p := config.Path()
	if home, err := os.UserHomeDir(); err == nil && home != "" && strings.HasPrefix(p, home+string(os.PathSeparator)) {
		return "~" + p[len(home):]
	}
	return p
}
