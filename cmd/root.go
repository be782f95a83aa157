// Package cmd implements the habits CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/config"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/logging"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagDB      string
	flagDays    int
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "habits",
	Short:        "Daily habit tracker",
	Long:         "Record which habits you completed each day and see totals, trends and streaks.",
	RunE:         runStats,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (default from config or $HABITS_DB)")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Time window in days, 0 for all time (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// env bundles what every data command needs.
type env struct {
	cfg    config.Config
	habits model.HabitSet
	store  *store.Store
	log    *zap.Logger
}

type envOptions struct {
	logToFile bool // keep stderr clean for the TUI
	prune     bool
}

// openEnv loads config, builds the logger and opens the record store.
func openEnv(opts envOptions) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	habits, err := config.HabitSet(cfg)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if flagVerbose {
		level = "debug"
	}
	logFile := cfg.Log.File
	if opts.logToFile && logFile == "" {
		logFile = filepath.Join(config.DataDir(), "habits.log")
	}
	log, err := logging.New(level, logFile)
	if err != nil {
		return nil, err
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}

	st, err := store.Open(dbPath, habits, store.Options{
		PruneRetired: opts.prune || cfg.Store.PruneRetired,
		Logger:       log,
	})
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	if retired := st.RetiredColumns(); len(retired) > 0 && !flagQuiet && !opts.logToFile {
		fmt.Fprintf(os.Stderr, "  Note: history kept for habits no longer configured: %s\n", strings.Join(retired, ", "))
		fmt.Fprintf(os.Stderr, "  Run `habits migrate --prune` to delete it.\n")
	}

	return &env{cfg: cfg, habits: habits, store: st, log: log}, nil
}

// Close releases the store and flushes the logger.
func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("closing store", zap.Error(err))
	}
	_ = e.log.Sync()
}

// windowDays returns the effective --days value, falling back to config.
func windowDays(cmd *cobra.Command, cfg config.Config) int {
	if cmd.Flags().Changed("days") {
		return flagDays
	}
	return cfg.General.DefaultDays
}

// window converts a day count into an inclusive date range ending today.
// Zero days means all time (both bounds zero).
func window(days int, today model.Date) (model.Date, model.Date) {
	if days <= 0 {
		return model.Date{}, model.Date{}
	}
	return today.AddDays(-(days - 1)), today
}

// parseDateArg resolves an optional positional date argument.
func parseDateArg(args []string, today model.Date) (model.Date, error) {
	if len(args) == 0 {
		return today, nil
	}
	switch strings.ToLower(args[0]) {
	case "today":
		return today, nil
	case "yesterday":
		return today.Prev(), nil
	}
	return model.ParseDate(args[0])
}

func windowLabel(days int) string {
	if days <= 0 {
		return "All time"
	}
	return fmt.Sprintf("Last %dd", days)
}
