package cmd

import (
	"fmt"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/config"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive tracker and statistics dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	needSetup := !config.Exists()

	e, err := openEnv(envOptions{logToFile: true})
	if err != nil {
		return err
	}
	defer e.Close()

	theme.SetActive(e.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	days := e.cfg.General.DefaultDays
	if cmd.Flags().Changed("days") {
		days = flagDays
	}

	app := tui.NewApp(e.store, e.habits, days, needSetup, e.log.Named("tui"))
	p := tea.NewProgram(app, tea.WithAltScreen())

	e.log.Info("starting dashboard", zap.Int("habits", e.habits.Len()), zap.Int("days", days))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
