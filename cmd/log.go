package cmd

import (
	"fmt"
	"strings"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/cli"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagLogDone   []string
	flagLogUndone []string
	flagLogAll    bool
	flagLogNone   bool
	flagLogNotes  string
)

var logCmd = &cobra.Command{
	Use:   "log [DATE]",
	Short: "Mark habits done for a day (default today)",
	Long: `Update the entry for DATE (YYYY-MM-DD, "today" or "yesterday").
Starts from the saved entry for that day, applies --all/--none, then --done, then --undone.`,
	Example: `  habits log --done writing,reading
  habits log 2024-01-05 --all --notes "great day"
  habits log yesterday --undone "healthy eating"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringSliceVarP(&flagLogDone, "done", "d", nil, "Habits to mark done (label or column name)")
	logCmd.Flags().StringSliceVarP(&flagLogUndone, "undone", "u", nil, "Habits to mark not done")
	logCmd.Flags().BoolVar(&flagLogAll, "all", false, "Mark every habit done")
	logCmd.Flags().BoolVar(&flagLogNone, "none", false, "Mark every habit not done")
	logCmd.Flags().StringVar(&flagLogNotes, "notes", "", "Replace the day's notes")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	date, err := parseDateArg(args, model.Today())
	if err != nil {
		return err
	}
	if flagLogAll && flagLogNone {
		return fmt.Errorf("--all and --none are mutually exclusive")
	}

	e, err := openEnv(envOptions{})
	if err != nil {
		return err
	}
	defer e.Close()

	rec, found, err := e.store.Get(date)
	if err != nil {
		return err
	}
	if !found {
		rec = model.NewDailyRecord(date, e.habits)
	}

	edit := habitEdit{
		done:   flagLogDone,
		undone: flagLogUndone,
		all:    flagLogAll,
		none:   flagLogNone,
	}
	if cmd.Flags().Changed("notes") {
		edit.notes = &flagLogNotes
	}
	rec, err = edit.apply(rec, e.habits)
	if err != nil {
		return err
	}

	if err := e.store.Upsert(rec); err != nil {
		return err
	}

	if !flagQuiet {
		verb := "Saved"
		if found {
			verb = "Updated"
		}
		fmt.Printf("  %s %s  %s\n", verb, date, cli.RenderProgressBar(rec.Completed(e.habits), e.habits.Len(), 20))
	}
	return nil
}

// habitEdit is a set of changes to apply to a day's record.
type habitEdit struct {
	done, undone []string
	all, none    bool
	notes        *string
}

func (h habitEdit) apply(rec model.DailyRecord, hs model.HabitSet) (model.DailyRecord, error) {
	out := model.NewDailyRecord(rec.Date, hs)
	for _, l := range hs.Labels() {
		out.Habits[l] = rec.Habits[l]
	}
	out.Notes = rec.Notes

	for _, l := range hs.Labels() {
		switch {
		case h.all:
			out.Habits[l] = true
		case h.none:
			out.Habits[l] = false
		}
	}

	set := func(names []string, v bool) error {
		for _, name := range names {
			habit, ok := hs.Lookup(strings.TrimSpace(name))
			if !ok {
				return fmt.Errorf("unknown habit %q (configured: %s)", name, strings.Join(hs.Labels(), ", "))
			}
			out.Habits[habit.Label] = v
		}
		return nil
	}
	if err := set(h.done, true); err != nil {
		return rec, err
	}
	if err := set(h.undone, false); err != nil {
		return rec, err
	}

	if h.notes != nil {
		out.Notes = *h.notes
	}
	return out, nil
}
