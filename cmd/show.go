package cmd

import (
	"fmt"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/cli"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [DATE]",
	Short: "Show the habits recorded for a day (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	date, err := parseDateArg(args, model.Today())
	if err != nil {
		return err
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

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HABITS  %s %s", cli.FormatDayOfWeek(int(date.Weekday())), date)))
	fmt.Println()

	if !found {
		fmt.Println(cli.RenderMuted("  Nothing recorded for this day yet."))
		fmt.Printf("  Run `habits log %s --done <habit>` to start.\n\n", date)
		rec = model.NewDailyRecord(date, e.habits)
	}

	for _, h := range e.habits.Habits() {
		line := fmt.Sprintf("  %s %s", cli.FormatCheck(rec.Habits[h.Label]), h.Label)
		if rec.Habits[h.Label] {
			line = cli.RenderDone(line)
		}
		fmt.Println(line)
	}
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderProgressBar(rec.Completed(e.habits), e.habits.Len(), 30))

	if rec.Notes != "" {
		fmt.Println()
		fmt.Println(cli.RenderMuted("  Notes"))
		fmt.Printf("  %s\n", rec.Notes)
	}
	fmt.Println()
	return nil
}
