package cmd

import (
	"fmt"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/cli"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/pipeline"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/store"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Table of recent entries, newest first",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(envOptions{})
	if err != nil {
		return err
	}
	defer e.Close()

	all, err := e.store.ListAll(store.Descending)
	if err != nil {
		return err
	}

	days := windowDays(cmd, e.cfg)
	since, until := window(days, model.Today())
	records := pipeline.FilterByRange(all, since, until)

	fmt.Println()
	fmt.Println(cli.RenderTitle("HISTORY  " + windowLabel(days)))
	fmt.Println()

	if len(records) == 0 {
		fmt.Println(cli.RenderMuted("  No entries recorded in this window."))
		fmt.Println()
		return nil
	}

	fmt.Print(cli.RenderTable(historyTable(records, e.habits)))
	fmt.Println()
	return nil
}

// historyTable lays out one row per record with a mark per habit.
func historyTable(records []model.DailyRecord, hs model.HabitSet) cli.Table {
	headers := []string{"Date"}
	for _, l := range hs.Labels() {
		headers = append(headers, cli.Abbrev(l, 5))
	}
	headers = append(headers, "Done", "Notes")

	left := make([]bool, len(headers))
	left[len(left)-1] = true

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{r.Date.String()}
		for _, l := range hs.Labels() {
			mark := cli.FormatMark(r.Habits[l])
			if r.Habits[l] {
				mark = cli.RenderDone(mark)
			}
			row = append(row, mark)
		}
		done := fmt.Sprintf("%d/%d", r.Completed(hs), hs.Len())
		row = append(row, done, cli.Abbrev(r.Notes, 30))
		rows = append(rows, row)
	}

	return cli.Table{Headers: headers, Rows: rows, Left: left}
}
