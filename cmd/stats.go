package cmd

import (
	"fmt"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/cli"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/pipeline"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/store"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Completion totals, daily trend and streaks",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(envOptions{})
	if err != nil {
		return err
	}
	defer e.Close()

	all, err := e.store.ListAll(store.Ascending)
	if err != nil {
		return err
	}

	days := windowDays(cmd, e.cfg)
	today := model.Today()
	since, until := window(days, today)
	records := pipeline.FilterByRange(all, since, until)

	if len(records) == 0 {
		fmt.Println()
		fmt.Println(cli.RenderMuted("  No entries recorded in this window."))
		fmt.Println("  Run `habits log --done <habit>` to record today.")
		fmt.Println()
		return nil
	}

	summary := pipeline.Summarize(records, e.habits, today)
	// Streaks look at full history so a short window does not cut them.
	best := pipeline.LongestStreak(all, e.habits)
	current := pipeline.CurrentStreak(all, e.habits, today)

	fmt.Println()
	fmt.Println(cli.RenderTitle("HABIT STATISTICS  " + windowLabel(days)))
	fmt.Println()

	fmt.Println(cli.RenderTable(cli.Table{
		Title: "Summary",
		Rows: [][]string{
			{"Days tracked", cli.FormatNumber(int64(summary.TrackedDays))},
			{"Complete days", cli.FormatNumber(int64(summary.CompleteDays))},
			{"Habits done", cli.FormatNumber(int64(summary.TotalDone))},
			{"Completion rate", cli.FormatPercent(summary.CompletionRate)},
			{"Current streak", cli.FormatDays(current)},
			{"Best streak", bestStreakText(best)},
		},
	}))

	printHabitBars(records, e.habits)
	printDailyTrend(records, e.habits, summary, since, until)
	return nil
}

func bestStreakText(s model.Streak) string {
	if s.Length == 0 {
		return cli.FormatDays(0)
	}
	return fmt.Sprintf("%s (%s to %s)", cli.FormatDays(s.Length), s.Start, s.End)
}

func printHabitBars(records []model.DailyRecord, hs model.HabitSet) {
	totals := pipeline.TotalCompletionsPerHabit(records, hs)

	labelWidth := 0
	for _, l := range hs.Labels() {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	fmt.Println(cli.RenderMuted("  Completions per habit"))
	for _, l := range hs.Labels() {
		fmt.Println(cli.RenderHorizontalBar(l, float64(totals[l]), float64(len(records)), labelWidth, 30))
	}
	fmt.Println()
}

func printDailyTrend(records []model.DailyRecord, hs model.HabitSet, s model.Summary, since, until model.Date) {
	if since.IsZero() {
		since = s.FirstDate
	}
	if until.IsZero() {
		until = s.LastDate
	}
	filled := pipeline.FillDays(pipeline.CompletedCountPerDay(records, hs), since, until)

	values := make([]float64, len(filled))
	peak := 0
	for i, d := range filled {
		values[i] = float64(d.Completed)
		if d.Completed > peak {
			peak = d.Completed
		}
	}
	// Scaled to the habit count so a flat run of 3/10 doesn't look full.
	line := cli.RenderSparklineScaled(values, float64(hs.Len()))

	fmt.Println(cli.RenderMuted(fmt.Sprintf("  Habits done per day  %s to %s (peak %d/%d)", since, until, peak, hs.Len())))
	fmt.Printf("  %s\n\n", line)
}
