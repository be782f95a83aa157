package cmd

import (
	"strings"
	"testing"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"
)

var testHabits = model.MustHabitSet("Writing", "Reading", "Healthy Eating")

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestParseDateArg(t *testing.T) {
	today := mustDate(t, "2024-03-01")

	tests := []struct {
		args []string
		want string
	}{
		{nil, "2024-03-01"},
		{[]string{"today"}, "2024-03-01"},
		{[]string{"Yesterday"}, "2024-02-29"},
		{[]string{"2023-12-31"}, "2023-12-31"},
	}
	for _, tt := range tests {
		got, err := parseDateArg(tt.args, today)
		if err != nil {
			t.Fatalf("parseDateArg(%v): %v", tt.args, err)
		}
		if got.String() != tt.want {
			t.Errorf("parseDateArg(%v) = %s, want %s", tt.args, got, tt.want)
		}
	}

	if _, err := parseDateArg([]string{"03/01/2024"}, today); err == nil {
		t.Error("non-ISO date should be rejected")
	}
}

func TestWindow(t *testing.T) {
	today := mustDate(t, "2024-01-10")

	since, until := window(7, today)
	if since.String() != "2024-01-04" || until != today {
		t.Fatalf("window(7) = %s..%s, want 2024-01-04..2024-01-10", since, until)
	}

	since, until = window(0, today)
	if !since.IsZero() || !until.IsZero() {
		t.Fatalf("window(0) = %s..%s, want open range", since, until)
	}

	if got := windowLabel(0); got != "All time" {
		t.Errorf("windowLabel(0) = %q", got)
	}
	if got := windowLabel(30); got != "Last 30d" {
		t.Errorf("windowLabel(30) = %q", got)
	}
}

func TestHabitEdit_Apply(t *testing.T) {
	base := model.NewDailyRecord(mustDate(t, "2024-01-01"), testHabits)
	base.Habits["Reading"] = true
	base.Notes = "kept"

	got, err := habitEdit{done: []string{"writing", "healthy_eating"}}.apply(base, testHabits)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsComplete(testHabits) {
		t.Fatalf("habits = %v, want all done", got.Habits)
	}
	if got.Notes != "kept" {
		t.Fatalf("notes = %q, want kept", got.Notes)
	}
	if base.Habits["Writing"] {
		t.Fatal("apply modified its input")
	}

	notes := ""
	got, err = habitEdit{all: true, undone: []string{"Reading"}, notes: &notes}.apply(base, testHabits)
	if err != nil {
		t.Fatal(err)
	}
	if got.Habits["Reading"] || !got.Habits["Writing"] || !got.Habits["Healthy Eating"] {
		t.Fatalf("habits = %v", got.Habits)
	}
	if got.Notes != "" {
		t.Fatalf("notes = %q, want cleared", got.Notes)
	}

	got, err = habitEdit{none: true}.apply(base, testHabits)
	if err != nil {
		t.Fatal(err)
	}
	if got.Completed(testHabits) != 0 {
		t.Fatalf("habits = %v, want none done", got.Habits)
	}
}

func TestHabitEdit_UnknownHabit(t *testing.T) {
	base := model.NewDailyRecord(mustDate(t, "2024-01-01"), testHabits)
	_, err := habitEdit{done: []string{"Running"}}.apply(base, testHabits)
	if err == nil || !strings.Contains(err.Error(), "Running") {
		t.Fatalf("err = %v, want unknown habit error", err)
	}
}

func TestRemovedHabits(t *testing.T) {
	got := removedHabits([]string{"Writing", "Healthy Eating", "Reading"}, []string{"healthy eating", "Reading"})
	if len(got) != 1 || got[0] != "Writing" {
		t.Fatalf("removedHabits = %q, want [Writing]", got)
	}
}

func TestHistoryTable(t *testing.T) {
	rec := model.NewDailyRecord(mustDate(t, "2024-01-02"), testHabits)
	rec.Habits["Reading"] = true
	rec.Notes = "short"

	tbl := historyTable([]model.DailyRecord{rec}, testHabits)
	if len(tbl.Headers) != testHabits.Len()+3 {
		t.Fatalf("headers = %q", tbl.Headers)
	}
	row := tbl.Rows[0]
	if row[0] != "2024-01-02" || row[len(row)-2] != "1/3" || row[len(row)-1] != "short" {
		t.Fatalf("row = %q", row)
	}
	if !tbl.Left[len(tbl.Left)-1] {
		t.Fatal("notes column should be left-aligned")
	}
}

func TestBestStreakText(t *testing.T) {
	if got := bestStreakText(model.Streak{}); got != "0 days" {
		t.Errorf("empty streak = %q", got)
	}
	s := model.Streak{Length: 3, Start: mustDate(t, "2024-01-01"), End: mustDate(t, "2024-01-03")}
	if got := bestStreakText(s); got != "3 days (2024-01-01 to 2024-01-03)" {
		t.Errorf("streak = %q", got)
	}
}

func TestExecute_UnknownCommandErrors(t *testing.T) {
	rootCmd.SetArgs([]string{"no-such-command"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("unknown command should fail")
	}
}
