package pipeline

import (
	"math"
	"testing"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"
)

func TestTotalCompletionsPerHabit(t *testing.T) {
	records := []model.DailyRecord{
		partial(t, "2024-01-03", "Writing"),
		complete(t, "2024-01-01"),
		partial(t, "2024-01-02", "Writing", "Walking"),
	}

	want := map[string]int{"Writing": 3, "Reading": 1, "Walking": 2}
	check := func(got map[string]int) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("%s = %d, want %d", k, got[k], v)
			}
		}
	}

	check(TotalCompletionsPerHabit(records, habits))

	// Order-insensitive.
	reversed := []model.DailyRecord{records[2], records[1], records[0]}
	check(TotalCompletionsPerHabit(reversed, habits))
}

func TestTotalCompletionsPerHabit_EmptyHasEveryHabit(t *testing.T) {
	got := TotalCompletionsPerHabit(nil, habits)
	for _, l := range habits.Labels() {
		if v, ok := got[l]; !ok || v != 0 {
			t.Errorf("%s = %d (present=%v), want 0", l, v, ok)
		}
	}
}

func TestCompletedCountPerDay(t *testing.T) {
	records := []model.DailyRecord{
		partial(t, "2024-01-02", "Reading"),
		complete(t, "2024-01-01"),
		partial(t, "2024-01-05"),
	}
	got := CompletedCountPerDay(records, habits)
	want := []struct {
		date string
		n    int
	}{{"2024-01-01", 3}, {"2024-01-02", 1}, {"2024-01-05", 0}}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Date.String() != w.date || got[i].Completed != w.n {
			t.Errorf("[%d] = %s/%d, want %s/%d", i, got[i].Date, got[i].Completed, w.date, w.n)
		}
	}
}

func TestFillDays(t *testing.T) {
	counts := []model.DayCount{
		{Date: mustDate(t, "2024-01-02"), Completed: 2},
		{Date: mustDate(t, "2024-01-04"), Completed: 3},
	}
	got := FillDays(counts, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-04"))
	wantN := []int{0, 2, 0, 3}
	if len(got) != len(wantN) {
		t.Fatalf("len = %d, want %d", len(got), len(wantN))
	}
	for i, n := range wantN {
		if got[i].Completed != n {
			t.Errorf("day %d (%s) = %d, want %d", i, got[i].Date, got[i].Completed, n)
		}
	}

	if out := FillDays(counts, mustDate(t, "2024-01-05"), mustDate(t, "2024-01-01")); out != nil {
		t.Errorf("inverted range = %v, want nil", out)
	}
}

func TestFilterByRange(t *testing.T) {
	records := []model.DailyRecord{
		complete(t, "2024-01-01"), complete(t, "2024-01-05"), complete(t, "2024-01-10"),
	}
	got := FilterByRange(records, mustDate(t, "2024-01-05"), mustDate(t, "2024-01-10"))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if open := FilterByRange(records, model.Date{}, model.Date{}); len(open) != 3 {
		t.Errorf("open range len = %d, want 3", len(open))
	}
}

func TestSummarize(t *testing.T) {
	records := []model.DailyRecord{
		complete(t, "2024-01-01"),
		complete(t, "2024-01-02"),
		partial(t, "2024-01-03", "Writing"),
		complete(t, "2024-01-04"),
	}
	s := Summarize(records, habits, mustDate(t, "2024-01-04"))

	if s.TrackedDays != 4 {
		t.Errorf("TrackedDays = %d, want 4", s.TrackedDays)
	}
	if s.CompleteDays != 3 {
		t.Errorf("CompleteDays = %d, want 3", s.CompleteDays)
	}
	if s.TotalDone != 10 {
		t.Errorf("TotalDone = %d, want 10", s.TotalDone)
	}
	if s.BestStreak.Length != 2 {
		t.Errorf("BestStreak = %d, want 2", s.BestStreak.Length)
	}
	if s.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", s.CurrentStreak)
	}
	if math.Abs(s.CompletionRate-10.0/12.0) > 1e-9 {
		t.Errorf("CompletionRate = %.4f, want %.4f", s.CompletionRate, 10.0/12.0)
	}
	if s.FirstDate.String() != "2024-01-01" || s.LastDate.String() != "2024-01-04" {
		t.Errorf("range = %s..%s", s.FirstDate, s.LastDate)
	}

	if empty := Summarize(nil, habits, mustDate(t, "2024-01-04")); empty.TrackedDays != 0 || empty.BestStreak.Length != 0 {
		t.Errorf("empty summary = %+v", empty)
	}
}
