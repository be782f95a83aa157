// Package pipeline derives totals, daily counts and streaks from daily records.
// Every function is pure: inputs are never modified.
package pipeline

import (
	"sort"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"
)

// sortedByDate returns a copy of records ordered by ascending date.
func sortedByDate(records []model.DailyRecord) []model.DailyRecord {
	out := make([]model.DailyRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// FilterByRange returns records dated within [since, until], inclusive.
// A zero since or until leaves that side open.
func FilterByRange(records []model.DailyRecord, since, until model.Date) []model.DailyRecord {
	var out []model.DailyRecord
	for _, r := range records {
		if !since.IsZero() && r.Date.Before(since) {
			continue
		}
		if !until.IsZero() && r.Date.After(until) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// TotalCompletionsPerHabit counts, per habit, the records where it was done.
// Every habit of hs has an entry.
func TotalCompletionsPerHabit(records []model.DailyRecord, hs model.HabitSet) map[string]int {
	totals := make(map[string]int, hs.Len())
	labels := hs.Labels()
	for _, l := range labels {
		totals[l] = 0
	}
	for _, r := range records {
		for _, l := range labels {
			if r.Habits[l] {
				totals[l]++
			}
		}
	}
	return totals
}

// CompletedCountPerDay returns the number of done habits for each record,
// ordered by ascending date.
func CompletedCountPerDay(records []model.DailyRecord, hs model.HabitSet) []model.DayCount {
	sorted := sortedByDate(records)
	counts := make([]model.DayCount, len(sorted))
	for i, r := range sorted {
		counts[i] = model.DayCount{Date: r.Date, Completed: r.Completed(hs)}
	}
	return counts
}

// FillDays expands counts to one entry per day in [since, until], using zero
// for days without a record, ordered by ascending date.
func FillDays(counts []model.DayCount, since, until model.Date) []model.DayCount {
	if until.Before(since) {
		return nil
	}
	byDate := make(map[model.Date]int, len(counts))
	for _, c := range counts {
		byDate[c.Date] = c.Completed
	}

	out := make([]model.DayCount, 0, since.DaysUntil(until)+1)
	for d := since; !d.After(until); d = d.Next() {
		out = append(out, model.DayCount{Date: d, Completed: byDate[d]})
	}
	return out
}

// Summarize computes the top-level aggregate of records as of today.
func Summarize(records []model.DailyRecord, hs model.HabitSet, today model.Date) model.Summary {
	var s model.Summary
	if len(records) == 0 {
		return s
	}

	sorted := sortedByDate(records)
	s.TrackedDays = len(sorted)
	s.FirstDate = sorted[0].Date
	s.LastDate = sorted[len(sorted)-1].Date

	for _, r := range sorted {
		s.TotalDone += r.Completed(hs)
		if r.IsComplete(hs) {
			s.CompleteDays++
		}
	}
	if possible := s.TrackedDays * hs.Len(); possible > 0 {
		s.CompletionRate = float64(s.TotalDone) / float64(possible)
	}

	s.BestStreak = LongestStreak(sorted, hs)
	s.CurrentStreak = CurrentStreak(sorted, hs, today)
	return s
}
