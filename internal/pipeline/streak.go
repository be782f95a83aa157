package pipeline

import "github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"

// BestStreak returns the length of the longest run of consecutive calendar
// days on which every habit was done.
func BestStreak(records []model.DailyRecord, hs model.HabitSet) int {
	return LongestStreak(records, hs).Length
}

// LongestStreak returns the longest run of consecutive complete days. Ties
// go to the earliest run. A missing date or an incomplete day ends a run.
func LongestStreak(records []model.DailyRecord, hs model.HabitSet) model.Streak {
	var best, cur model.Streak
	var lastDate model.Date

	for _, r := range sortedByDate(records) {
		if r.IsComplete(hs) {
			if cur.Length > 0 && !lastDate.IsZero() && lastDate.Next() == r.Date {
				cur.Length++
				cur.End = r.Date
			} else {
				cur = model.Streak{Length: 1, Start: r.Date, End: r.Date}
			}
			if cur.Length > best.Length {
				best = cur
			}
		} else {
			cur = model.Streak{}
		}
		lastDate = r.Date
	}

	return best
}

// CurrentStreak returns the length of the run of complete days ending today,
// or ending yesterday when today is not complete yet.
func CurrentStreak(records []model.DailyRecord, hs model.HabitSet, today model.Date) int {
	complete := make(map[model.Date]bool, len(records))
	for _, r := range records {
		complete[r.Date] = r.IsComplete(hs)
	}

	d := today
	if !complete[d] {
		d = d.Prev()
	}
	n := 0
	for complete[d] {
		n++
		d = d.Prev()
	}
	return n
}
