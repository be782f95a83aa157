package model

// DailyRecord is the entry for one calendar date. At most one exists per date.
type DailyRecord struct {
	Date   Date
	Habits map[string]bool // habit label -> done
	Notes  string
}

// NewDailyRecord returns an empty record for date with every habit of hs
// marked not done.
func NewDailyRecord(date Date, hs HabitSet) DailyRecord {
	habits := make(map[string]bool, hs.Len())
	for _, h := range hs.habits {
		habits[h.Label] = false
	}
	return DailyRecord{Date: date, Habits: habits}
}

// IsComplete reports whether every habit in hs is done.
// A habit missing from the record counts as not done.
func (r DailyRecord) IsComplete(hs HabitSet) bool {
	if hs.Len() == 0 {
		return false
	}
	for _, h := range hs.habits {
		if !r.Habits[h.Label] {
			return false
		}
	}
	return true
}

// Completed counts the habits of hs that are done in r.
func (r DailyRecord) Completed(hs HabitSet) int {
	n := 0
	for _, h := range hs.habits {
		if r.Habits[h.Label] {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of r.
func (r DailyRecord) Clone() DailyRecord {
	habits := make(map[string]bool, len(r.Habits))
	for k, v := range r.Habits {
		habits[k] = v
	}
	return DailyRecord{Date: r.Date, Habits: habits, Notes: r.Notes}
}
