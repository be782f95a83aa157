package model

// DayCount holds the number of completed habits for one calendar day.
type DayCount struct {
	Date      Date
	Completed int
}

// Streak is a run of consecutive complete days.
// Start and End are zero when Length is 0.
type Streak struct {
	Length int
	Start  Date
	End    Date
}

// Summary holds the top-level aggregate across all records.
type Summary struct {
	TrackedDays    int // days with a record
	CompleteDays   int // days where every habit was done
	TotalDone      int // habit completions across all days
	BestStreak     Streak
	CurrentStreak  int
	CompletionRate float64 // TotalDone / (TrackedDays * habits), 0-1
	FirstDate      Date
	LastDate       Date
}
