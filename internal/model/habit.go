// Package model defines the core data types for habit tracking.
package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyHabitSet  = errors.New("habit set is empty")
	ErrEmptyLabel     = errors.New("habit label is empty")
	ErrDuplicateHabit = errors.New("duplicate habit")
	ErrReservedHabit  = errors.New("habit name collides with a reserved column")
)

// reservedColumns are the store columns a habit column may not shadow.
var reservedColumns = map[string]struct{}{
	"id":    {},
	"date":  {},
	"notes": {},
}

// Habit is a single trackable habit.
type Habit struct {
	Label  string // human-readable name, also the key in DailyRecord.Habits
	Column string // storage column name
}

// ColumnName normalizes a habit label into its storage column name:
// lowercase, with spaces replaced by underscores.
// e.g., "Healthy Eating" -> "healthy_eating"
func ColumnName(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}

// HabitSet is the fixed, ordered list of habits a store is built for.
// The zero value is an empty set; use NewHabitSet.
type HabitSet struct {
	habits  []Habit
	byLabel map[string]int
}

// NewHabitSet validates labels and builds a HabitSet preserving their order.
func NewHabitSet(labels []string) (HabitSet, error) {
	if len(labels) == 0 {
		return HabitSet{}, ErrEmptyHabitSet
	}

	hs := HabitSet{
		habits:  make([]Habit, 0, len(labels)),
		byLabel: make(map[string]int, len(labels)),
	}
	columns := make(map[string]string, len(labels))

	for _, raw := range labels {
		label := strings.TrimSpace(raw)
		if label == "" {
			return HabitSet{}, ErrEmptyLabel
		}
		col := ColumnName(label)
		if _, ok := reservedColumns[col]; ok {
			return HabitSet{}, fmt.Errorf("%w: %q", ErrReservedHabit, label)
		}
		if prev, ok := columns[col]; ok {
			return HabitSet{}, fmt.Errorf("%w: %q and %q both map to column %q", ErrDuplicateHabit, prev, label, col)
		}
		columns[col] = label
		hs.byLabel[label] = len(hs.habits)
		hs.habits = append(hs.habits, Habit{Label: label, Column: col})
	}

	return hs, nil
}

// MustHabitSet is like NewHabitSet but panics on invalid input.
// Intended for tests and compiled-in defaults.
func MustHabitSet(labels ...string) HabitSet {
	hs, err := NewHabitSet(labels)
	if err != nil {
		panic(err)
	}
	return hs
}

// Len returns the number of habits.
func (hs HabitSet) Len() int {
	return len(hs.habits)
}

// Habits returns a copy of the habits in configured order.
func (hs HabitSet) Habits() []Habit {
	out := make([]Habit, len(hs.habits))
	copy(out, hs.habits)
	return out
}

// Labels returns the habit labels in configured order.
func (hs HabitSet) Labels() []string {
	out := make([]string, len(hs.habits))
	for i, h := range hs.habits {
		out[i] = h.Label
	}
	return out
}

// Columns returns the storage column names in configured order.
func (hs HabitSet) Columns() []string {
	out := make([]string, len(hs.habits))
	for i, h := range hs.habits {
		out[i] = h.Column
	}
	return out
}

// Contains reports whether label is part of the set.
func (hs HabitSet) Contains(label string) bool {
	_, ok := hs.byLabel[label]
	return ok
}

// Lookup resolves a label case-insensitively, also accepting the column
// name ("healthy_eating" finds "Healthy Eating").
func (hs HabitSet) Lookup(name string) (Habit, bool) {
	if i, ok := hs.byLabel[name]; ok {
		return hs.habits[i], true
	}
	col := ColumnName(name)
	for _, h := range hs.habits {
		if h.Column == col || strings.EqualFold(h.Label, name) {
			return h, true
		}
	}
	return Habit{}, false
}
