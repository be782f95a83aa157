package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var threeHabits = model.MustHabitSet("Writing", "Reading", "Healthy Eating")

// openStore opens a store in a temp dir and closes it on cleanup.
func openStore(t *testing.T, path string, habits model.HabitSet, opts Options) *Store {
	t.Helper()
	s, err := Open(path, habits, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "data", "habits.db")
}

func day(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func record(t *testing.T, date string, notes string, done ...string) model.DailyRecord {
	t.Helper()
	rec := model.NewDailyRecord(day(t, date), threeHabits)
	for _, h := range done {
		rec.Habits[h] = true
	}
	rec.Notes = notes
	return rec
}

func TestUpsertGet_RoundTrip(t *testing.T) {
	s := openStore(t, tempDB(t), threeHabits, Options{})

	want := record(t, "2024-01-01", "felt good", "Writing", "Healthy Eating")
	require.NoError(t, s.Upsert(want))

	got, ok, err := s.Get(want.Date)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestGet_Absent(t *testing.T) {
	s := openStore(t, tempDB(t), threeHabits, Options{})

	_, ok, err := s.Get(day(t, "2024-01-01"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpsert_SameDateLastWriteWins(t *testing.T) {
	s := openStore(t, tempDB(t), threeHabits, Options{})

	require.NoError(t, s.Upsert(record(t, "2024-01-01", "first", "Writing")))
	second := record(t, "2024-01-01", "", "Reading", "Healthy Eating")
	require.NoError(t, s.Upsert(second))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, ok, err := s.Get(second.Date)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(second, got))
}

func TestUpsert_MissingHabitsStoredAsNotDone(t *testing.T) {
	s := openStore(t, tempDB(t), threeHabits, Options{})

	rec := model.DailyRecord{Date: day(t, "2024-03-01"), Habits: map[string]bool{"Reading": true}}
	require.NoError(t, s.Upsert(rec))

	got, _, err := s.Get(rec.Date)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"Writing": false, "Reading": true, "Healthy Eating": false}, got.Habits)
}

func TestUpsert_Rejects(t *testing.T) {
	s := openStore(t, tempDB(t), threeHabits, Options{})

	err := s.Upsert(model.DailyRecord{Habits: map[string]bool{"Writing": true}})
	assert.ErrorIs(t, err, ErrZeroDate)

	err = s.Upsert(model.DailyRecord{Date: day(t, "2024-01-01"), Habits: map[string]bool{"Running": true}})
	assert.ErrorIs(t, err, ErrUnknownHabit)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListAll_Order(t *testing.T) {
	s := openStore(t, tempDB(t), threeHabits, Options{})

	for _, d := range []string{"2024-01-03", "2023-12-31", "2024-01-01"} {
		require.NoError(t, s.Upsert(record(t, d, "")))
	}

	dates := func(recs []model.DailyRecord) []string {
		out := make([]string, len(recs))
		for i, r := range recs {
			out[i] = r.Date.String()
		}
		return out
	}

	asc, err := s.ListAll(Ascending)
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-12-31", "2024-01-01", "2024-01-03"}, dates(asc))

	desc, err := s.ListAll(Descending)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-03", "2024-01-01", "2023-12-31"}, dates(desc))
}

func TestOpen_AddedHabitKeepsHistory(t *testing.T) {
	path := tempDB(t)

	s, err := Open(path, threeHabits, Options{})
	require.NoError(t, err)
	require.NoError(t, s.Upsert(record(t, "2024-01-01", "kept", "Writing", "Reading", "Healthy Eating")))
	require.NoError(t, s.Close())

	grown := model.MustHabitSet("Writing", "Reading", "Healthy Eating", "Meditation")
	s2 := openStore(t, path, grown, Options{})

	got, ok, err := s2.Get(day(t, "2024-01-01"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "kept", got.Notes)
	assert.True(t, got.Habits["Writing"])
	assert.False(t, got.Habits["Meditation"])
	assert.False(t, got.IsComplete(grown))

	migs, err := s2.Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, "add column meditation", migs[len(migs)-1].Description)
}

func TestOpen_RemovedHabitIsRetiredNotDropped(t *testing.T) {
	path := tempDB(t)

	s, err := Open(path, threeHabits, Options{})
	require.NoError(t, err)
	require.NoError(t, s.Upsert(record(t, "2024-01-01", "", "Writing", "Reading")))
	require.NoError(t, s.Close())

	shrunk := model.MustHabitSet("Writing", "Healthy Eating")
	s2, err := Open(path, shrunk, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"reading"}, s2.RetiredColumns())

	got, _, err := s2.Get(day(t, "2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"Writing": true, "Healthy Eating": false}, got.Habits)

	// Writes under the smaller set must not touch the retired column.
	require.NoError(t, s2.Upsert(model.DailyRecord{Date: day(t, "2024-01-01"), Habits: map[string]bool{"Writing": true}}))
	require.NoError(t, s2.Close())

	// Re-adding the habit brings its history back.
	s3 := openStore(t, path, threeHabits, Options{})
	assert.Empty(t, s3.RetiredColumns())
	got, _, err = s3.Get(day(t, "2024-01-01"))
	require.NoError(t, err)
	assert.True(t, got.Habits["Reading"])
}

func TestOpen_PruneDropsRetiredColumns(t *testing.T) {
	path := tempDB(t)

	s, err := Open(path, threeHabits, Options{})
	require.NoError(t, err)
	require.NoError(t, s.Upsert(record(t, "2024-01-01", "", "Reading")))
	require.NoError(t, s.Close())

	shrunk := model.MustHabitSet("Writing")
	s2, err := Open(path, shrunk, Options{PruneRetired: true})
	require.NoError(t, err)
	assert.Empty(t, s2.RetiredColumns())
	require.NoError(t, s2.Close())

	s3 := openStore(t, path, threeHabits, Options{})
	got, ok, err := s3.Get(day(t, "2024-01-01"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, got.Habits["Reading"], "pruned history should not come back")
}

func TestOpen_LegacyTableDeduplicatesDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE habits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		[writing] INTEGER, [reading] INTEGER, [healthy_eating] INTEGER,
		notes TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO habits (date, writing, reading, healthy_eating, notes) VALUES
		('2024-01-01', 0, 0, 0, 'old'),
		('2024-01-01', 1, 1, 1, 'new'),
		('2024-01-02', 1, NULL, 1, NULL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s := openStore(t, path, threeHabits, Options{})

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, _, err := s.Get(day(t, "2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "new", got.Notes)
	assert.True(t, got.IsComplete(threeHabits))

	got, _, err = s.Get(day(t, "2024-01-02"))
	require.NoError(t, err)
	assert.False(t, got.Habits["Reading"], "NULL cell reads as not done")
	assert.Equal(t, "", got.Notes)

	// The unique index now holds: upsert updates in place.
	require.NoError(t, s.Upsert(record(t, "2024-01-02", "", "Reading")))
	n, err = s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestOpen_Idempotent(t *testing.T) {
	path := tempDB(t)
	for i := 0; i < 3; i++ {
		s, err := Open(path, threeHabits, Options{})
		require.NoError(t, err)
		require.NoError(t, s.Close())
	}

	s := openStore(t, path, threeHabits, Options{})
	migs, err := s.Migrations()
	require.NoError(t, err)
	assert.Len(t, migs, 2, "create table + date index, nothing re-applied")
}

func TestOpen_EmptyHabitSet(t *testing.T) {
	_, err := Open(tempDB(t), model.HabitSet{}, Options{})
	assert.ErrorIs(t, err, model.ErrEmptyHabitSet)
}
