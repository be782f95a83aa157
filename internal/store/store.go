// Package store provides the SQLite-backed record store for daily habit entries.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // register sqlite driver
)

var (
	ErrUnknownHabit = errors.New("habit not in configured set")
	ErrZeroDate     = errors.New("record has no date")
)

// Order selects the date ordering of ListAll.
type Order int

const (
	Ascending Order = iota
	Descending
)

// Options tune how Open reconciles the schema.
type Options struct {
	// PruneRetired drops columns of habits that are no longer configured.
	PruneRetired bool
	Logger       *zap.Logger
}

// Store persists one DailyRecord per calendar date.
type Store struct {
	db      *sql.DB
	habits  model.HabitSet
	retired []string
	log     *zap.Logger

	selectCols string // "date, <habit cols>, notes"
	upsertSQL  string
}

// Open opens or creates the database at dbPath and reconciles its schema
// with habits.
func Open(dbPath string, habits model.HabitSet, opts Options) (*Store, error) {
	if habits.Len() == 0 {
		return nil, model.ErrEmptyHabitSet
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	// One writer; avoids SQLITE_BUSY between pooled connections.
	db.SetMaxOpenConns(1)

	retired, err := ensureSchema(db, habits, opts.PruneRetired, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	s := &Store{
		db:      db,
		habits:  habits,
		retired: retired,
		log:     log,
	}
	s.prepareSQL()

	log.Debug("store ready", zap.String("path", dbPath), zap.Int("habits", habits.Len()))
	return s, nil
}

func (s *Store) prepareSQL() {
	cols := s.habits.Columns()
	quoted := make([]string, len(cols))
	updates := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quoteIdent(c)
		updates[i] = fmt.Sprintf("%s = excluded.%s", quoted[i], quoted[i])
	}

	s.selectCols = "date, " + strings.Join(quoted, ", ") + ", notes"
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)+2), ", ")
	s.upsertSQL = fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)
		ON CONFLICT(date) DO UPDATE SET %s, notes = excluded.notes`,
		tableName, s.selectCols, placeholders, strings.Join(updates, ", "))
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Habits returns the habit set the store was opened with.
func (s *Store) Habits() model.HabitSet {
	return s.habits
}

// RetiredColumns returns columns of habits that are no longer configured
// but whose data is still on disk.
func (s *Store) RetiredColumns() []string {
	out := make([]string, len(s.retired))
	copy(out, s.retired)
	return out
}

// Get returns the record for date. The bool is false if none exists.
func (s *Store) Get(date model.Date) (model.DailyRecord, bool, error) {
	row := s.db.QueryRow("SELECT "+s.selectCols+" FROM "+tableName+" WHERE date = ?", date.String())
	rec, err := s.scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DailyRecord{}, false, nil
	}
	if err != nil {
		return model.DailyRecord{}, false, fmt.Errorf("reading %s: %w", date, err)
	}
	return rec, true, nil
}

// ListAll returns every record ordered by date.
func (s *Store) ListAll(order Order) ([]model.DailyRecord, error) {
	dir := "ASC"
	if order == Descending {
		dir = "DESC"
	}
	rows, err := s.db.Query("SELECT " + s.selectCols + " FROM " + tableName + " ORDER BY date " + dir)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.DailyRecord
	for rows.Next() {
		rec, err := s.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("listing records: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Upsert inserts rec, or overwrites the habits and notes of the existing
// record for rec.Date. Habits of the set absent from rec are stored as not done.
func (s *Store) Upsert(rec model.DailyRecord) error {
	if rec.Date.IsZero() {
		return ErrZeroDate
	}
	for label := range rec.Habits {
		if !s.habits.Contains(label) {
			return fmt.Errorf("%w: %q", ErrUnknownHabit, label)
		}
	}

	args := make([]any, 0, s.habits.Len()+2)
	args = append(args, rec.Date.String())
	for _, label := range s.habits.Labels() {
		done := 0
		if rec.Habits[label] {
			done = 1
		}
		args = append(args, done)
	}
	var notes sql.NullString
	if rec.Notes != "" {
		notes = sql.NullString{String: rec.Notes, Valid: true}
	}
	args = append(args, notes)

	if _, err := s.db.Exec(s.upsertSQL, args...); err != nil {
		return fmt.Errorf("saving %s: %w", rec.Date, err)
	}
	s.log.Debug("saved record", zap.String("date", rec.Date.String()),
		zap.Int("completed", rec.Completed(s.habits)))
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM " + tableName).Scan(&count)
	return count, err
}

// Migrations returns the applied schema changes, oldest first.
func (s *Store) Migrations() ([]Migration, error) {
	rows, err := s.db.Query("SELECT version, description, applied_at FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Migration
	for rows.Next() {
		var m Migration
		var applied string
		if err := rows.Scan(&m.Version, &m.Description, &applied); err != nil {
			return nil, err
		}
		m.AppliedAt, _ = time.Parse(time.RFC3339, applied)
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanRecord(row rowScanner) (model.DailyRecord, error) {
	labels := s.habits.Labels()

	var dateStr string
	var notes sql.NullString
	// Cells written by older versions may be NULL.
	cells := make([]sql.NullInt64, len(labels))

	dest := make([]any, 0, len(labels)+2)
	dest = append(dest, &dateStr)
	for i := range cells {
		dest = append(dest, &cells[i])
	}
	dest = append(dest, &notes)

	if err := row.Scan(dest...); err != nil {
		return model.DailyRecord{}, err
	}

	date, err := model.ParseDate(dateStr)
	if err != nil {
		return model.DailyRecord{}, err
	}

	rec := model.DailyRecord{
		Date:   date,
		Habits: make(map[string]bool, len(labels)),
		Notes:  notes.String,
	}
	for i, label := range labels {
		rec.Habits[label] = cells[i].Valid && cells[i].Int64 != 0
	}
	return rec, nil
}
