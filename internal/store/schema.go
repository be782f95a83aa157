package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"

	"go.uber.org/zap"
)

const (
	tableName     = "habits"
	dateIndexName = "idx_habits_date"
)

const metaSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version              INTEGER PRIMARY KEY,
    description          TEXT NOT NULL,
    applied_at           TEXT NOT NULL
);
`

// Migration is one applied schema change.
type Migration struct {
	Version     int
	Description string
	AppliedAt   time.Time
}

// quoteIdent quotes a column name for use in SQL.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func createTableSQL(habits model.HabitSet) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE " + tableName + " (\n")
	b.WriteString("    id                   INTEGER PRIMARY KEY AUTOINCREMENT,\n")
	b.WriteString("    date                 TEXT NOT NULL,\n")
	for _, col := range habits.Columns() {
		fmt.Fprintf(&b, "    %-20s INTEGER NOT NULL DEFAULT 0,\n", quoteIdent(col))
	}
	b.WriteString("    notes                TEXT\n")
	b.WriteString(")")
	return b.String()
}

// ensureSchema brings the database in line with habits. Added habits get a
// new column; removed habits keep theirs (retired) unless prune is set.
// Returns the retired columns still on disk.
func ensureSchema(db *sql.DB, habits model.HabitSet, prune bool, log *zap.Logger) ([]string, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(metaSQL); err != nil {
		return nil, fmt.Errorf("creating migrations table: %w", err)
	}

	existing, err := tableColumns(tx, tableName)
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	var retired []string
	if len(existing) == 0 {
		if _, err := tx.Exec(createTableSQL(habits)); err != nil {
			return nil, fmt.Errorf("creating habits table: %w", err)
		}
		if err := recordMigration(tx, fmt.Sprintf("create habits table with %d habits", habits.Len())); err != nil {
			return nil, err
		}
		log.Info("created habits table", zap.Strings("habits", habits.Labels()))
	} else {
		retired, err = reconcileColumns(tx, existing, habits, prune, log)
		if err != nil {
			return nil, err
		}
	}

	if err := ensureDateIndex(tx, log); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return retired, nil
}

// reconcileColumns adds missing habit columns and retires or drops extra ones.
func reconcileColumns(tx *sql.Tx, existing []string, habits model.HabitSet, prune bool, log *zap.Logger) ([]string, error) {
	have := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		have[c] = struct{}{}
	}
	want := make(map[string]struct{}, habits.Len())
	for _, c := range habits.Columns() {
		want[c] = struct{}{}
	}

	for _, col := range []string{"date", "notes"} {
		if _, ok := have[col]; !ok {
			return nil, fmt.Errorf("existing %s table has no %q column", tableName, col)
		}
	}

	for _, col := range habits.Columns() {
		if _, ok := have[col]; ok {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s INTEGER NOT NULL DEFAULT 0", tableName, quoteIdent(col))
		if _, err := tx.Exec(stmt); err != nil {
			return nil, fmt.Errorf("adding column %s: %w", col, err)
		}
		if err := recordMigration(tx, "add column "+col); err != nil {
			return nil, err
		}
		log.Info("added habit column", zap.String("column", col))
	}

	var retired []string
	for _, col := range existing {
		if col == "id" || col == "date" || col == "notes" {
			continue
		}
		if _, ok := want[col]; ok {
			continue
		}
		if !prune {
			retired = append(retired, col)
			log.Warn("habit column no longer configured; keeping its history",
				zap.String("column", col))
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", tableName, quoteIdent(col))
		if _, err := tx.Exec(stmt); err != nil {
			return nil, fmt.Errorf("dropping column %s: %w", col, err)
		}
		if err := recordMigration(tx, "drop column "+col); err != nil {
			return nil, err
		}
		log.Warn("dropped retired habit column", zap.String("column", col))
	}

	return retired, nil
}

// ensureDateIndex makes date unique. Tables written by older versions may
// hold several rows per date; the newest row (highest id) wins.
func ensureDateIndex(tx *sql.Tx, log *zap.Logger) error {
	var n int
	err := tx.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = ?", dateIndexName).Scan(&n)
	if err != nil {
		return fmt.Errorf("checking date index: %w", err)
	}
	if n > 0 {
		return nil
	}

	res, err := tx.Exec(`DELETE FROM ` + tableName + ` WHERE id NOT IN
		(SELECT MAX(id) FROM ` + tableName + ` GROUP BY date)`)
	if err != nil {
		return fmt.Errorf("removing duplicate dates: %w", err)
	}
	if dropped, _ := res.RowsAffected(); dropped > 0 {
		log.Warn("removed duplicate rows for the same date, kept the newest",
			zap.Int64("rows", dropped))
	}

	if _, err := tx.Exec("CREATE UNIQUE INDEX " + dateIndexName + " ON " + tableName + "(date)"); err != nil {
		return fmt.Errorf("creating date index: %w", err)
	}
	return recordMigration(tx, "unique index on date")
}

// tableColumns returns the column names of table in declaration order, or
// nil if the table does not exist.
func tableColumns(tx *sql.Tx, table string) ([]string, error) {
	rows, err := tx.Query(fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(table)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cols []string
	for rows.Next() {
		var cid, notnull, pk int
		var name, ctype string
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols = append(cols, strings.ToLower(name))
	}
	return cols, rows.Err()
}

func recordMigration(tx *sql.Tx, description string) error {
	_, err := tx.Exec(`INSERT INTO schema_migrations (version, description, applied_at)
		VALUES ((SELECT COALESCE(MAX(version), 0) + 1 FROM schema_migrations), ?, ?)`,
		description, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording migration %q: %w", description, err)
	}
	return nil
}
