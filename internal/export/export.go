// Package export writes the record set as YAML or JSON for backup and reads
// such files back.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"

	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want yaml or json)", s)
	}
}

// ErrUnknownHabit is returned by Records for an entry naming a habit that is
// not configured.
var ErrUnknownHabit = errors.New("habit not configured")

// FormatForPath guesses the format from a file extension, defaulting to YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Document is the exported shape.
type Document struct {
	Habits  []string `yaml:"habits" json:"habits"`
	Entries []Entry  `yaml:"entries" json:"entries"`
}

// Entry is one exported day. Done lists the completed habits in configured order.
type Entry struct {
	Date     string   `yaml:"date" json:"date"`
	Done     []string `yaml:"done" json:"done"`
	Complete bool     `yaml:"complete" json:"complete"`
	Notes    string   `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Build converts records into an export document, preserving record order.
func Build(records []model.DailyRecord, hs model.HabitSet) Document {
	doc := Document{
		Habits:  hs.Labels(),
		Entries: make([]Entry, 0, len(records)),
	}
	for _, r := range records {
		done := make([]string, 0, hs.Len())
		for _, l := range hs.Labels() {
			if r.Habits[l] {
				done = append(done, l)
			}
		}
		doc.Entries = append(doc.Entries, Entry{
			Date:     r.Date.String(),
			Done:     done,
			Complete: r.IsComplete(hs),
			Notes:    r.Notes,
		})
	}
	return doc
}

// Write encodes records to w in the given format.
func Write(w io.Writer, records []model.DailyRecord, hs model.HabitSet, format Format) error {
	doc := Build(records, hs)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// Read decodes a document written by Write.
func Read(r io.Reader, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return doc, fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return doc, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return doc, fmt.Errorf("unknown export format %q", format)
	}
	return doc, nil
}

// Records converts the document's entries into records for hs. Habits are
// matched by label or column name. The Complete field is ignored; it is
// derived from Done.
func (d Document) Records(hs model.HabitSet) ([]model.DailyRecord, error) {
	out := make([]model.DailyRecord, 0, len(d.Entries))
	for i, e := range d.Entries {
		date, err := model.ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		rec := model.NewDailyRecord(date, hs)
		for _, name := range e.Done {
			h, ok := hs.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("entry %s: %w: %q", e.Date, ErrUnknownHabit, name)
			}
			rec.Habits[h.Label] = true
		}
		rec.Notes = e.Notes
		out = append(out, rec)
	}
	return out, nil
}
