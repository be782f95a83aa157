package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var hs = model.MustHabitSet("Writing", "Reading")

func records(t *testing.T) []model.DailyRecord {
	t.Helper()
	d1, err := model.ParseDate("2024-01-01")
	require.NoError(t, err)
	return []model.DailyRecord{
		{Date: d1, Habits: map[string]bool{"Writing": true, "Reading": true}, Notes: "great day"},
		{Date: d1.Next(), Habits: map[string]bool{"Reading": true}},
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records(t), hs, FormatYAML))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []string{"Writing", "Reading"}, doc.Habits)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, Entry{Date: "2024-01-01", Done: []string{"Writing", "Reading"}, Complete: true, Notes: "great day"}, doc.Entries[0])
	assert.Equal(t, Entry{Date: "2024-01-02", Done: []string{"Reading"}}, doc.Entries[1])
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records(t), hs, FormatJSON))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Entries, 2)
	assert.True(t, doc.Entries[0].Complete)
	assert.False(t, doc.Entries[1].Complete)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestRead_RestoresRecords(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, records(t), hs, format))

			doc, err := Read(&buf, format)
			require.NoError(t, err)
			got, err := doc.Records(hs)
			require.NoError(t, err)

			want := records(t)
			// Absent habits come back explicitly false.
			want[1].Habits["Writing"] = false
			assert.Equal(t, want, got)
		})
	}
}

func TestRecords_MatchesColumnNamesAndRejectsUnknown(t *testing.T) {
	doc := Document{Entries: []Entry{{Date: "2024-01-01", Done: []string{"writing"}}}}
	got, err := doc.Records(hs)
	require.NoError(t, err)
	assert.True(t, got[0].Habits["Writing"])

	doc.Entries[0].Done = []string{"Running"}
	_, err = doc.Records(hs)
	assert.ErrorIs(t, err, ErrUnknownHabit)

	doc.Entries[0] = Entry{Date: "01/01/2024"}
	_, err = doc.Records(hs)
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("backup.JSON"))
	assert.Equal(t, FormatYAML, FormatForPath("backup.yml"))
	assert.Equal(t, FormatYAML, FormatForPath("backup"))
}
