package tui

import (
	"fmt"
	"strings"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/cli"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui/components"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// trackerState holds the Tracker tab's edit buffer for one day.
type trackerState struct {
	draft  model.DailyRecord // what the checkboxes show
	stored model.DailyRecord // last saved version of draft.Date
	exists bool              // stored came from the database

	cursor       int
	editingNotes bool
	notesIn      textinput.Model
	saving       bool
}

func newTrackerState() trackerState {
	ti := textinput.New()
	ti.Placeholder = "How did the day go?"
	ti.CharLimit = 500
	ti.Prompt = "› "
	return trackerState{notesIn: ti}
}

func (ts *trackerState) moveCursor(delta, n int) {
	ts.cursor += delta
	if ts.cursor >= n {
		ts.cursor = n - 1
	}
	if ts.cursor < 0 {
		ts.cursor = 0
	}
}

// dirty reports whether the draft differs from what is saved.
func (ts trackerState) dirty() bool {
	if ts.draft.Notes != ts.stored.Notes {
		return true
	}
	for label, done := range ts.draft.Habits {
		if ts.stored.Habits[label] != done {
			return true
		}
	}
	return false
}

// openDay loads date into the tracker, starting from the saved record when
// one exists.
func (a *App) openDay(date model.Date) {
	stored, ok := a.recordFor(date)
	if !ok {
		stored = model.NewDailyRecord(date, a.habits)
	}
	// Records read under a larger habit set may lack keys.
	draft := model.NewDailyRecord(date, a.habits)
	for _, l := range a.habits.Labels() {
		draft.Habits[l] = stored.Habits[l]
	}
	draft.Notes = stored.Notes

	a.tracker.draft = draft
	a.tracker.stored = draft.Clone()
	a.tracker.exists = ok
	a.tracker.editingNotes = false
	a.tracker.notesIn.Blur()
}

// updateTracker handles Tracker tab keys. handled is false for keys the
// tab does not use so global bindings still apply.
func (a App) updateTracker(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	ts := &a.tracker
	labels := a.habits.Labels()

	switch msg.String() {
	case "j", "down":
		ts.moveCursor(1, len(labels))
	case "k", "up":
		ts.moveCursor(-1, len(labels))
	case "g":
		ts.cursor = 0
	case "G":
		ts.cursor = len(labels) - 1
	case " ", "x":
		if ts.cursor < len(labels) {
			l := labels[ts.cursor]
			ts.draft.Habits[l] = !ts.draft.Habits[l]
		}
	case "a":
		all := !ts.draft.IsComplete(a.habits)
		for _, l := range labels {
			ts.draft.Habits[l] = all
		}
	case "h", "left":
		a.openDay(ts.draft.Date.Prev())
	case "l", "right":
		if next := ts.draft.Date.Next(); !next.After(a.today()) {
			a.openDay(next)
		}
	case "T":
		a.openDay(a.today())
	case "n":
		ts.editingNotes = true
		ts.notesIn.SetValue(ts.draft.Notes)
		ts.notesIn.CursorEnd()
		return a, ts.notesIn.Focus(), true
	case "esc":
		ts.draft = ts.stored.Clone()
	case "enter", "ctrl+s":
		return a, a.save(), true
	default:
		return a, nil, false
	}
	return a, nil, true
}

// save writes the draft through the store.
func (a *App) save() tea.Cmd {
	if a.tracker.saving {
		return nil
	}
	a.tracker.saving = true
	return saveCmd(a.store, a.tracker.draft.Clone())
}

// updateNotesInput handles keys while the notes field is focused. Enter
// applies the text to the draft and saves; esc drops the edit.
func (a App) updateNotesInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ts := &a.tracker

	switch msg.String() {
	case "enter", "ctrl+s":
		ts.draft.Notes = strings.TrimSpace(ts.notesIn.Value())
		ts.editingNotes = false
		ts.notesIn.Blur()
		return a, a.save()
	case "esc":
		ts.editingNotes = false
		ts.notesIn.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	ts.notesIn, cmd = ts.notesIn.Update(msg)
	return a, cmd
}

func (a App) renderTrackerTab(cw, h int) string {
	today := a.renderTodayCard(cw)
	if a.isCompactLayout() {
		remaining := h - lipgloss.Height(today)
		return lipgloss.JoinVertical(lipgloss.Left, today, a.renderHistoryCard(cw, remaining))
	}

	widths := components.LayoutRow(cw, 2)
	left := a.renderTodayCard(widths[0])
	right := a.renderHistoryCard(widths[1], h)
	return components.CardRow([]string{left, right})
}

func (a App) renderTodayCard(w int) string {
	t := theme.Active
	ts := a.tracker

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, l := range a.habits.Labels() {
		done := ts.draft.Habits[l]
		line := fmt.Sprintf("%s %s", cli.FormatCheck(done), l)

		switch {
		case i == ts.cursor && !ts.editingNotes:
			b.WriteString(cursorStyle.Render("› " + line))
		case done:
			b.WriteString(spaceStyle.Render("  ") + doneStyle.Render(line))
		default:
			b.WriteString(spaceStyle.Render("  ") + rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	barW := components.CardInnerWidth(w) - 6
	if barW > 40 {
		barW = 40
	}
	pct := float64(ts.draft.Completed(a.habits)) / float64(a.habits.Len())
	b.WriteString(components.ProgressBar(pct, barW))
	b.WriteString("\n\n")

	b.WriteString(mutedStyle.Render("Notes"))
	b.WriteString("\n")
	switch {
	case ts.editingNotes:
		ts.notesIn.Width = components.CardInnerWidth(w) - 4
		b.WriteString(ts.notesIn.View())
	case ts.draft.Notes != "":
		b.WriteString(rowStyle.Render(cli.Abbrev(ts.draft.Notes, components.CardInnerWidth(w))))
	default:
		b.WriteString(dimStyle.Render("press n to add notes"))
	}

	status := "new entry"
	if ts.exists {
		status = "saved entry"
	}
	if ts.dirty() {
		status = "unsaved"
	}
	title := fmt.Sprintf("%s %s  ·  %s", cli.FormatDayOfWeek(int(ts.draft.Date.Weekday())), ts.draft.Date, status)
	if ts.draft.Date == a.today() {
		title = "Today  " + title
	}

	return components.ContentCard(title, b.String(), w)
}

// renderHistoryCard lists saved entries, most recent first, as many as fit.
func (a App) renderHistoryCard(w, h int) string {
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceHover)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	if len(a.records) == 0 {
		return components.ContentCard("History", dimStyle.Render("No entries yet. Toggle habits and press enter."), w)
	}

	inner := components.CardInnerWidth(w)
	marksW := a.habits.Len() * 2
	notesW := inner - 10 - 2 - marksW - 6 - 2
	if notesW < 0 {
		notesW = 0
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("%-10s  %-*s  %5s", "Date", marksW, "Habits", "Done")))
	if notesW > 0 {
		b.WriteString(headStyle.Render("  Notes"))
	}
	b.WriteString("\n")

	rows := h - 4 // border, title and header
	if rows < 1 {
		rows = 1
	}
	for i := len(a.records) - 1; i >= 0 && rows > 0; i-- {
		r := a.records[i]
		style := rowStyle
		if r.Date == a.tracker.draft.Date {
			style = selStyle
		}

		b.WriteString(style.Render(r.Date.String()))
		b.WriteString(spaceStyle.Render("  "))
		for _, l := range a.habits.Labels() {
			if r.Habits[l] {
				b.WriteString(doneStyle.Render(cli.FormatMark(true) + " "))
			} else {
				b.WriteString(dimStyle.Render(cli.FormatMark(false) + " "))
			}
		}
		b.WriteString(style.Render(fmt.Sprintf("  %5s", fmt.Sprintf("%d/%d", r.Completed(a.habits), a.habits.Len()))))
		if notesW > 0 && r.Notes != "" {
			b.WriteString(dimStyle.Render("  " + cli.Abbrev(r.Notes, notesW)))
		}
		b.WriteString("\n")
		rows--
	}

	return components.ContentCard("History", strings.TrimRight(b.String(), "\n"), w)
}
