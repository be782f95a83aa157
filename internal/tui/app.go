// Package tui provides the interactive Bubble Tea dashboard for habits.
package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/pipeline"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/store"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui/components"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// RecordStore is the part of the record store the dashboard needs.
type RecordStore interface {
	ListAll(order store.Order) ([]model.DailyRecord, error)
	Upsert(rec model.DailyRecord) error
}

// RecordsLoadedMsg is sent when the initial record load finishes.
type RecordsLoadedMsg struct {
	Records  []model.DailyRecord
	LoadTime time.Duration
	Err      error
}

// SavedMsg is sent when an Upsert from the tracker completes.
type SavedMsg struct {
	Record model.DailyRecord
	Err    error
}

type clearFlashMsg struct{ seq int }

// windowOptions are the Statistics tab windows cycled with "w". 0 is all time.
var windowOptions = []int{7, 30, 90, 0}

const (
	tabTracker = iota
	tabStats
)

// App is the root Bubble Tea model.
type App struct {
	store  RecordStore
	habits model.HabitSet
	log    *zap.Logger
	today  func() model.Date

	// Data, ascending by date
	records  []model.DailyRecord
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Statistics for the current window
	days       int
	windowRecs []model.DailyRecord
	summary    model.Summary
	best       model.Streak
	current    int
	totals     map[string]int
	daily      []model.DayCount

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	tracker trackerState

	// Status bar message; seq invalidates stale clear timers
	flash    string
	flashErr bool
	flashSeq int

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 60
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5

	flashDuration = 2 * time.Second
)

// NewApp creates the dashboard over st for the given habits. days is the
// initial Statistics window (0 for all time). needSetup shows the first-run
// form once records are loaded.
func NewApp(st RecordStore, habits model.HabitSet, days int, needSetup bool, log *zap.Logger) App {
	if log == nil {
		log = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		store:     st,
		habits:    habits,
		log:       log,
		today:     model.Today,
		days:      days,
		needSetup: needSetup,
		spinner:   sp,
		tracker:   newTrackerState(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadRecordsCmd(a.store),
		a.spinner.Tick,
	)
}

// recompute refreshes the Statistics tab for the current window.
func (a *App) recompute() {
	today := a.today()
	var since model.Date
	if a.days > 0 {
		since = today.AddDays(-(a.days - 1))
	}
	a.windowRecs = pipeline.FilterByRange(a.records, since, today)
	a.summary = pipeline.Summarize(a.windowRecs, a.habits, today)
	a.totals = pipeline.TotalCompletionsPerHabit(a.windowRecs, a.habits)

	// Streaks run over full history, matching the CLI.
	a.best = pipeline.LongestStreak(a.records, a.habits)
	a.current = pipeline.CurrentStreak(a.records, a.habits, today)

	if since.IsZero() {
		since = a.summary.FirstDate
	}
	a.daily = nil
	if !since.IsZero() {
		a.daily = pipeline.FillDays(pipeline.CompletedCountPerDay(a.windowRecs, a.habits), since, today)
	}
}

// recordFor returns the loaded record for date.
func (a App) recordFor(date model.Date) (model.DailyRecord, bool) {
	i := sort.Search(len(a.records), func(i int) bool {
		return !a.records[i].Date.Before(date)
	})
	if i < len(a.records) && a.records[i].Date == date {
		return a.records[i], true
	}
	return model.DailyRecord{}, false
}

// storeRecord inserts or replaces rec in the loaded records.
func (a *App) storeRecord(rec model.DailyRecord) {
	i := sort.Search(len(a.records), func(i int) bool {
		return !a.records[i].Date.Before(rec.Date)
	})
	if i < len(a.records) && a.records[i].Date == rec.Date {
		a.records[i] = rec
		return
	}
	a.records = append(a.records, model.DailyRecord{})
	copy(a.records[i+1:], a.records[i:])
	a.records[i] = rec
}

func (a *App) setFlash(msg string, isErr bool) tea.Cmd {
	a.flash = msg
	a.flashErr = isErr
	a.flashSeq++
	seq := a.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{seq: seq}
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabTracker && !a.tracker.editingNotes {
				a.tracker.moveCursor(-1, a.habits.Len())
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == tabTracker && !a.tracker.editingNotes {
				a.tracker.moveCursor(1, a.habits.Len())
			}
			return a, nil

		case tea.MouseButtonLeft:
			if msg.Action != tea.MouseActionPress {
				return a, nil
			}
			// Tab bar is the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Notes input intercepts all keys while editing
		if a.activeTab == tabTracker && a.tracker.editingNotes {
			return a.updateNotesInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activeTab == tabTracker {
			if m, cmd, handled := a.updateTracker(msg); handled {
				return m, cmd
			}
		}

		if a.activeTab == tabStats {
			switch key {
			case "w":
				a.days = nextWindow(a.days)
				a.recompute()
				return a, nil
			case "left", "h":
				a.activeTab = tabTracker
				return a, nil
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "t", "s":
			a.activeTab = components.TabIdxByKey(rune(key[0]))
		case "1", "2":
			a.activeTab = int(key[0] - '1')
		}
		return a, nil

	case RecordsLoadedMsg:
		a.loaded = true
		a.loadTime = msg.LoadTime
		if msg.Err != nil {
			a.loadErr = msg.Err
			a.log.Error("loading records", zap.Error(msg.Err))
		}
		a.records = msg.Records
		a.recompute()
		a.openDay(a.today())
		a.log.Debug("records loaded",
			zap.Int("count", len(a.records)),
			zap.Duration("elapsed", msg.LoadTime))

		if a.needSetup {
			a.setupVals = defaultSetupValues(a.days)
			a.setupForm = NewSetupForm(&a.setupVals, false)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case SavedMsg:
		a.tracker.saving = false
		if msg.Err != nil {
			a.log.Error("saving record", zap.String("date", msg.Record.Date.String()), zap.Error(msg.Err))
			return a, a.setFlash("Save failed: "+msg.Err.Error(), true)
		}
		a.storeRecord(msg.Record)
		a.recompute()
		if a.tracker.draft.Date == msg.Record.Date {
			a.tracker.stored = msg.Record.Clone()
			a.tracker.exists = true
		}
		return a, a.setFlash("Saved!", false)

	case clearFlashMsg:
		if msg.seq == a.flashSeq {
			a.flash = ""
			a.flashErr = false
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form or notes input (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.tracker.editingNotes {
		var cmd tea.Cmd
		a.tracker.notesIn, cmd = a.tracker.notesIn.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		if err := saveSetupConfig(a.setupVals); err != nil {
			a.log.Warn("saving setup config", zap.Error(err))
		}
		theme.SetActive(a.setupVals.Theme)
		a.days = a.setupVals.Days
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func nextWindow(days int) int {
	for i, d := range windowOptions {
		if d == days {
			return windowOptions[(i+1)%len(windowOptions)]
		}
	}
	return windowOptions[0]
}

func windowLabel(days int) string {
	if days <= 0 {
		return "all time"
	}
	return fmt.Sprintf("%dd", days)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  habits needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ habits"))
	b.WriteString(subtitleStyle.Render(" · Daily Habit Tracker"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading entries..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Tabs", []struct{ key, desc string }{
			{"t s", "Tracker / Statistics"},
			{"tab", "Next tab"},
		}},
		{"Tracker", []struct{ key, desc string }{
			{"j k", "Move between habits"},
			{"space", "Toggle habit"},
			{"a", "Toggle all"},
			{"h l ← →", "Previous / next day"},
			{"T", "Jump to today"},
			{"n", "Edit notes"},
			{"enter ^s", "Save"},
			{"esc", "Discard changes"},
		}},
		{"Statistics", []struct{ key, desc string }{
			{"w", "Cycle window (7d/30d/90d/all)"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	hints := "[?]help  [q]uit"
	info := fmt.Sprintf("%d entries · loaded in %s", len(a.records), a.loadTime.Round(time.Millisecond))
	if a.activeTab == tabTracker && a.tracker.dirty() {
		info = "unsaved changes · enter to save"
	}
	if a.loadErr != nil {
		info = "load failed: " + a.loadErr.Error()
	}
	if a.flash != "" {
		info = a.flash
	}
	statusBar := components.RenderStatusBar(w, hints, info, a.flash != "" && !a.flashErr)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabTracker:
		content = a.renderTrackerTab(cw, contentH)
	case tabStats:
		content = a.renderStatsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands ───────────────────────────────────────────────────

func loadRecordsCmd(st RecordStore) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		records, err := st.ListAll(store.Ascending)
		return RecordsLoadedMsg{
			Records:  records,
			LoadTime: time.Since(start),
			Err:      err,
		}
	}
}

func saveCmd(st RecordStore, rec model.DailyRecord) tea.Cmd {
	return func() tea.Msg {
		return SavedMsg{Record: rec, Err: st.Upsert(rec)}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// chartDateLabels builds compact X-axis labels for an ascending date series.
// First label and month boundaries show the month abbreviation, everything
// else the day number.
func chartDateLabels(days []model.DayCount) []string {
	labels := make([]string, len(days))
	prevMonth := time.Month(0)
	for i, d := range days {
		switch {
		case i == 0, d.Date.Month != prevMonth && i != len(days)-1:
			labels[i] = d.Date.Month.String()[:3]
		default:
			labels[i] = strconv.Itoa(d.Date.Day)
		}
		prevMonth = d.Date.Month
	}
	return labels
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
