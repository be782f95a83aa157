package tui

import (
	"fmt"
	"strings"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/cli"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui/components"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderStatsTab(cw int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if len(a.windowRecs) == 0 {
		body := dimStyle.Render(fmt.Sprintf("No entries in the last %s. Press w to widen the window.", windowLabel(a.days)))
		return components.ContentCard("Statistics · "+windowLabel(a.days), body, cw)
	}

	s := a.summary
	best := components.Metric{Label: "Best streak", Value: cli.FormatDays(a.best.Length)}
	if a.best.Length > 0 {
		best.Delta = fmt.Sprintf("%s to %s", a.best.Start, a.best.End)
	}
	cards := components.MetricCardRow([]components.Metric{
		{Label: "Days tracked", Value: cli.FormatNumber(int64(s.TrackedDays)), Delta: windowLabel(a.days)},
		{Label: "Complete days", Value: cli.FormatNumber(int64(s.CompleteDays))},
		{Label: "Completion", Value: cli.FormatPercent(s.CompletionRate), Delta: fmt.Sprintf("%d habits done", s.TotalDone)},
		best,
		{Label: "Current streak", Value: cli.FormatDays(a.current)},
	}, cw)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n")

	if a.isCompactLayout() {
		b.WriteString(a.renderHabitBarsCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderDailyChartCard(cw))
		return b.String()
	}

	widths := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		a.renderHabitBarsCard(widths[0]),
		a.renderDailyChartCard(widths[1]),
	}))
	return b.String()
}

// renderHabitBarsCard shows each habit's completion rate in the window.
func (a App) renderHabitBarsCard(w int) string {
	labelW := 0
	for _, l := range a.habits.Labels() {
		if lw := lipgloss.Width(l); lw > labelW {
			labelW = lw
		}
	}

	inner := components.CardInnerWidth(w)
	// label, space, bar, space, "100%", two spaces, "30/30"
	barW := inner - labelW - 1 - 1 - 4 - 2 - 7
	if barW < 5 {
		barW = 5
	}

	var b strings.Builder
	for i, l := range a.habits.Labels() {
		b.WriteString(components.HabitBar(l, a.totals[l], len(a.windowRecs), labelW, barW))
		if i < a.habits.Len()-1 {
			b.WriteString("\n")
		}
	}
	return components.ContentCard("Completion per habit · "+windowLabel(a.days), b.String(), w)
}

// renderDailyChartCard charts habits done per day, with empty days as zero.
func (a App) renderDailyChartCard(w int) string {
	values := make([]float64, len(a.daily))
	for i, d := range a.daily {
		values[i] = float64(d.Completed)
	}

	inner := components.CardInnerWidth(w)
	height := a.habits.Len()
	if height < 6 {
		height = 6
	}
	if height > 12 {
		height = 12
	}

	chart := components.BarChart(values, chartDateLabels(a.daily), theme.Active.Accent, inner, height)
	return components.ContentCard(fmt.Sprintf("Habits done per day (max %d)", a.habits.Len()), chart, w)
}
