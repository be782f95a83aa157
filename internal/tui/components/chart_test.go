package components

import (
	"strings"
	"testing"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestChartTickStep_WholeNumbers(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{1, 1},
		{3, 1},
		{10, 2},
		{25, 5},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.max); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestBarChart_HeightAndLabels(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{0, 3, 10, 7}
	labels := []string{"Jan", "2", "3", "4"}
	out := BarChart(values, labels, theme.Active.Accent, 40, 10)

	lines := strings.Split(out, "\n")
	if len(lines) < 4 {
		t.Fatalf("chart has %d lines, want at least 4", len(lines))
	}
	if !strings.Contains(out, "Jan") {
		t.Error("first X label missing")
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line %d width = %d, exceeds 40", i, w)
		}
	}
}

func TestBarChart_NarrowFallsBackToSparkline(t *testing.T) {
	out := BarChart([]float64{1, 2, 3}, nil, theme.Active.Accent, 10, 2)
	if strings.Contains(out, "\n") {
		t.Errorf("narrow chart should be a single sparkline line, got %q", out)
	}
}

func TestTabVisualWidth(t *testing.T) {
	tab := Tabs[0]
	// Active: padded name. Inactive: padded name plus "[" and "]".
	if got, want := TabVisualWidth(tab, true), len(tab.Name)+2; got != want {
		t.Errorf("active width = %d, want %d", got, want)
	}
	if got, want := TabVisualWidth(tab, false), len(tab.Name)+4; got != want {
		t.Errorf("inactive width = %d, want %d", got, want)
	}
}

func TestColorForPct(t *testing.T) {
	theme.SetActive("flexoki-dark")
	if ColorForPct(1) != string(theme.Active.Green) {
		t.Error("full completion should be green")
	}
	if ColorForPct(0) != string(theme.Active.Red) {
		t.Error("zero completion should be red")
	}
}
