package heartrate

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestBuildChartEmpty(t *testing.T) {
	t.Parallel()

	chart := BuildChart(nil)
	if !chart.Empty() {
		t.Error("Empty() = false, want true")
	}
	if chart.Minimum != DefaultMinimum || chart.Maximum != DefaultMaximum {
		t.Errorf("min/max = %d/%d, want fallbacks %d/%d", chart.Minimum, chart.Maximum, DefaultMinimum, DefaultMaximum)
	}
	if chart.HasAverage {
		t.Error("HasAverage = true with no samples")
	}
}

func TestBuildChartSinglePointGuardsAverage(t *testing.T) {
	t.Parallel()

	chart := BuildChart([][]Point{{at(0, 120)}})
	if chart.Elapsed != 0 {
		t.Fatalf("Elapsed = %v, want 0", chart.Elapsed)
	}
	if chart.HasAverage {
		t.Error("HasAverage = true with zero elapsed time")
	}
	if chart.Empty() || chart.Minimum != 120 || chart.Maximum != 120 {
		t.Errorf("min/max = %d/%d, want 120/120", chart.Minimum, chart.Maximum)
	}
	if len(chart.Elements) != 0 {
		t.Errorf("Elements = %v, want none", chart.Elements)
	}
}

func TestBuildChart(t *testing.T) {
	t.Parallel()

	groups := [][]Point{
		{at(0, 100), at(10, 120), at(30, 140)},
		{at(3600, 150), at(3620, 160)},
	}

	chart := BuildChart(groups)

	if chart.Elapsed != 50*time.Second {
		t.Errorf("Elapsed = %v, want 50s", chart.Elapsed)
	}
	if chart.Minimum != 100 || chart.Maximum != 160 {
		t.Errorf("min/max = %d/%d, want 100/160", chart.Minimum, chart.Maximum)
	}
	// (120*10 + 140*20 + 160*20) / 50 = 7200 / 50
	if !chart.HasAverage || chart.Average != 144 {
		t.Errorf("Average = %d (has=%v), want 144", chart.Average, chart.HasAverage)
	}

	want := []Element{
		{Offset: 10, BPM: 120},
		{Offset: 30, BPM: 140},
		{Offset: 50, BPM: 160},
	}
	if diff := cmp.Diff(want, chart.Elements); diff != "" {
		t.Errorf("Elements mismatch (-want +got):\n%s", diff)
	}

	var seen []Element
	for e := range chart.All() {
		seen = append(seen, e)
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestChartHoursMinutes(t *testing.T) {
	t.Parallel()

	c := Chart{Elapsed: 2*time.Hour + 35*time.Minute + 10*time.Second}
	if c.Hours() != 2 || c.Minutes() != 35 {
		t.Errorf("Hours/Minutes = %d/%d, want 2/35", c.Hours(), c.Minutes())
	}
}
