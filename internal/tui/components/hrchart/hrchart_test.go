package hrchart

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/swimlight/internal/heartrate"
	"github.com/garrettladley/swimlight/internal/tui/theme"
)

func sampleChart() heartrate.Chart {
	start := time.Date(2024, 10, 1, 7, 0, 0, 0, time.UTC)
	return heartrate.BuildChart([][]heartrate.Point{{
		{Time: start, BPM: 120},
		{Time: start.Add(10 * time.Second), BPM: 120},
		{Time: start.Add(20 * time.Second), BPM: 160},
	}})
}

func TestProject(t *testing.T) {
	t.Parallel()

	got := Project(sampleChart(), 21, 9)
	want := [][2]int{{10, 8}, {20, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Project() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	out := Render(sampleChart(), 30, 6, theme.ColorWater, theme.ColorDim)
	if h := lipgloss.Height(out); h != 6 {
		t.Errorf("height = %d, want 6", h)
	}
	if !strings.Contains(out, "160") || !strings.Contains(out, "120") {
		t.Errorf("axis labels missing:\n%s", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	out := Render(heartrate.BuildChart(nil), 30, 6, theme.ColorWater, theme.ColorDim)
	if !strings.Contains(out, "no heart rate data") {
		t.Errorf("empty chart = %q", out)
	}
}
