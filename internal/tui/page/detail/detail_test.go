package detail

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/garrettladley/swimlight/internal/heartrate"
	"github.com/garrettladley/swimlight/internal/report"
	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/tui/nav"
	"github.com/garrettladley/swimlight/internal/tui/theme"
)

var oct1 = time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)

func dayReport() *report.DayReport {
	return &report.DayReport{
		Date:     oct1,
		Duration: report.Result[time.Duration]{Value: 50 * time.Minute, Done: true},
		Distance: report.Result[float64]{Value: 1500, Done: true},
		Pace:     report.Result[float64]{Value: 200, Done: true},
		Calories: report.Result[float64]{Err: swim.ErrNoData, Done: true},
		Chart: report.Result[heartrate.Chart]{Value: heartrate.BuildChart([][]heartrate.Point{{
			{Time: oct1.Add(7 * time.Hour), BPM: 150},
			{Time: oct1.Add(7*time.Hour + 30*time.Second), BPM: 155},
		}}), Done: true},
		Zones:   report.Result[map[heartrate.Zone]time.Duration]{Value: map[heartrate.Zone]time.Duration{heartrate.Zone2: 30 * time.Second}, Done: true},
		Strokes: report.Result[map[swim.StrokeStyle]float64]{Value: map[swim.StrokeStyle]float64{swim.StrokeFreestyle: 50}, Done: true},
	}
}

func monthReport() *report.MonthReport {
	return &report.MonthReport{
		AverageDuration: report.Result[time.Duration]{Value: 55 * time.Minute, Done: true},
		AverageDistance: report.Result[float64]{Value: 2000, Done: true},
		AverageCalories: report.Result[float64]{Value: 400, Done: true},
		AveragePace:     report.Result[float64]{Value: 165, Done: true},
	}
}

func TestSetReports(t *testing.T) {
	t.Parallel()

	s := New(oct1, oct1, heartrate.NewTable(190))

	stale := dayReport()
	stale.Date = oct1.AddDate(0, 0, -1)
	if got := s.SetReports(stale, monthReport()); !got.Loading {
		t.Error("report for another date should be dropped")
	}

	got := s.SetReports(dayReport(), monthReport())
	if got.Loading {
		t.Fatal("Loading = true after SetReports")
	}
	if !got.Deltas.Distance.OK() || got.Deltas.Distance.Value != -25 {
		t.Errorf("Deltas.Distance = %+v, want -25", got.Deltas.Distance)
	}
}

func TestHandleKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key      string
		wantNil  bool
		wantDate time.Time
		screen   nav.Screen
	}{
		{key: "esc", wantDate: oct1, screen: nav.Calendar},
		{key: "left", wantDate: oct1.AddDate(0, 0, -1), screen: nav.Detail},
		{key: "right", wantNil: true},
		{key: "x", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			_, cmd := New(oct1, oct1, heartrate.NewTable(190)).HandleKey(tt.key)
			if tt.wantNil {
				if cmd != nil {
					t.Fatalf("HandleKey(%q) returned a command", tt.key)
				}
				return
			}
			msg, ok := cmd().(nav.NavigateMsg)
			if !ok {
				t.Fatalf("HandleKey(%q) did not navigate", tt.key)
			}
			if msg.Screen != tt.screen || !msg.Date.Equal(tt.wantDate) {
				t.Errorf("NavigateMsg = %+v", msg)
			}
		})
	}
}

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: "--"},
		{err: swim.ErrNoData, want: "--"},
		{err: fmt.Errorf("fetch: %w", swim.ErrUnauthorized), want: "no access"},
		{err: swim.ErrUnavailable, want: "offline"},
		{err: context.Canceled, want: ""},
		{err: fmt.Errorf("boom"), want: "error"},
	}

	for _, tt := range tests {
		if got := Placeholder(tt.err); got != tt.want {
			t.Errorf("Placeholder(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	s := New(oct1, oct1, heartrate.NewTable(190)).SetReports(dayReport(), monthReport())
	out := View(theme.New(), s, 120, 60)

	for _, want := range []string{"Tuesday, October 1 2024", "1500m", "-25%", "3:20 /100m", "freestyle", "141-159"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	loading := View(theme.New(), New(oct1, oct1, heartrate.NewTable(190)), 80, 20)
	if !strings.Contains(loading, "loading") {
		t.Error("View() while loading should say so")
	}
}
