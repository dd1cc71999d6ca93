package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/tui/nav"
	"github.com/garrettladley/swimlight/internal/tui/theme"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHandleKey(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 10, 16, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		keys  []string
		want  time.Time
	}{
		{name: "previous day", start: day(2024, 10, 16), keys: []string{"left"}, want: day(2024, 10, 15)},
		{name: "future is clamped", start: day(2024, 10, 16), keys: []string{"right", "down"}, want: day(2024, 10, 16)},
		{name: "week back", start: day(2024, 10, 16), keys: []string{"k"}, want: day(2024, 10, 9)},
		{name: "month back clamps day", start: day(2024, 3, 31), keys: []string{"["}, want: day(2024, 2, 29)},
		{name: "month forward", start: day(2024, 8, 31), keys: []string{"]"}, want: day(2024, 9, 30)},
		{name: "back to today", start: day(2024, 1, 2), keys: []string{"t"}, want: day(2024, 10, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := New(daterange.New(time.UTC), now)
			s.Selected = tt.start
			for _, k := range tt.keys {
				s, _ = s.HandleKey(k)
			}
			if !s.Selected.Equal(tt.want) {
				t.Errorf("Selected = %s, want %s", s.Selected.Format(time.DateOnly), tt.want.Format(time.DateOnly))
			}
		})
	}
}

func TestEnterNavigates(t *testing.T) {
	t.Parallel()

	s := New(daterange.New(time.UTC), time.Date(2024, 10, 16, 15, 0, 0, 0, time.UTC))
	s, _ = s.HandleKey("left")
	_, cmd := s.HandleKey("enter")
	if cmd == nil {
		t.Fatal("enter should emit a navigation command")
	}
	msg, ok := cmd().(nav.NavigateMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want nav.NavigateMsg", cmd())
	}
	if msg.Screen != nav.Detail || !msg.Date.Equal(day(2024, 10, 15)) {
		t.Errorf("NavigateMsg = %+v", msg)
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	b := daterange.New(time.UTC)
	s := New(b, time.Date(2024, 10, 16, 15, 0, 0, 0, time.UTC)).
		SetWorkoutDates([]time.Time{day(2024, 10, 15), day(2024, 10, 16)}, 2)

	if !s.HasWorkout(time.Date(2024, 10, 15, 18, 0, 0, 0, time.UTC)) {
		t.Error("HasWorkout() = false for a workout day")
	}

	out := View(theme.New(), s, 60, 20)
	for _, want := range []string{"October 2024", "2 day streak", "31"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
