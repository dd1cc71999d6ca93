// Package calendar renders a month grid with workout days highlighted and
// moves a day cursor across it.
package calendar

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/tui/nav"
	"github.com/garrettladley/swimlight/internal/tui/theme"
)

const cellWidth = 4

type State struct {
	Bucketer daterange.Bucketer
	Today    time.Time
	Selected time.Time
	Workouts map[string]struct{}
	Streak   int
	Loaded   bool
	Err      error
}

func New(b daterange.Bucketer, now time.Time) State {
	today := daterange.StartOfDay(now.In(b.Location()))
	return State{
		Bucketer: b,
		Today:    today,
		Selected: today,
		Workouts: make(map[string]struct{}),
	}
}

// SetWorkoutDates replaces the highlighted days.
func (s State) SetWorkoutDates(dates []time.Time, streak int) State {
	s.Workouts = make(map[string]struct{}, len(dates))
	for _, d := range dates {
		s.Workouts[s.Bucketer.DayKey(d)] = struct{}{}
	}
	s.Streak = streak
	s.Loaded = true
	s.Err = nil
	return s
}

func (s State) HasWorkout(day time.Time) bool {
	_, ok := s.Workouts[s.Bucketer.DayKey(day)]
	return ok
}

// HandleKey moves the cursor; the future is never selectable.
func (s State) HandleKey(key string) (State, tea.Cmd) {
	switch key {
	case "left", "h":
		s.Selected = s.Selected.AddDate(0, 0, -1)
	case "right", "l":
		s.Selected = s.Selected.AddDate(0, 0, 1)
	case "up", "k":
		s.Selected = s.Selected.AddDate(0, 0, -7)
	case "down", "j":
		s.Selected = s.Selected.AddDate(0, 0, 7)
	case "[":
		s.Selected = addMonths(s.Selected, -1)
	case "]":
		s.Selected = addMonths(s.Selected, 1)
	case "t":
		s.Selected = s.Today
	case "enter":
		return s, nav.Navigate(nav.Detail, s.Selected)
	}
	if s.Selected.After(s.Today) {
		s.Selected = s.Today
	}
	return s, nil
}

// addMonths keeps the day of month where possible, clamping to the last day
// of the target month.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	return time.Date(first.Year(), first.Month(), min(t.Day(), last), 0, 0, 0, 0, t.Location())
}

func View(t theme.Theme, s State, width, height int) string {
	month, err := s.Bucketer.Month(s.Selected)
	if err != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ColorNegative).Render(err.Error()))
	}

	title := t.Title().Render(month.Start.Format("January 2006"))

	var header strings.Builder
	for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		header.WriteString(fmt.Sprintf("%*s", cellWidth, wd))
	}

	grid := []string{t.Dim().Render(header.String())}
	var row strings.Builder
	row.WriteString(strings.Repeat(" ", cellWidth*int(month.Start.Weekday())))
	for day := range daterange.Days(month) {
		row.WriteString(cell(t, s, day))
		if day.Weekday() == time.Saturday {
			grid = append(grid, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		grid = append(grid, row.String())
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		strings.Join(grid, "\n"),
		"",
		statusLine(t, s),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func cell(t theme.Theme, s State, day time.Time) string {
	text := fmt.Sprintf("%*d", cellWidth-1, day.Day())
	style := t.Base()
	switch {
	case day.After(s.Today):
		style = t.Dim()
	case s.HasWorkout(day):
		style = lipgloss.NewStyle().Foreground(theme.ColorWater).Bold(true)
	}
	if day.Equal(s.Today) {
		style = style.Underline(true)
	}
	if day.Equal(s.Selected) {
		style = style.Background(theme.ColorLane)
	}
	return " " + style.Render(text)
}

func statusLine(t theme.Theme, s State) string {
	switch {
	case s.Err != nil:
		return lipgloss.NewStyle().Foreground(theme.ColorNegative).Render("workout days unavailable")
	case !s.Loaded:
		return t.Dim().Render("loading workout days...")
	case s.Streak == 1:
		return t.TextAccent().Render("1 day streak")
	default:
		return t.TextAccent().Render(fmt.Sprintf("%d day streak", s.Streak))
	}
}
