// Package detail renders one day's swim report next to its month averages.
package detail

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/heartrate"
	"github.com/garrettladley/swimlight/internal/metrics"
	"github.com/garrettladley/swimlight/internal/report"
	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/tui/components/gauge"
	"github.com/garrettladley/swimlight/internal/tui/components/hrchart"
	"github.com/garrettladley/swimlight/internal/tui/nav"
	"github.com/garrettladley/swimlight/internal/tui/theme"
	"github.com/garrettladley/swimlight/internal/xerrors"
)

const (
	chartHeight = 8
	barWidth    = 24
)

type State struct {
	Date    time.Time
	Today   time.Time
	Loading bool
	Day     *report.DayReport
	Month   *report.MonthReport
	Deltas  report.Deltas
	Table   heartrate.Table
	Err     error
}

func New(date, today time.Time, table heartrate.Table) State {
	return State{Date: date, Today: today, Table: table, Loading: true}
}

// SetReports stores the fetched reports. Reports for another date are stale
// and dropped.
func (s State) SetReports(day *report.DayReport, month *report.MonthReport) State {
	if day == nil || !day.Date.Equal(s.Date) {
		return s
	}
	s.Day = day
	s.Month = month
	if month != nil {
		s.Deltas = report.Compare(day, month)
	}
	s.Loading = false
	s.Err = nil
	return s
}

func (s State) SetError(err error) State {
	s.Loading = false
	s.Err = err
	return s
}

func (s State) HandleKey(key string) (State, tea.Cmd) {
	switch key {
	case "esc", "backspace":
		return s, nav.Navigate(nav.Calendar, s.Date)
	case "left", "h":
		return s, nav.Navigate(nav.Detail, s.Date.AddDate(0, 0, -1))
	case "right", "l":
		next := s.Date.AddDate(0, 0, 1)
		if next.After(s.Today) {
			return s, nil
		}
		return s, nav.Navigate(nav.Detail, next)
	}
	return s, nil
}

func View(t theme.Theme, s State, width, height int) string {
	title := t.Title().Render(s.Date.Format("Monday, January 2 2006"))
	if s.Err != nil && s.Day == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, title, "",
				lipgloss.NewStyle().Foreground(theme.ColorNegative).Render(s.Err.Error())))
	}
	if s.Loading || s.Day == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, title, "", t.Dim().Render("loading...")))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		gauges(s),
		"",
		paceLine(t, s),
		"",
		heartRate(t, s, min(width-4, 72)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, zones(t, s), "    ", strokes(t, s)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func gauges(s State) string {
	var avgDuration, avgDistance, avgCalories report.Result[float64]
	if s.Month != nil {
		avgDuration = report.Result[float64]{
			Value: s.Month.AverageDuration.Value.Seconds(),
			Err:   s.Month.AverageDuration.Err,
			Done:  s.Month.AverageDuration.Done,
		}
		avgDistance = s.Month.AverageDistance
		avgCalories = s.Month.AverageCalories
	}

	duration := report.Result[float64]{
		Value: s.Day.Duration.Value.Seconds(),
		Err:   s.Day.Duration.Err,
		Done:  s.Day.Duration.Done,
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		column(
			gauge.New(fraction(s.Day.Distance, avgDistance),
				text(s.Day.Distance, func(v float64) string { return fmt.Sprintf("%.0fm", v) }),
				"DISTANCE", theme.ColorWater).Render(),
			delta(s.Deltas.Distance),
		),
		"  ",
		column(
			gauge.New(fraction(duration, avgDuration),
				text(s.Day.Duration, metrics.FormatDuration),
				"DURATION", theme.ColorLane).Render(),
			delta(s.Deltas.Duration),
		),
		"  ",
		column(
			gauge.New(fraction(s.Day.Calories, avgCalories),
				text(s.Day.Calories, func(v float64) string { return fmt.Sprintf("%.0f kcal", v) }),
				"CALORIES", theme.ColorWarning).Render(),
			"",
		),
	)
}

func column(parts ...string) string {
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// fraction fills the ring to half at the month average.
func fraction(value, average report.Result[float64]) *float64 {
	if !value.OK() {
		return nil
	}
	f := 0.5
	if average.OK() && average.Value > 0 {
		f = min(value.Value/(2*average.Value), 1)
	}
	return &f
}

func text[T any](r report.Result[T], format func(T) string) string {
	if r.OK() {
		return format(r.Value)
	}
	return Placeholder(r.Err)
}

func delta(r report.Result[int]) string {
	if !r.OK() {
		return ""
	}
	c := theme.ColorPositive
	if r.Value < 0 {
		c = theme.ColorNegative
	}
	return lipgloss.NewStyle().
		Foreground(theme.ColorBgDark).
		Background(c).
		Padding(0, 1).
		Render(metrics.FormatDelta(r.Value) + " vs month")
}

func paceLine(t theme.Theme, s State) string {
	line := t.Dim().Render("pace ") + t.Base().Render(text(s.Day.Pace, metrics.FormatPace))
	if s.Month != nil && s.Month.AveragePace.OK() {
		line += t.Dim().Render("   month " + metrics.FormatPace(s.Month.AveragePace.Value))
	}
	return line
}

func heartRate(t theme.Theme, s State, width int) string {
	if !s.Day.Chart.OK() {
		return lipgloss.JoinVertical(lipgloss.Left,
			t.Dim().Render("HEART RATE"),
			t.Dim().Render(Placeholder(s.Day.Chart.Err)),
		)
	}

	c := s.Day.Chart.Value
	summary := fmt.Sprintf("min %d  max %d", c.Minimum, c.Maximum)
	if c.HasAverage {
		summary += fmt.Sprintf("  avg %d", c.Average)
	}
	summary += fmt.Sprintf("  %dh %dm", c.Hours(), c.Minutes())

	return lipgloss.JoinVertical(lipgloss.Left,
		t.Dim().Render("HEART RATE  ")+t.Base().Render(summary),
		hrchart.Render(c, width, chartHeight, theme.ColorNegative, theme.ColorDim),
	)
}

func zones(t theme.Theme, s State) string {
	lines := []string{t.Dim().Render("ZONES")}
	if !s.Day.Zones.OK() {
		return strings.Join(append(lines, t.Dim().Render(Placeholder(s.Day.Zones.Err))), "\n")
	}

	total := heartrate.Total(s.Day.Zones.Value)
	for _, z := range slices.Backward(heartrate.Zones()) {
		d := s.Day.Zones.Value[z]
		var share float64
		if total > 0 {
			share = float64(d) / float64(total)
		}
		label := z.String()
		if r, ok := s.Table.Range(z); ok {
			label = fmt.Sprintf("%s %-7s", z, r)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			t.Base().Render(label),
			bar(share, theme.ZoneColor(z)),
			t.Dim().Render(metrics.FormatDuration(d)),
		))
	}
	return strings.Join(lines, "\n")
}

func bar(share float64, c color.Color) string {
	filled := int(share*barWidth + 0.5)
	return lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.ColorBgLight).Render(strings.Repeat("░", barWidth-filled))
}

func strokes(t theme.Theme, s State) string {
	lines := []string{t.Dim().Render("STROKES")}
	if !s.Day.Strokes.OK() {
		return strings.Join(append(lines, t.Dim().Render(Placeholder(s.Day.Strokes.Err))), "\n")
	}

	styles := make([]swim.StrokeStyle, 0, len(s.Day.Strokes.Value))
	for style := range s.Day.Strokes.Value {
		styles = append(styles, style)
	}
	slices.Sort(styles)
	for _, style := range styles {
		lines = append(lines, fmt.Sprintf("%-12s %s",
			t.Base().Render(style.String()),
			t.TextAccent().Render(fmt.Sprintf("%.0fm", s.Day.Strokes.Value[style])),
		))
	}
	return strings.Join(lines, "\n")
}

// Placeholder is what a metric shows instead of a value.
func Placeholder(err error) string {
	if err == nil {
		return "--"
	}
	switch xerrors.KindOf(err) {
	case xerrors.KindNoData:
		return "--"
	case xerrors.KindUnauthorized:
		return "no access"
	case xerrors.KindUnavailable:
		return "offline"
	case xerrors.KindCanceled:
		return ""
	case xerrors.KindDateRange:
		return "bad date"
	default:
		return "error"
	}
}
