package main

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/heartrate"
	"github.com/garrettladley/swimlight/internal/metrics"
	"github.com/garrettladley/swimlight/internal/report"
	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/xerrors"
)

var (
	labelColor    = color.New(color.FgHiBlack)
	valueColor    = color.New(color.FgCyan, color.Bold)
	positiveColor = color.New(color.FgGreen)
	negativeColor = color.New(color.FgRed)
	titleColor    = color.New(color.FgBlue, color.Bold)
)

func reportCmd() *cobra.Command {
	var (
		date  string
		graph bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print one day's swim report",
		Long:  "Prints the day's duration, distance, pace, calories, heart rate zones and strokes compared with its month.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			day, err := parseDate(a.bucketer, date)
			if err != nil {
				return err
			}

			dayRep, err := a.service.Day(ctx, day)
			if err != nil {
				return err
			}
			monthRep, err := a.service.Month(ctx, day)
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), dayRep, monthRep, a.service.ZoneTable())
			if graph && dayRep.Chart.OK() {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), plotHeartRate(dayRep.Chart.Value))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "day to report, YYYY-MM-DD (default today)")
	cmd.Flags().BoolVarP(&graph, "graph", "g", false, "plot the heart rate series below the report")
	return cmd
}

// parseDate resolves a --date flag; empty means today.
func parseDate(b daterange.Bucketer, s string) (time.Time, error) {
	if s == "" {
		return daterange.StartOfDay(time.Now().In(b.Location())), nil
	}
	t, err := b.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date: %w", err)
	}
	return t, nil
}

func printReport(w io.Writer, day *report.DayReport, month *report.MonthReport, table heartrate.Table) {
	deltas := report.Compare(day, month)

	titleColor.Fprintln(w, day.Date.Format("Monday, January 2 2006"))
	fmt.Fprintln(w)

	line(w, "duration", value(day.Duration, metrics.FormatDuration), delta(deltas.Duration))
	line(w, "distance", value(day.Distance, meters), delta(deltas.Distance))
	line(w, "pace", value(day.Pace, metrics.FormatPace), "")
	line(w, "calories", value(day.Calories, func(v float64) string { return fmt.Sprintf("%.0f kcal", v) }), "")

	if day.Chart.OK() {
		c := day.Chart.Value
		hr := fmt.Sprintf("%d-%d bpm", c.Minimum, c.Maximum)
		if c.HasAverage {
			hr += fmt.Sprintf(", avg %d", c.Average)
		}
		line(w, "heart rate", valueColor.Sprint(hr), "")
	} else {
		line(w, "heart rate", placeholder(day.Chart.Err), "")
	}

	fmt.Fprintln(w)
	labelColor.Fprintln(w, "zones")
	if day.Zones.OK() {
		for _, z := range heartrate.Zones() {
			r, _ := table.Range(z)
			fmt.Fprintf(w, "  %s %-8s %s\n", z, r, valueColor.Sprint(metrics.FormatDuration(day.Zones.Value[z])))
		}
	} else {
		fmt.Fprintf(w, "  %s\n", placeholder(day.Zones.Err))
	}

	fmt.Fprintln(w)
	labelColor.Fprintln(w, "strokes")
	if day.Strokes.OK() {
		styles := make([]swim.StrokeStyle, 0, len(day.Strokes.Value))
		for s := range day.Strokes.Value {
			styles = append(styles, s)
		}
		slices.Sort(styles)
		for _, s := range styles {
			fmt.Fprintf(w, "  %-12s %s\n", s, valueColor.Sprint(meters(day.Strokes.Value[s])))
		}
	} else {
		fmt.Fprintf(w, "  %s\n", placeholder(day.Strokes.Err))
	}

	fmt.Fprintln(w)
	labelColor.Fprintf(w, "%s averages\n", month.Month.Start.Format("January"))
	line(w, "days", value(month.WorkoutDays, func(n int) string { return fmt.Sprint(n) }), "")
	line(w, "duration", value(month.AverageDuration, metrics.FormatDuration), "")
	line(w, "distance", value(month.AverageDistance, meters), "")
	line(w, "pace", value(month.AveragePace, metrics.FormatPace), "")
	line(w, "calories", value(month.AverageCalories, func(v float64) string { return fmt.Sprintf("%.0f kcal", v) }), "")
}

const graphWidth = 60

// plotHeartRate draws the chart elements. A day whose workouts each carry a
// single sample has no elements, and asciigraph cannot plot an empty series.
func plotHeartRate(c heartrate.Chart) string {
	data := make([]float64, 0, len(c.Elements))
	for e := range c.All() {
		data = append(data, float64(e.BPM))
	}
	if len(data) == 0 {
		return labelColor.Sprint("no heart rate series")
	}
	return asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("heart rate (bpm)"),
	)
}

func meters(v float64) string { return fmt.Sprintf("%.0fm", v) }

func line(w io.Writer, label, val, extra string) {
	fmt.Fprintf(w, "%s %s %s\n", labelColor.Sprintf("%-11s", label), val, extra)
}

func value[T any](r report.Result[T], format func(T) string) string {
	if !r.OK() {
		return placeholder(r.Err)
	}
	return valueColor.Sprint(format(r.Value))
}

func delta(r report.Result[int]) string {
	if !r.OK() {
		return ""
	}
	if r.Value < 0 {
		return negativeColor.Sprint(metrics.FormatDelta(r.Value))
	}
	return positiveColor.Sprint(metrics.FormatDelta(r.Value))
}

func placeholder(err error) string {
	if err == nil {
		return labelColor.Sprint("--")
	}
	switch xerrors.KindOf(err) {
	case xerrors.KindNoData:
		return labelColor.Sprint("--")
	case xerrors.KindUnauthorized:
		return negativeColor.Sprint("not authorized (run: swimlight authorize)")
	case xerrors.KindUnavailable:
		return negativeColor.Sprint("store unavailable")
	default:
		return negativeColor.Sprint(err.Error())
	}
}
