// Package chart exports a day's heart-rate series and zone breakdown as a
// standalone HTML page.
package chart

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/garrettladley/swimlight/internal/heartrate"
)

const theme = "macarons"

func HeartRateLine(c heartrate.Chart, date time.Time) *charts.Line {
	line := charts.NewLine()

	subtitle := fmt.Sprintf("%d-%d bpm", c.Minimum, c.Maximum)
	if c.HasAverage {
		subtitle += fmt.Sprintf(", avg %d bpm", c.Average)
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: theme}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Heart rate " + date.Format(time.DateOnly),
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "seconds swimming",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         "bpm",
			NameLocation: "middle",
			NameGap:      40,
			Min:          c.Minimum,
			Max:          c.Maximum,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	var (
		xs    []string
		items []opts.LineData
	)
	for e := range c.All() {
		xs = append(xs, strconv.Itoa(int(e.Offset)))
		items = append(items, opts.LineData{Value: e.BPM})
	}
	line.SetXAxis(xs)
	line.AddSeries("Heart rate", items)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line
}

// ZoneBar plots minutes per zone with each zone's bpm range in the label.
func ZoneBar(zones map[heartrate.Zone]time.Duration, table heartrate.Table) *charts.Bar {
	bar := charts.NewBar()

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: theme}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Heart rate zones",
			Subtitle: fmt.Sprintf("max heart rate %d bpm", table.MaxHeartRate()),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         "minutes",
			NameLocation: "middle",
			NameGap:      40,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "shadow",
			},
		}),
	)

	labels := make([]string, 0, 5)
	data := make([]opts.BarData, 0, 5)
	for _, z := range heartrate.Zones() {
		r, _ := table.Range(z)
		labels = append(labels, z.String()+" ("+r.String()+")")
		minutes := math.Round(zones[z].Minutes()*10) / 10
		data = append(data, opts.BarData{Value: minutes})
	}
	bar.SetXAxis(labels)
	bar.AddSeries("Time in zone", data)

	return bar
}

// Render writes every chart onto a single page.
func Render(w io.Writer, cs ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = "swimlight"
	page.AddCharts(cs...)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	return nil
}
