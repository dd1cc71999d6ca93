package heartrate

import (
	"iter"
	"time"
)

// Fallbacks reported when there are no samples at all. They are display
// defaults, not statistics.
const (
	DefaultMinimum = 180
	DefaultMaximum = 100
)

// Element is one plotted point. Offset is seconds since the start of the
// first workout on a normalized axis that concatenates workouts.
type Element struct {
	Offset float64
	BPM    int
}

type Chart struct {
	Elapsed    time.Duration
	Minimum    int
	Maximum    int
	Average    int
	HasAverage bool
	Elements   []Element

	empty bool
}

// Empty reports whether Minimum and Maximum are fallbacks.
func (c Chart) Empty() bool { return c.empty }

// All yields the elements once, in axis order.
func (c Chart) All() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for _, e := range c.Elements {
			if !yield(e) {
				return
			}
		}
	}
}

func (c Chart) Hours() int { return int(c.Elapsed / time.Hour) }

func (c Chart) Minutes() int { return int(c.Elapsed%time.Hour) / int(time.Minute) }

// BuildChart turns per-workout groups of ascending points into a plotted
// series. The average is time weighted: every point after the first in its
// group contributes bpm times the interval since the previous point.
func BuildChart(groups [][]Point) Chart {
	chart := Chart{
		Minimum: DefaultMinimum,
		Maximum: DefaultMaximum,
		empty:   true,
	}

	var (
		weighted float64
		offset   float64
	)

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		chart.Elapsed += group[len(group)-1].Time.Sub(group[0].Time)

		for i, p := range group {
			if chart.empty {
				chart.Minimum, chart.Maximum = p.BPM, p.BPM
				chart.empty = false
			}
			chart.Minimum = min(chart.Minimum, p.BPM)
			chart.Maximum = max(chart.Maximum, p.BPM)

			if i == 0 {
				continue
			}
			interval := p.Time.Sub(group[i-1].Time).Seconds()
			weighted += float64(p.BPM) * interval
			offset += interval
			chart.Elements = append(chart.Elements, Element{Offset: offset, BPM: p.BPM})
		}
	}

	if elapsed := chart.Elapsed.Seconds(); elapsed > 0 {
		chart.Average = int(weighted / elapsed)
		chart.HasAverage = true
	}

	return chart
}
