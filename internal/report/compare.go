package report

import (
	"github.com/garrettladley/swimlight/internal/metrics"
)

// Deltas are the percentage capsules shown next to the day's duration and
// distance.
type Deltas struct {
	Duration Result[int]
	Distance Result[int]
}

func Compare(day *DayReport, month *MonthReport) Deltas {
	var d Deltas
	switch {
	case day.Duration.Err != nil:
		d.Duration = failed[int](day.Duration.Err)
	case month.AverageDuration.Err != nil:
		d.Duration = failed[int](month.AverageDuration.Err)
	default:
		d.Duration = from(metrics.DeltaPercent(day.Duration.Value.Seconds(), month.AverageDuration.Value.Seconds()))
	}
	switch {
	case day.Distance.Err != nil:
		d.Distance = failed[int](day.Distance.Err)
	case month.AverageDistance.Err != nil:
		d.Distance = failed[int](month.AverageDistance.Err)
	default:
		d.Distance = from(metrics.DeltaPercent(day.Distance.Value, month.AverageDistance.Value))
	}
	return d
}
