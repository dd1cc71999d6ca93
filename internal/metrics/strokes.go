package metrics

import (
	"github.com/garrettladley/swimlight/internal/swim"
)

// StrokeDistances attributes distance to stroke styles. Each stroke-count
// sample takes the most recent distance sample that starts inside its
// window; samples without a matching distance are ignored.
func StrokeDistances(strokes, distances []swim.Sample) map[swim.StrokeStyle]float64 {
	res := make(map[swim.StrokeStyle]float64)
	for _, s := range strokes {
		d, ok := latestWithin(distances, s)
		if !ok {
			continue
		}
		res[s.StrokeStyle] += d.Value
	}
	return res
}

func latestWithin(distances []swim.Sample, window swim.Sample) (swim.Sample, bool) {
	var (
		best  swim.Sample
		found bool
	)
	for _, d := range distances {
		if d.Start.Before(window.Start) || d.Start.After(window.End) {
			continue
		}
		if !found || d.Start.After(best.Start) {
			best = d
			found = true
		}
	}
	return best, found
}
