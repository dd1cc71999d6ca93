package metrics

import (
	"testing"

	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/google/go-cmp/cmp"
)

func TestStrokeDistances(t *testing.T) {
	t.Parallel()

	strokes := []swim.Sample{
		{Kind: swim.KindStrokeCount, Start: at(1, 7, 0), End: at(1, 7, 2), Value: 20, StrokeStyle: swim.StrokeFreestyle},
		{Kind: swim.KindStrokeCount, Start: at(1, 7, 2), End: at(1, 7, 4), Value: 18, StrokeStyle: swim.StrokeBreaststroke},
		{Kind: swim.KindStrokeCount, Start: at(1, 7, 4), End: at(1, 7, 6), Value: 22, StrokeStyle: swim.StrokeFreestyle},
		{Kind: swim.KindStrokeCount, Start: at(1, 9, 0), End: at(1, 9, 1), Value: 5, StrokeStyle: swim.StrokeButterfly},
	}
	distances := []swim.Sample{
		{Kind: swim.KindDistance, Start: at(1, 7, 0), End: at(1, 7, 1), Value: 25},
		{Kind: swim.KindDistance, Start: at(1, 7, 1), End: at(1, 7, 2), Value: 50},
		{Kind: swim.KindDistance, Start: at(1, 7, 3), End: at(1, 7, 4), Value: 25},
		{Kind: swim.KindDistance, Start: at(1, 7, 5), End: at(1, 7, 6), Value: 50},
	}

	want := map[swim.StrokeStyle]float64{
		swim.StrokeFreestyle:    100,
		swim.StrokeBreaststroke: 25,
	}
	if diff := cmp.Diff(want, StrokeDistances(strokes, distances)); diff != "" {
		t.Errorf("StrokeDistances() mismatch (-want +got):\n%s", diff)
	}
}
