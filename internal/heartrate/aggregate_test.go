package heartrate

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var base = time.Date(2024, 9, 30, 7, 0, 0, 0, time.UTC)

func at(seconds int, bpm int) Point {
	return Point{Time: base.Add(time.Duration(seconds) * time.Second), BPM: bpm}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points []Point
		want   map[Zone]time.Duration
	}{
		{
			name: "empty",
			want: map[Zone]time.Duration{},
		},
		{
			name:   "single sample has no interval",
			points: []Point{at(0, 120)},
			want:   map[Zone]time.Duration{},
		},
		{
			name:   "interval goes to closing sample's zone and gap is dropped",
			points: []Point{at(0, 100), at(60, 170), at(400, 170)},
			want:   map[Zone]time.Duration{Zone4: 60 * time.Second},
		},
		{
			name:   "walk restarts after gap",
			points: []Point{at(0, 100), at(400, 150), at(430, 150), at(460, 185)},
			want: map[Zone]time.Duration{
				Zone2: 0,
				Zone5: 30 * time.Second,
			},
		},
		{
			name:   "exactly five minutes is kept",
			points: []Point{at(0, 100), at(300, 100)},
			want:   map[Zone]time.Duration{Zone1: 300 * time.Second},
		},
		{
			name:   "negative interval resets",
			points: []Point{at(100, 100), at(50, 100), at(80, 100), at(110, 150)},
			want: map[Zone]time.Duration{
				Zone2: 30 * time.Second,
			},
		},
		{
			name:   "unclassifiable samples are skipped",
			points: []Point{at(0, 120), at(10, -5), at(20, 165)},
			want:   map[Zone]time.Duration{Zone3: 20 * time.Second},
		},
		{
			name: "steady swim",
			points: []Point{
				at(0, 130), at(5, 135), at(10, 142), at(15, 150), at(20, 161), at(25, 175),
			},
			want: map[Zone]time.Duration{
				Zone1: 5 * time.Second,
				Zone2: 10 * time.Second,
				Zone3: 5 * time.Second,
				Zone4: 5 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Aggregate(tt.points, DefaultMaxHeartRate)
			// zero entries are never written; drop them from expectations
			want := make(map[Zone]time.Duration)
			for z, d := range tt.want {
				if d != 0 {
					want[z] = d
				}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	t.Parallel()

	got := Total(map[Zone]time.Duration{Zone1: time.Minute, Zone3: 30 * time.Second})
	if got != 90*time.Second {
		t.Errorf("Total() = %v, want 1m30s", got)
	}
}
