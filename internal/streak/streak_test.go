package streak

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestCount(t *testing.T) {
	t.Parallel()

	loc := time.UTC
	now := time.Date(2024, 10, 16, 15, 0, 0, 0, loc)
	daysAgo := func(n int, hour int) time.Time {
		return time.Date(2024, 10, 16-n, hour, 0, 0, 0, loc)
	}

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{
			name: "no workouts",
			want: 0,
		},
		{
			name:  "three consecutive days",
			dates: []time.Time{daysAgo(0, 7), daysAgo(1, 7), daysAgo(2, 7)},
			want:  3,
		},
		{
			name:  "gap stops the walk",
			dates: []time.Time{daysAgo(0, 7), daysAgo(2, 7)},
			want:  1,
		},
		{
			name:  "multiple workouts per day count once",
			dates: []time.Time{daysAgo(0, 7), daysAgo(0, 19), daysAgo(1, 6), daysAgo(1, 20)},
			want:  2,
		},
		{
			name:  "today missing",
			dates: []time.Time{daysAgo(1, 7), daysAgo(2, 7)},
			want:  0,
		},
		{
			name:  "unordered input",
			dates: []time.Time{daysAgo(2, 7), daysAgo(0, 7), daysAgo(1, 7), daysAgo(4, 7)},
			want:  3,
		},
		{
			name:  "older days behind a gap are ignored",
			dates: []time.Time{now, daysAgo(15, 1), daysAgo(16, 1)},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Count(tt.dates, now, loc); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountAcrossMonth(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	dates := []time.Time{
		time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC),
	}
	if got := Count(dates, now, time.UTC); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestCountNilLocation(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 10, 16, 12, 0, 0, 0, time.Local)
	dates := []time.Time{now.Add(-time.Hour), now.AddDate(0, 0, -1)}
	if got := Count(dates, now, nil); got != 2 {
		t.Errorf("Count(nil loc) = %d, want 2", got)
	}
}

func TestCountUsesLocation(t *testing.T) {
	t.Parallel()

	kst := time.FixedZone("KST", 9*60*60)
	now := time.Date(2024, 10, 16, 10, 0, 0, 0, kst)
	// 23:30 UTC on the 15th is the morning of the 16th in KST.
	dates := []time.Time{time.Date(2024, 10, 15, 23, 30, 0, 0, time.UTC)}

	if got := Count(dates, now, kst); got != 1 {
		t.Errorf("Count(KST) = %d, want 1", got)
	}
	if got := Count(dates, now, time.UTC); got != 0 {
		t.Errorf("Count(UTC) = %d, want 0", got)
	}
}

func TestLongest(t *testing.T) {
	t.Parallel()

	d := func(day int) time.Time { return time.Date(2024, 9, day, 12, 0, 0, 0, time.UTC) }
	dates := []time.Time{d(1), d(2), d(3), d(3), d(10), d(11), d(20), d(21), d(22), d(23)}

	if got := Longest(dates, time.UTC); got != 4 {
		t.Errorf("Longest() = %d, want 4", got)
	}
	if got := Longest(nil, time.UTC); got != 0 {
		t.Errorf("Longest(nil) = %d, want 0", got)
	}
}

func TestDays(t *testing.T) {
	t.Parallel()

	dates := []time.Time{
		time.Date(2024, 9, 2, 18, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 1, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 2, 6, 0, 0, 0, time.UTC),
	}
	want := []time.Time{
		time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, Days(dates, time.UTC)); diff != "" {
		t.Errorf("Days() mismatch (-want +got):\n%s", diff)
	}
}
