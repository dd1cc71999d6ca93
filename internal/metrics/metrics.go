// Package metrics derives swim report values from pre-fetched samples.
//
// Every calculator reports swim.ErrNoData when its input is empty or its
// denominator is zero; presentation decides what placeholder to show.
package metrics

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/swim"
)

// Pace returns seconds per 100 meters. Distances under one whole meter are
// sensor noise and report no data.
func Pace(total time.Duration, meters float64) (float64, error) {
	if meters < 1 {
		return 0, fmt.Errorf("pace over %.1fm: %w", meters, swim.ErrNoData)
	}
	return total.Seconds() / meters * 100, nil
}

func TotalDuration(workouts []swim.Workout) time.Duration {
	var total time.Duration
	for _, w := range workouts {
		total += w.Duration()
	}
	return total
}

func TotalDistance(buckets []swim.DailyBucket) float64 {
	var total float64
	for _, b := range buckets {
		total += b.Sum
	}
	return total
}

func TotalValue(samples []swim.Sample) float64 {
	var total float64
	for _, s := range samples {
		total += s.Value
	}
	return total
}

// AverageDurationPerDay divides the total workout time by the number of
// distinct calendar days that had a workout.
func AverageDurationPerDay(workouts []swim.Workout, loc *time.Location) (time.Duration, error) {
	days := distinctDays(loc, len(workouts), func(i int) time.Time { return workouts[i].Start })
	if days == 0 {
		return 0, fmt.Errorf("average duration: %w", swim.ErrNoData)
	}
	return TotalDuration(workouts) / time.Duration(days), nil
}

// AverageDistancePerDay divides the summed distance by the number of
// distinct calendar days with a bucket.
func AverageDistancePerDay(buckets []swim.DailyBucket, loc *time.Location) (float64, error) {
	days := distinctDays(loc, len(buckets), func(i int) time.Time { return buckets[i].Start })
	if days == 0 {
		return 0, fmt.Errorf("average distance: %w", swim.ErrNoData)
	}
	return TotalDistance(buckets) / float64(days), nil
}

// CaloriesPerDay sums energy samples that start inside a workout window and
// groups the sums by the workout's calendar day. Days are returned in
// ascending order.
func CaloriesPerDay(workouts []swim.Workout, energy []swim.Sample, loc *time.Location) []float64 {
	b := daterange.New(loc)

	var (
		order []string
		sums  = make(map[string]float64)
	)
	for _, w := range workouts {
		key := b.DayKey(w.Start)
		if _, ok := sums[key]; !ok {
			order = append(order, key)
			sums[key] = 0
		}
		for _, s := range energy {
			if !s.Start.Before(w.Start) && s.Start.Before(w.End) {
				sums[key] += s.Value
			}
		}
	}

	slices.Sort(order)
	out := make([]float64, 0, len(order))
	for _, k := range order {
		out = append(out, sums[k])
	}
	return out
}

func AverageCalories(perDay []float64) (float64, error) {
	if len(perDay) == 0 {
		return 0, fmt.Errorf("average calories: %w", swim.ErrNoData)
	}
	var total float64
	for _, c := range perDay {
		total += c
	}
	return total / float64(len(perDay)), nil
}

// DeltaPercent is the rounded percentage difference of value from
// average, e.g. +12 when value is 12% above the monthly average.
func DeltaPercent(value, average float64) (int, error) {
	if average == 0 {
		return 0, fmt.Errorf("delta against zero average: %w", swim.ErrNoData)
	}
	return int(math.Round((value - average) / average * 100)), nil
}

// FormatDelta renders a delta with an explicit sign for positive values.
func FormatDelta(pct int) string {
	if pct > 0 {
		return fmt.Sprintf("+%d%%", pct)
	}
	return fmt.Sprintf("%d%%", pct)
}

// HMS splits d into whole hours, minutes and seconds.
func HMS(d time.Duration) (hours, minutes, seconds int) {
	total := int(d / time.Second)
	return total / 3600, (total % 3600) / 60, total % 60
}

func FormatDuration(d time.Duration) string {
	h, m, s := HMS(d)
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	return fmt.Sprintf("%dm %ds", m, s)
}

// FormatPace renders seconds per 100m as m:ss.
func FormatPace(secondsPer100 float64) string {
	total := int(secondsPer100)
	return fmt.Sprintf("%d:%02d /100m", total/60, total%60)
}

func distinctDays(loc *time.Location, n int, at func(int) time.Time) int {
	b := daterange.New(loc)
	seen := make(map[string]struct{}, n)
	for i := range n {
		seen[b.DayKey(at(i))] = struct{}{}
	}
	return len(seen)
}
