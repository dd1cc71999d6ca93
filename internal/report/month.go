package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/metrics"
	"github.com/garrettladley/swimlight/internal/swim"
)

type MonthReport struct {
	Month           daterange.Range
	WorkoutDays     Result[int]
	AverageDuration Result[time.Duration]
	AverageDistance Result[float64]
	AverageCalories Result[float64]
	AveragePace     Result[float64]
}

// Month builds the averages for date's calendar month, which the day report
// is compared against.
func (s *Service) Month(ctx context.Context, date time.Time) (*MonthReport, error) {
	r, err := s.bucketer.Month(date)
	if err != nil {
		return nil, err
	}
	rep := &MonthReport{Month: r}

	if err := s.authorized(ctx); err != nil {
		rep.fail(err)
		return rep, nil
	}

	workouts, err := s.provider.FetchWorkouts(ctx, r.Start, r.End)
	if err != nil {
		rep.fail(err)
		return rep, nil
	}

	loc := s.bucketer.Location()
	var (
		g       errgroup.Group
		buckets []swim.DailyBucket
	)
	g.Go(func() error {
		rep.AverageDuration = from(metrics.AverageDurationPerDay(workouts, loc))
		return nil
	})
	g.Go(func() error {
		var err error
		buckets, err = s.provider.FetchDailyStatistics(ctx, swim.KindDistance, r.Start, r.End)
		if err != nil {
			rep.AverageDistance = failed[float64](err)
			return nil
		}
		rep.AverageDistance = from(metrics.AverageDistancePerDay(buckets, loc))
		return nil
	})
	g.Go(func() error {
		energy, err := s.provider.FetchQuantitySamples(ctx, swim.KindEnergy, r.Start, r.End)
		if err != nil {
			rep.AverageCalories = failed[float64](err)
			return nil
		}
		rep.AverageCalories = from(metrics.AverageCalories(metrics.CaloriesPerDay(workouts, energy, loc)))
		return nil
	})
	_ = g.Wait()

	days := make([]time.Time, 0, len(workouts))
	for _, w := range workouts {
		days = append(days, w.Start)
	}
	rep.WorkoutDays = ok(len(uniqueDays(days, s.bucketer)))

	if rep.AverageDistance.Err != nil {
		rep.AveragePace = failed[float64](rep.AverageDistance.Err)
	} else {
		rep.AveragePace = from(metrics.Pace(metrics.TotalDuration(workouts), metrics.TotalDistance(buckets)))
	}
	return rep, nil
}

func (rep *MonthReport) fail(err error) {
	rep.WorkoutDays = failed[int](err)
	rep.AverageDuration = failed[time.Duration](err)
	rep.AverageDistance = failed[float64](err)
	rep.AverageCalories = failed[float64](err)
	rep.AveragePace = failed[float64](err)
}

func uniqueDays(times []time.Time, b daterange.Bucketer) map[string]struct{} {
	out := make(map[string]struct{}, len(times))
	for _, t := range times {
		out[b.DayKey(t)] = struct{}{}
	}
	return out
}
