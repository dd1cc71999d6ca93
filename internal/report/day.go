package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/heartrate"
	"github.com/garrettladley/swimlight/internal/metrics"
	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/xslog"
)

type DayReport struct {
	Date     time.Time
	Range    daterange.Range
	Workouts Result[[]swim.Workout]
	Duration Result[time.Duration]
	Distance Result[float64]
	Pace     Result[float64]
	Calories Result[float64]
	Chart    Result[heartrate.Chart]
	Zones    Result[map[heartrate.Zone]time.Duration]
	Strokes  Result[map[swim.StrokeStyle]float64]
}

// Day builds the report for date's calendar day. Each metric is fetched in
// its own goroutine and recorded independently; a cancelled ctx leaves the
// metrics that already finished in place.
func (s *Service) Day(ctx context.Context, date time.Time) (*DayReport, error) {
	r, err := s.bucketer.Day(date)
	if err != nil {
		return nil, err
	}
	rep := &DayReport{Date: r.Start, Range: r}

	if err := s.authorized(ctx); err != nil {
		rep.fail(err)
		return rep, nil
	}

	workouts, err := s.provider.FetchWorkouts(ctx, r.Start, r.End)
	rep.Workouts = from(workouts, err)
	if err != nil {
		rep.fail(err)
		return rep, nil
	}

	var g errgroup.Group
	g.Go(func() error {
		rep.Duration = s.dayDuration(workouts)
		return nil
	})
	g.Go(func() error {
		rep.Distance, rep.Pace = s.dayDistanceAndPace(ctx, r, workouts)
		return nil
	})
	g.Go(func() error {
		rep.Calories = s.dayCalories(ctx, r, workouts)
		return nil
	})
	g.Go(func() error {
		rep.Chart, rep.Zones = s.dayHeartRate(ctx, workouts)
		return nil
	})
	g.Go(func() error {
		rep.Strokes = s.dayStrokes(ctx, r)
		return nil
	})
	_ = g.Wait()

	s.logResults(ctx, rep)
	return rep, nil
}

func (rep *DayReport) fail(err error) {
	rep.Workouts = failed[[]swim.Workout](err)
	rep.Duration = failed[time.Duration](err)
	rep.Distance = failed[float64](err)
	rep.Pace = failed[float64](err)
	rep.Calories = failed[float64](err)
	rep.Chart = failed[heartrate.Chart](err)
	rep.Zones = failed[map[heartrate.Zone]time.Duration](err)
	rep.Strokes = failed[map[swim.StrokeStyle]float64](err)
}

func (s *Service) dayDuration(workouts []swim.Workout) Result[time.Duration] {
	if len(workouts) == 0 {
		return failed[time.Duration](swim.ErrNoData)
	}
	return ok(metrics.TotalDuration(workouts))
}

func (s *Service) dayDistanceAndPace(ctx context.Context, r daterange.Range, workouts []swim.Workout) (Result[float64], Result[float64]) {
	buckets, err := s.provider.FetchDailyStatistics(ctx, swim.KindDistance, r.Start, r.End)
	if err != nil {
		return failed[float64](err), failed[float64](err)
	}
	if len(buckets) == 0 {
		return failed[float64](swim.ErrNoData), failed[float64](swim.ErrNoData)
	}
	meters := metrics.TotalDistance(buckets)
	return ok(meters), from(metrics.Pace(metrics.TotalDuration(workouts), meters))
}

func (s *Service) dayCalories(ctx context.Context, r daterange.Range, workouts []swim.Workout) Result[float64] {
	energy, err := s.provider.FetchQuantitySamples(ctx, swim.KindEnergy, r.Start, r.End)
	if err != nil {
		return failed[float64](err)
	}
	perDay := metrics.CaloriesPerDay(workouts, energy, s.bucketer.Location())
	if len(perDay) == 0 {
		return failed[float64](swim.ErrNoData)
	}
	var total float64
	for _, c := range perDay {
		total += c
	}
	return ok(total)
}

// dayHeartRate fetches heart-rate samples per workout so that the chart
// keeps one group per session and the zone aggregator never bridges two
// sessions.
func (s *Service) dayHeartRate(ctx context.Context, workouts []swim.Workout) (Result[heartrate.Chart], Result[map[heartrate.Zone]time.Duration]) {
	groups := make([][]heartrate.Point, 0, len(workouts))
	zones := make(map[heartrate.Zone]time.Duration)
	for _, w := range workouts {
		samples, err := s.provider.FetchQuantitySamples(ctx, swim.KindHeartRate, w.Start, w.End)
		if err != nil {
			return failed[heartrate.Chart](err), failed[map[heartrate.Zone]time.Duration](err)
		}
		points := toPoints(samples)
		if len(points) == 0 {
			continue
		}
		groups = append(groups, points)
		for z, d := range s.classifier.Aggregate(points, s.maxHeartRate) {
			zones[z] += d
		}
	}

	if len(groups) == 0 {
		return failed[heartrate.Chart](swim.ErrNoData), failed[map[heartrate.Zone]time.Duration](swim.ErrNoData)
	}
	return ok(heartrate.BuildChart(groups)), ok(zones)
}

func (s *Service) dayStrokes(ctx context.Context, r daterange.Range) Result[map[swim.StrokeStyle]float64] {
	strokes, err := s.provider.FetchQuantitySamples(ctx, swim.KindStrokeCount, r.Start, r.End)
	if err != nil {
		return failed[map[swim.StrokeStyle]float64](err)
	}
	distances, err := s.provider.FetchQuantitySamples(ctx, swim.KindDistance, r.Start, r.End)
	if err != nil {
		return failed[map[swim.StrokeStyle]float64](err)
	}
	out := metrics.StrokeDistances(strokes, distances)
	if len(out) == 0 {
		return failed[map[swim.StrokeStyle]float64](swim.ErrNoData)
	}
	return ok(out)
}

func toPoints(samples []swim.Sample) []heartrate.Point {
	points := make([]heartrate.Point, 0, len(samples))
	for _, s := range samples {
		points = append(points, heartrate.Point{Time: s.Start, BPM: int(s.Value)})
	}
	return points
}

func (s *Service) logResults(ctx context.Context, rep *DayReport) {
	for name, err := range map[string]error{
		"duration": rep.Duration.Err,
		"distance": rep.Distance.Err,
		"pace":     rep.Pace.Err,
		"calories": rep.Calories.Err,
		"chart":    rep.Chart.Err,
		"zones":    rep.Zones.Err,
		"strokes":  rep.Strokes.Err,
	} {
		if err != nil {
			s.logger.DebugContext(ctx, "metric unavailable", xslog.Date(rep.Date), xslog.Metric(name), xslog.Error(err))
		}
	}
}
