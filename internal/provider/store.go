package provider

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/repository"
	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/xslog"
)

var _ Provider = (*Store)(nil)

// Pinger is satisfied by *pgxpool.Pool; wrap (*sql.DB).PingContext in a
// PingFunc.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Store serves samples from a repository. Samples are expected to be sorted
// by start within the repository, so daily statistics are computed in a
// single pass.
type Store struct {
	repo     *repository.Repository
	pinger   Pinger
	bucketer daterange.Bucketer
	logger   *slog.Logger
}

func NewStore(repo *repository.Repository, pinger Pinger, bucketer daterange.Bucketer, logger *slog.Logger) *Store {
	return &Store{repo: repo, pinger: pinger, bucketer: bucketer, logger: logger}
}

func (s *Store) Available(ctx context.Context) bool {
	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.WarnContext(ctx, "sample store unavailable", xslog.Error(err))
		return false
	}
	return true
}

func (s *Store) Authorization(ctx context.Context) (swim.AuthorizationStatus, error) {
	return s.repo.Authorization.Get(ctx)
}

func (s *Store) FetchWorkouts(ctx context.Context, start, end time.Time) ([]swim.Workout, error) {
	if err := requireAuthorized(ctx, s); err != nil {
		return nil, err
	}
	workouts, err := repository.All(ctx, repository.DefaultPageSize, func(ctx context.Context, c *repository.CursorParams) (*repository.CursorResult[swim.Workout], error) {
		return s.repo.Workouts.GetByDateRange(ctx, start, end, c)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch workouts: %w", err)
	}
	s.logger.DebugContext(ctx, "fetched workouts", xslog.Start(start), xslog.End(end), xslog.Count(len(workouts)))
	return workouts, nil
}

func (s *Store) FetchQuantitySamples(ctx context.Context, kind swim.Kind, start, end time.Time) ([]swim.Sample, error) {
	if err := requireAuthorized(ctx, s); err != nil {
		return nil, err
	}
	samples, err := s.repo.Samples.GetByDateRange(ctx, kind, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch %s samples: %w", kind, err)
	}
	s.logger.DebugContext(ctx, "fetched samples", xslog.Kind(kind), xslog.Start(start), xslog.End(end), xslog.Count(len(samples)))
	return samples, nil
}

func (s *Store) FetchDailyStatistics(ctx context.Context, kind swim.Kind, start, end time.Time) ([]swim.DailyBucket, error) {
	samples, err := s.FetchQuantitySamples(ctx, kind, start, end)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(samples, func(a, b swim.Sample) int { return a.Start.Compare(b.Start) })
	return Bucket(samples, s.bucketer)
}
