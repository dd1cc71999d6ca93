// Package report assembles the per-day and per-month swim reports from a
// Provider, fetching every metric concurrently.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/heartrate"
	"github.com/garrettladley/swimlight/internal/provider"
	"github.com/garrettladley/swimlight/internal/storage"
	"github.com/garrettladley/swimlight/internal/streak"
	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/xslog"
)

// historyStart bounds the workout-dates refresh; nothing older is swum.
var historyStart = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

type Service struct {
	provider     provider.Provider
	classifier   *heartrate.Classifier
	bucketer     daterange.Bucketer
	cache        storage.DateCache
	maxHeartRate int
	logger       *slog.Logger
}

type Config struct {
	Provider     provider.Provider
	Classifier   *heartrate.Classifier
	Bucketer     daterange.Bucketer
	Cache        storage.DateCache
	MaxHeartRate int
	Logger       *slog.Logger
}

func NewService(cfg Config) *Service {
	if cfg.Classifier == nil {
		cfg.Classifier = heartrate.NewClassifier()
	}
	if cfg.MaxHeartRate == 0 {
		cfg.MaxHeartRate = heartrate.DefaultMaxHeartRate
	}
	if cfg.Cache == nil {
		cfg.Cache = storage.NewMemoryCache()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Service{
		provider:     cfg.Provider,
		classifier:   cfg.Classifier,
		bucketer:     cfg.Bucketer,
		cache:        cfg.Cache,
		maxHeartRate: cfg.MaxHeartRate,
		logger:       cfg.Logger,
	}
}

func (s *Service) Bucketer() daterange.Bucketer { return s.bucketer }

func (s *Service) MaxHeartRate() int { return s.maxHeartRate }

func (s *Service) ZoneTable() heartrate.Table { return s.classifier.Table(s.maxHeartRate) }

// WorkoutDates returns the cached workout days, refreshing from the provider
// when nothing has been cached yet.
func (s *Service) WorkoutDates(ctx context.Context) ([]time.Time, error) {
	dates, err := s.cache.Load(ctx)
	if err == nil {
		return dates, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		s.logger.WarnContext(ctx, "workout dates cache unreadable, refreshing", xslog.Error(err))
	}
	return s.RefreshWorkoutDates(ctx, time.Now())
}

// RefreshWorkoutDates fetches every workout up to the end of now's day,
// replaces the cache and returns the distinct days, newest first.
func (s *Service) RefreshWorkoutDates(ctx context.Context, now time.Time) ([]time.Time, error) {
	today, err := s.bucketer.Day(now)
	if err != nil {
		return nil, err
	}

	workouts, err := s.provider.FetchWorkouts(ctx, historyStart, today.End)
	if err != nil {
		return nil, fmt.Errorf("refresh workout dates: %w", err)
	}

	starts := make([]time.Time, 0, len(workouts))
	for _, w := range workouts {
		starts = append(starts, w.Start)
	}
	days := streak.Days(starts, s.bucketer.Location())

	if err := s.cache.Save(ctx, days); err != nil {
		s.logger.WarnContext(ctx, "failed to save workout dates", xslog.Error(err))
	}
	s.logger.InfoContext(ctx, "refreshed workout dates", xslog.Count(len(days)))
	return days, nil
}

// Streak counts consecutive workout days ending today, seeded from the cache.
func (s *Service) Streak(ctx context.Context, now time.Time) (int, error) {
	dates, err := s.WorkoutDates(ctx)
	if err != nil {
		return 0, err
	}
	return streak.Count(dates, now, s.bucketer.Location()), nil
}

func (s *Service) authorized(ctx context.Context) error {
	status, err := s.provider.Authorization(ctx)
	if err != nil {
		return err
	}
	if !status.IsAuthorized() {
		return fmt.Errorf("status %s: %w", status, swim.ErrUnauthorized)
	}
	return nil
}

func (s *Service) Authorization(ctx context.Context) (swim.AuthorizationStatus, error) {
	return s.provider.Authorization(ctx)
}
