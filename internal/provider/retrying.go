package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/xslog"
)

var _ Provider = (*Retrying)(nil)

type RetryConfig struct {
	Attempts uint
	Delay    time.Duration
	MaxDelay time.Duration
	// Timeout bounds each attempt. Zero leaves attempts unbounded.
	Timeout time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts: 3,
		Delay:    100 * time.Millisecond,
		MaxDelay: 2 * time.Second,
		Timeout:  10 * time.Second,
	}
}

// Retrying retries transient fetch failures. Authorization and missing data
// are answers, not failures, and are returned immediately.
type Retrying struct {
	next   Provider
	cfg    RetryConfig
	logger *slog.Logger
}

func NewRetrying(next Provider, cfg RetryConfig, logger *slog.Logger) *Retrying {
	if cfg.Attempts == 0 {
		cfg.Attempts = 1
	}
	return &Retrying{next: next, cfg: cfg, logger: logger}
}

func (r *Retrying) Available(ctx context.Context) bool {
	return r.next.Available(ctx)
}

func (r *Retrying) Authorization(ctx context.Context) (swim.AuthorizationStatus, error) {
	var status swim.AuthorizationStatus
	err := r.do(ctx, "authorization", func(ctx context.Context) error {
		var err error
		status, err = r.next.Authorization(ctx)
		return err
	})
	return status, err
}

func (r *Retrying) FetchWorkouts(ctx context.Context, start, end time.Time) ([]swim.Workout, error) {
	var out []swim.Workout
	err := r.do(ctx, "workouts", func(ctx context.Context) error {
		var err error
		out, err = r.next.FetchWorkouts(ctx, start, end)
		return err
	})
	return out, err
}

func (r *Retrying) FetchQuantitySamples(ctx context.Context, kind swim.Kind, start, end time.Time) ([]swim.Sample, error) {
	var out []swim.Sample
	err := r.do(ctx, kind.String(), func(ctx context.Context) error {
		var err error
		out, err = r.next.FetchQuantitySamples(ctx, kind, start, end)
		return err
	})
	return out, err
}

func (r *Retrying) FetchDailyStatistics(ctx context.Context, kind swim.Kind, start, end time.Time) ([]swim.DailyBucket, error) {
	var out []swim.DailyBucket
	err := r.do(ctx, kind.String()+" daily", func(ctx context.Context) error {
		var err error
		out, err = r.next.FetchDailyStatistics(ctx, kind, start, end)
		return err
	})
	return out, err
}

func (r *Retrying) do(ctx context.Context, what string, fn func(ctx context.Context) error) error {
	err := retry.Do(
		func() error {
			attemptCtx, cancel := r.attemptContext(ctx)
			defer cancel()
			return fn(attemptCtx)
		},
		retry.Context(ctx),
		retry.Attempts(r.cfg.Attempts),
		retry.Delay(r.cfg.Delay),
		retry.MaxDelay(r.cfg.MaxDelay),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(Retryable),
		retry.OnRetry(func(n uint, err error) {
			r.logger.DebugContext(ctx, "retrying fetch", xslog.Metric(what), xslog.Attempt(n+1), xslog.Error(err))
		}),
	)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", what, err)
	}
	return nil
}

func (r *Retrying) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.cfg.Timeout)
}

// Retryable reports whether a fetch failure may succeed on a later attempt.
func Retryable(err error) bool {
	switch {
	case errors.Is(err, swim.ErrUnauthorized), errors.Is(err, swim.ErrNoData):
		return false
	case errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}
