// Package provider is the capability boundary between report logic and
// wherever swim samples live. Report code depends on Provider only, so the
// same aggregation runs against the local store, a shared database or an
// in-memory fake.
package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/swim"
)

type Provider interface {
	// Available reports whether the backing store can be reached at all.
	Available(ctx context.Context) bool
	Authorization(ctx context.Context) (swim.AuthorizationStatus, error)
	// FetchWorkouts returns swim workouts starting in [start, end), oldest first.
	FetchWorkouts(ctx context.Context, start, end time.Time) ([]swim.Workout, error)
	FetchQuantitySamples(ctx context.Context, kind swim.Kind, start, end time.Time) ([]swim.Sample, error)
	// FetchDailyStatistics sums samples of kind per calendar day. Days without
	// samples are omitted.
	FetchDailyStatistics(ctx context.Context, kind swim.Kind, start, end time.Time) ([]swim.DailyBucket, error)
}

// Bucket sums samples into calendar days by sample start, ascending.
func Bucket(samples []swim.Sample, b daterange.Bucketer) ([]swim.DailyBucket, error) {
	var out []swim.DailyBucket
	for _, s := range samples {
		day, err := b.Day(s.Start)
		if err != nil {
			return nil, err
		}
		if n := len(out); n > 0 && out[n-1].Start.Equal(day.Start) {
			out[n-1].Sum += s.Value
			continue
		}
		out = append(out, swim.DailyBucket{Start: day.Start, End: day.End, Sum: s.Value})
	}
	return out, nil
}

func requireAuthorized(ctx context.Context, p interface {
	Authorization(ctx context.Context) (swim.AuthorizationStatus, error)
}) error {
	status, err := p.Authorization(ctx)
	if err != nil {
		return fmt.Errorf("authorization: %w", err)
	}
	if !status.IsAuthorized() {
		return fmt.Errorf("status %s: %w", status, swim.ErrUnauthorized)
	}
	return nil
}
