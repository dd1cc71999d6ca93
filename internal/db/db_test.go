package db

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/swimlight/internal/migrations"
	"github.com/garrettladley/swimlight/internal/repository"
	"github.com/garrettladley/swimlight/internal/swim"
)

func openTemp(t *testing.T) *repository.Repository {
	t.Helper()

	sqlDB, repo, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "swimlight.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return repo
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "swimlight.db")

	for range 2 {
		sqlDB, _, err := Open(ctx, path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		names, err := migrations.Applied(ctx, sqlDB)
		_ = sqlDB.Close()
		if err != nil {
			t.Fatalf("Applied() error = %v", err)
		}
		if diff := cmp.Diff([]string{"0001_init.sql"}, names); diff != "" {
			t.Errorf("Applied() mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestWorkoutsPaginate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTemp(t)

	base := time.Date(2024, 10, 1, 7, 0, 0, 0, time.UTC)
	var want []swim.Workout
	for i := range 7 {
		start := base.AddDate(0, 0, i)
		want = append(want, swim.Workout{ID: string(rune('a' + i)), Start: start, End: start.Add(45 * time.Minute)})
	}
	if err := repo.Workouts.UpsertBatch(ctx, want); err != nil {
		t.Fatalf("UpsertBatch() error = %v", err)
	}

	got, err := repository.All(ctx, 3, func(ctx context.Context, c *repository.CursorParams) (*repository.CursorResult[swim.Workout], error) {
		return repo.Workouts.GetByDateRange(ctx, base, base.AddDate(0, 1, 0), c)
	})
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("workouts mismatch (-want +got):\n%s", diff)
	}

	one, err := repo.Workouts.Get(ctx, "c")
	if err != nil || one == nil || !one.Start.Equal(want[2].Start) {
		t.Errorf("Get(c) = %v, %v", one, err)
	}

	if err := repo.Workouts.Delete(ctx, "c"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if missing, err := repo.Workouts.Get(ctx, "c"); err != nil || missing != nil {
		t.Errorf("Get(c) after delete = %v, %v", missing, err)
	}
}

func TestWorkoutsPaginateSharedStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pageSize int
		count    int
		// tied is the number of trailing workouts that share one start time.
		tied int
	}{
		{name: "tie across default page boundary", pageSize: repository.DefaultPageSize, count: repository.DefaultPageSize + 1, tied: 2},
		{name: "whole page tied", pageSize: 3, count: 8, tied: 8},
		{name: "tie inside page", pageSize: 4, count: 6, tied: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			repo := openTemp(t)

			base := time.Date(2024, 10, 1, 7, 0, 0, 0, time.UTC)
			want := make([]swim.Workout, 0, tt.count)
			for i := range tt.count {
				start := base.Add(time.Duration(min(i, tt.count-tt.tied)) * time.Hour)
				want = append(want, swim.Workout{
					ID:    fmt.Sprintf("w%03d", i),
					Start: start,
					End:   start.Add(30 * time.Minute),
				})
			}
			if err := repo.Workouts.UpsertBatch(ctx, want); err != nil {
				t.Fatalf("UpsertBatch() error = %v", err)
			}

			got, err := repository.All(ctx, tt.pageSize, func(ctx context.Context, c *repository.CursorParams) (*repository.CursorResult[swim.Workout], error) {
				return repo.Workouts.GetByDateRange(ctx, base, base.AddDate(1, 0, 0), c)
			})
			if err != nil {
				t.Fatalf("All() error = %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("workouts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSamplesUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTemp(t)

	start := time.Date(2024, 10, 1, 7, 0, 0, 0, time.UTC)
	samples := []swim.Sample{
		{Kind: swim.KindStrokeCount, Start: start, End: start.Add(time.Minute), Value: 20, StrokeStyle: swim.StrokeButterfly},
		{Kind: swim.KindDistance, Start: start, End: start.Add(time.Minute), Value: 25},
		{Kind: swim.KindDistance, Start: start.Add(time.Minute), End: start.Add(2 * time.Minute), Value: 25},
	}
	if err := repo.Samples.UpsertBatch(ctx, samples); err != nil {
		t.Fatalf("UpsertBatch() error = %v", err)
	}

	samples[1].Value = 50
	if err := repo.Samples.UpsertBatch(ctx, samples[1:2]); err != nil {
		t.Fatalf("UpsertBatch() error = %v", err)
	}

	got, err := repo.Samples.GetByDateRange(ctx, swim.KindDistance, start, start.Add(time.Hour))
	if err != nil {
		t.Fatalf("GetByDateRange() error = %v", err)
	}
	if diff := cmp.Diff(samples[1:], got); diff != "" {
		t.Errorf("distance samples mismatch (-want +got):\n%s", diff)
	}

	strokes, err := repo.Samples.GetByDateRange(ctx, swim.KindStrokeCount, start, start.Add(time.Hour))
	if err != nil {
		t.Fatalf("GetByDateRange() error = %v", err)
	}
	if len(strokes) != 1 || strokes[0].StrokeStyle != swim.StrokeButterfly {
		t.Errorf("stroke samples = %+v", strokes)
	}
}

func TestAuthorization(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTemp(t)

	status, err := repo.Authorization.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if status != swim.AuthorizationNotDetermined {
		t.Errorf("initial status = %s", status)
	}

	for _, want := range []swim.AuthorizationStatus{swim.AuthorizationAuthorized, swim.AuthorizationDenied} {
		if err := repo.Authorization.Set(ctx, want); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := repo.Authorization.Get(ctx)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != want {
			t.Errorf("Get() = %s, want %s", got, want)
		}
	}
}
