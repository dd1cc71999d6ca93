// Package postgres backs the sample store with a shared PostgreSQL database,
// for households that sync several devices into one place.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/garrettladley/swimlight/internal/repository"
	"github.com/garrettladley/swimlight/internal/swim"
)

func New(pool *pgxpool.Pool) *repository.Repository {
	return &repository.Repository{
		Workouts:      &workoutRepo{pool: pool},
		Samples:       &sampleRepo{pool: pool},
		Authorization: &authorizationRepo{pool: pool},
	}
}

type workoutRepo struct {
	pool *pgxpool.Pool
}

const upsertWorkout = `
INSERT INTO workouts (id, start_at, end_at)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET start_at = EXCLUDED.start_at, end_at = EXCLUDED.end_at`

func (r *workoutRepo) Upsert(ctx context.Context, workout *swim.Workout) error {
	if _, err := r.pool.Exec(ctx, upsertWorkout, workout.ID, workout.Start.UTC(), workout.End.UTC()); err != nil {
		return fmt.Errorf("upsert workout %s: %w", workout.ID, err)
	}
	return nil
}

func (r *workoutRepo) UpsertBatch(ctx context.Context, workouts []swim.Workout) error {
	batch := &pgx.Batch{}
	for _, w := range workouts {
		batch.Queue(upsertWorkout, w.ID, w.Start.UTC(), w.End.UTC())
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert workouts: %w", err)
	}
	return nil
}

func (r *workoutRepo) Get(ctx context.Context, id string) (*swim.Workout, error) {
	w := swim.Workout{ID: id}
	err := r.pool.QueryRow(ctx, `SELECT start_at, end_at FROM workouts WHERE id = $1`, id).Scan(&w.Start, &w.End)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &w, nil
}

func (r *workoutRepo) GetByDateRange(ctx context.Context, start, end time.Time, cursor *repository.CursorParams) (*repository.CursorResult[swim.Workout], error) {
	limit := int64(repository.DefaultPageSize)
	if cursor != nil && cursor.Limit > 0 {
		limit = int64(cursor.Limit)
	}

	// The empty id sorts before every real id, so the first page starts at
	// start itself.
	after := repository.Cursor{Start: start}
	if cursor != nil && cursor.Cursor != nil {
		after = *cursor.Cursor
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, start_at, end_at FROM workouts
		WHERE start_at >= $1 AND start_at < $2
		  AND (start_at, id) > ($3, $4)
		ORDER BY start_at, id LIMIT $5`,
		start.UTC(), end.UTC(), after.Start.UTC(), after.ID, limit+1)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	workouts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (swim.Workout, error) {
		var w swim.Workout
		err := row.Scan(&w.ID, &w.Start, &w.End)
		w.Start, w.End = w.Start.UTC(), w.End.UTC()
		return w, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	result := &repository.CursorResult[swim.Workout]{Records: workouts}
	if int64(len(workouts)) > limit {
		result.Records = workouts[:limit]
		last := result.Records[limit-1]
		result.NextCursor = &repository.Cursor{Start: last.Start, ID: last.ID}
	}
	return result, nil
}

func (r *workoutRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

type sampleRepo struct {
	pool *pgxpool.Pool
}

func (r *sampleRepo) UpsertBatch(ctx context.Context, samples []swim.Sample) error {
	batch := &pgx.Batch{}
	for _, s := range samples {
		batch.Queue(`
			INSERT INTO samples (kind, start_at, end_at, value, stroke_style)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (kind, start_at, end_at)
			DO UPDATE SET value = EXCLUDED.value, stroke_style = EXCLUDED.stroke_style`,
			string(s.Kind), s.Start.UTC(), s.End.UTC(), s.Value, int(s.StrokeStyle))
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert samples: %w", err)
	}
	return nil
}

func (r *sampleRepo) GetByDateRange(ctx context.Context, kind swim.Kind, start, end time.Time) ([]swim.Sample, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_at, end_at, value, stroke_style FROM samples
		WHERE kind = $1 AND start_at >= $2 AND start_at < $3
		ORDER BY start_at`,
		string(kind), start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (swim.Sample, error) {
		var (
			s      = swim.Sample{Kind: kind}
			stroke int32
		)
		err := row.Scan(&s.Start, &s.End, &s.Value, &stroke)
		s.Start, s.End = s.Start.UTC(), s.End.UTC()
		s.StrokeStyle = swim.StrokeStyleFromCode(int(stroke))
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return samples, nil
}

type authorizationRepo struct {
	pool *pgxpool.Pool
}

func (r *authorizationRepo) Get(ctx context.Context) (swim.AuthorizationStatus, error) {
	var status string
	err := r.pool.QueryRow(ctx, `SELECT status FROM authorization_status WHERE id = 1`).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return swim.AuthorizationNotDetermined, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	return swim.AuthorizationStatus(status), nil
}

func (r *authorizationRepo) Set(ctx context.Context, status swim.AuthorizationStatus) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO authorization_status (id, status, updated_at) VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()`,
		string(status))
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
