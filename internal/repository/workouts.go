package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/garrettladley/swimlight/internal/swim"
)

type workoutRepo struct {
	db *sql.DB
}

const upsertWorkout = `
INSERT INTO workouts (id, start_at, end_at)
VALUES (?, ?, ?)
ON CONFLICT (id) DO UPDATE SET start_at = excluded.start_at, end_at = excluded.end_at`

func (r *workoutRepo) Upsert(ctx context.Context, workout *swim.Workout) error {
	_, err := r.db.ExecContext(ctx, upsertWorkout, workout.ID, toMillis(workout.Start), toMillis(workout.End))
	if err != nil {
		return fmt.Errorf("upsert workout %s: %w", workout.ID, err)
	}
	return nil
}

func (r *workoutRepo) UpsertBatch(ctx context.Context, workouts []swim.Workout) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertWorkout)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, w := range workouts {
		if _, err := stmt.ExecContext(ctx, w.ID, toMillis(w.Start), toMillis(w.End)); err != nil {
			return fmt.Errorf("upsert workout %s: %w", w.ID, err)
		}
	}
	return tx.Commit()
}

func (r *workoutRepo) Get(ctx context.Context, id string) (*swim.Workout, error) {
	var start, end int64
	err := r.db.QueryRowContext(ctx, `SELECT start_at, end_at FROM workouts WHERE id = ?`, id).Scan(&start, &end)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &swim.Workout{ID: id, Start: fromMillis(start), End: fromMillis(end)}, nil
}

func (r *workoutRepo) GetByDateRange(ctx context.Context, start, end time.Time, cursor *CursorParams) (*CursorResult[swim.Workout], error) {
	limit := int64(DefaultPageSize)
	if cursor != nil && cursor.Limit > 0 {
		limit = int64(cursor.Limit)
	}

	fetchLimit := limit + 1

	var (
		rows *sql.Rows
		err  error
	)
	if cursor != nil && cursor.Cursor != nil {
		rows, err = r.db.QueryContext(ctx, `
			SELECT id, start_at, end_at FROM workouts
			WHERE start_at >= ? AND start_at < ?
			  AND (start_at > ? OR (start_at = ? AND id > ?))
			ORDER BY start_at, id LIMIT ?`,
			toMillis(start), toMillis(end),
			toMillis(cursor.Cursor.Start), toMillis(cursor.Cursor.Start), cursor.Cursor.ID,
			fetchLimit)
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT id, start_at, end_at FROM workouts
			WHERE start_at >= ? AND start_at < ?
			ORDER BY start_at, id LIMIT ?`,
			toMillis(start), toMillis(end), fetchLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer func() { _ = rows.Close() }()

	var workouts []swim.Workout
	for rows.Next() {
		var (
			w          swim.Workout
			start, end int64
		)
		if err := rows.Scan(&w.ID, &start, &end); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		w.Start, w.End = fromMillis(start), fromMillis(end)
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	hasMore := int64(len(workouts)) > limit
	if hasMore {
		workouts = workouts[:limit]
	}

	result := &CursorResult[swim.Workout]{
		Records: workouts,
	}

	if hasMore && len(workouts) > 0 {
		last := workouts[len(workouts)-1]
		result.NextCursor = &Cursor{Start: last.Start, ID: last.ID}
	}

	return result, nil
}

func (r *workoutRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
