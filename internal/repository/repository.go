package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/garrettladley/swimlight/internal/swim"
)

// Repository is the local sample store. Times are persisted as UTC unix
// milliseconds so range predicates compare numerically.
type Repository struct {
	Workouts      WorkoutRepository
	Samples       SampleRepository
	Authorization AuthorizationRepository
}

func New(db *sql.DB) *Repository {
	return &Repository{
		Workouts:      &workoutRepo{db: db},
		Samples:       &sampleRepo{db: db},
		Authorization: &authorizationRepo{db: db},
	}
}

// Cursor is the (start, id) of the last row of a page, matching the
// ORDER BY of every paginated query.
type Cursor struct {
	Start time.Time
	ID    string
}

type CursorParams struct {
	Limit  int
	Cursor *Cursor
}

type CursorResult[T any] struct {
	Records    []T
	NextCursor *Cursor
}

const DefaultPageSize = 50

type WorkoutRepository interface {
	Upsert(ctx context.Context, workout *swim.Workout) error
	UpsertBatch(ctx context.Context, workouts []swim.Workout) error
	Get(ctx context.Context, id string) (*swim.Workout, error)
	// GetByDateRange returns workouts starting in [start, end), oldest first.
	GetByDateRange(ctx context.Context, start, end time.Time, cursor *CursorParams) (*CursorResult[swim.Workout], error)
	Delete(ctx context.Context, id string) error
}

type SampleRepository interface {
	UpsertBatch(ctx context.Context, samples []swim.Sample) error
	// GetByDateRange returns samples of kind starting in [start, end), oldest first.
	GetByDateRange(ctx context.Context, kind swim.Kind, start, end time.Time) ([]swim.Sample, error)
}

type AuthorizationRepository interface {
	// Get returns AuthorizationNotDetermined until Set has been called.
	Get(ctx context.Context) (swim.AuthorizationStatus, error)
	Set(ctx context.Context, status swim.AuthorizationStatus) error
}

// All drains every page of a cursor-paginated query.
func All[T any](ctx context.Context, pageSize int, fetch func(ctx context.Context, cursor *CursorParams) (*CursorResult[T], error)) ([]T, error) {
	var (
		out    []T
		params = &CursorParams{Limit: pageSize}
	)
	for {
		page, err := fetch(ctx, params)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Records...)
		if page.NextCursor == nil {
			return out, nil
		}
		params = &CursorParams{Limit: pageSize, Cursor: page.NextCursor}
	}
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }
