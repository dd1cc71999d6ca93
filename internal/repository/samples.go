package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/garrettladley/swimlight/internal/swim"
)

type sampleRepo struct {
	db *sql.DB
}

func (r *sampleRepo) UpsertBatch(ctx context.Context, samples []swim.Sample) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO samples (kind, start_at, end_at, value, stroke_style)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (kind, start_at, end_at)
		DO UPDATE SET value = excluded.value, stroke_style = excluded.stroke_style`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, s := range samples {
		_, err := stmt.ExecContext(ctx, string(s.Kind), toMillis(s.Start), toMillis(s.End), s.Value, int(s.StrokeStyle))
		if err != nil {
			return fmt.Errorf("upsert %s sample at %s: %w", s.Kind, s.Start.Format(time.RFC3339), err)
		}
	}
	return tx.Commit()
}

func (r *sampleRepo) GetByDateRange(ctx context.Context, kind swim.Kind, start, end time.Time) ([]swim.Sample, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT start_at, end_at, value, stroke_style FROM samples
		WHERE kind = ? AND start_at >= ? AND start_at < ?
		ORDER BY start_at`,
		string(kind), toMillis(start), toMillis(end))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer func() { _ = rows.Close() }()

	var samples []swim.Sample
	for rows.Next() {
		var (
			start, end int64
			stroke     int
			s          = swim.Sample{Kind: kind}
		)
		if err := rows.Scan(&start, &end, &s.Value, &stroke); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		s.Start, s.End = fromMillis(start), fromMillis(end)
		s.StrokeStyle = swim.StrokeStyleFromCode(stroke)
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return samples, nil
}
