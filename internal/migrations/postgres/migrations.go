// Package postgres applies the embedded PostgreSQL schema for the shared
// sample store.
package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/garrettladley/swimlight/internal/migrations"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := migrations.Run(ctx, history{pool: pool}, migrationsFS, "sql")
	return err
}

type history struct {
	pool *pgxpool.Pool
}

func (h history) Ensure(ctx context.Context) error {
	_, err := h.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS migrations_history (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			applied_at TIMESTAMPTZ DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("creating migrations history table: %w", err)
	}
	return nil
}

func (h history) Applied(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := h.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM migrations_history WHERE name = $1)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking if migration applied: %w", err)
	}
	return exists, nil
}

func (h history) Exec(ctx context.Context, stmt string) error {
	_, err := h.pool.Exec(ctx, stmt)
	return err
}

func (h history) Record(ctx context.Context, name string) error {
	if _, err := h.pool.Exec(ctx, "INSERT INTO migrations_history (name) VALUES ($1)", name); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}
	return nil
}
