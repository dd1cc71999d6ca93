package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/garrettladley/swimlight/internal/swim"
)

type authorizationRepo struct {
	db *sql.DB
}

func (r *authorizationRepo) Get(ctx context.Context) (swim.AuthorizationStatus, error) {
	var status string
	err := r.db.QueryRowContext(ctx, `SELECT status FROM authorization_status WHERE id = 1`).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return swim.AuthorizationNotDetermined, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	return swim.AuthorizationStatus(status), nil
}

func (r *authorizationRepo) Set(ctx context.Context, status swim.AuthorizationStatus) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO authorization_status (id, status, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at`,
		string(status), toMillis(time.Now()))
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
